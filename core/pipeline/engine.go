package pipeline

import (
	"context"
	"errors"
	"time"
)

// Run executes one full pipeline pass: load both sources, reconcile the
// identifier spaces, and merge into the output table. The whole run is a
// single synchronous unit of work producing a fresh immutable Result.
//
// A missing source is recoverable: Run returns an empty Result whose Warning
// describes the condition, with a nil error, so the presentation layer can
// render a user-visible warning instead of crashing. Any other failure is
// returned as an error.
func Run(ctx context.Context, spec *Spec) (*Result, error) {
	demographics, err := LoadDemographics(ctx, spec.Demographics)
	if err != nil {
		if errors.Is(err, ErrMissingSource) {
			return emptyResult(err), nil
		}
		return nil, err
	}

	listings, err := LoadListings(ctx, spec.Listings)
	if err != nil {
		if errors.Is(err, ErrMissingSource) {
			return emptyResult(err), nil
		}
		return nil, err
	}

	codes := make([]string, len(demographics))
	for i, d := range demographics {
		codes[i] = d.ZipCode
	}
	matcher := NewMatcher(codes, spec.Threshold, spec.Scorer)

	matched, noPrefix, belowThreshold := matcher.Reconcile(listings)
	enriched := Merge(listings, demographics)

	return &Result{
		Listings: enriched,
		Summary: Summary{
			DemographicRows:       len(demographics),
			ListingRows:           len(listings),
			CanonicalCodes:        matcher.Candidates(),
			DistinctPrefixes:      matcher.DistinctPrefixes(),
			Matched:               matched,
			DroppedNoPrefix:       noPrefix,
			DroppedBelowThreshold: belowThreshold,
			Joined:                len(enriched),
		},
		GeneratedAt: time.Now(),
	}, nil
}

// emptyResult builds the recoverable empty output for a missing source.
func emptyResult(cause error) *Result {
	return &Result{
		Listings:    []EnrichedListing{},
		Warning:     cause.Error(),
		GeneratedAt: time.Now(),
	}
}

package pipeline

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Metric is a float64 that serializes non-finite values as JSON null.
// Derived metrics such as price_per_sqft can legitimately be Inf or NaN
// (zero or unparsable denominators); standard JSON cannot represent those.
type Metric float64

// Finite reports whether the metric holds a usable numeric value.
func (m Metric) Finite() bool {
	f := float64(m)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON renders non-finite values as null so encoding never fails.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// DemographicRecord is one row of the demographics table after normalization.
type DemographicRecord struct {
	// ZipCode is the canonical postal code: exactly 5 characters, left-padded
	// with zeros. It is the join target for reconciled listings.
	ZipCode string `json:"zip_code"`

	// SchoolRating is the school-quality score for the area.
	SchoolRating Metric `json:"school_rating"`

	// CrimeIndex is the crime-level indicator for the area.
	CrimeIndex string `json:"crime_index"`

	// Extra carries pass-through columns not mapped to a typed field.
	Extra map[string]string `json:"extra,omitempty"`
}

// ListingRecord is one row of the listings table.
type ListingRecord struct {
	// PostalCode is the raw, possibly malformed postal code string.
	PostalCode string `json:"postal_code"`

	// ListingPrice is the asking price. NaN when the source cell was not numeric.
	ListingPrice Metric `json:"listing_price"`

	// SqFt is the listing area. NaN when the source cell was not numeric.
	SqFt Metric `json:"sq_ft"`

	// RawAddress is the free-text address of the listing.
	RawAddress string `json:"raw_address"`

	// Extra carries pass-through columns not mapped to a typed field.
	Extra map[string]string `json:"extra,omitempty"`

	// ZipPrefix is the first digit run extracted from PostalCode, empty when
	// the raw value contains no digits. Working field, never serialized.
	ZipPrefix string `json:"-"`

	// MatchedZip is the resolved canonical code, empty when no candidate
	// reached the threshold. Working field, never serialized.
	MatchedZip string `json:"-"`
}

// EnrichedListing is the inner-join result for one matched listing: the
// listing fields unioned with the matched demographic fields plus the derived
// valuation metric. Internal working fields do not leak into it.
type EnrichedListing struct {
	ZipCode      string            `json:"zip_code"`
	PostalCode   string            `json:"postal_code"`
	RawAddress   string            `json:"raw_address"`
	ListingPrice Metric            `json:"listing_price"`
	SqFt         Metric            `json:"sq_ft"`
	PricePerSqFt Metric            `json:"price_per_sqft"`
	SchoolRating Metric            `json:"school_rating"`
	CrimeIndex   string            `json:"crime_index"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// Summary provides aggregate counts for one pipeline run, including the rows
// dropped at reconciliation for data-quality monitoring.
type Summary struct {
	// DemographicRows is the number of demographic rows loaded.
	DemographicRows int `json:"demographic_rows"`

	// ListingRows is the number of listing rows loaded.
	ListingRows int `json:"listing_rows"`

	// CanonicalCodes is the number of distinct canonical postal codes.
	CanonicalCodes int `json:"canonical_codes"`

	// DistinctPrefixes is the number of distinct non-empty digit prefixes.
	DistinctPrefixes int `json:"distinct_prefixes"`

	// Matched counts listings resolved to a canonical code.
	Matched int `json:"matched"`

	// DroppedNoPrefix counts listings whose postal code contained no digits.
	DroppedNoPrefix int `json:"dropped_no_prefix"`

	// DroppedBelowThreshold counts listings whose best similarity score fell
	// below the acceptance threshold.
	DroppedBelowThreshold int `json:"dropped_below_threshold"`

	// Joined counts rows in the output table.
	Joined int `json:"joined"`
}

// Result is the immutable output of one pipeline run.
type Result struct {
	// Listings is the denormalized output table, one row per matched listing.
	Listings []EnrichedListing `json:"listings"`

	// Summary holds aggregate counts for the run.
	Summary Summary `json:"summary"`

	// Warning is set when the run produced an empty table for a recoverable
	// reason (e.g. a missing source file). The presentation layer renders it
	// to the user instead of failing.
	Warning string `json:"warning,omitempty"`

	// GeneratedAt is the time the result was computed.
	GeneratedAt time.Time `json:"generated_at"`
}

// Spec bundles everything one pipeline run needs: the two sources and the
// matching options. Specs with equal cache keys are interchangeable.
type Spec struct {
	// Demographics supplies the demographics table.
	Demographics Source

	// Listings supplies the listings table.
	Listings Source

	// Threshold is the minimum acceptable similarity score (0-100).
	Threshold int

	// ScorerName is the configured scorer selector, kept for cache keys.
	ScorerName string

	// Scorer computes similarity between a prefix and a canonical code.
	Scorer Scorer

	// CacheTTL is the time-to-live for cached results. Zero disables caching.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
// Source names are resolved identities (absolute paths or bucket/key pairs),
// so distinct input pairs never share a cache entry.
func (s *Spec) CacheKey() string {
	return s.Demographics.Name() + "|" + s.Listings.Name() +
		"|" + strconv.Itoa(s.Threshold) + "|" + s.ScorerName + "|" + JoinInner
}

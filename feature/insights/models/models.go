package models

import (
	"math"
	"time"

	"property-insights/core/pipeline"
)

// ListingsReport is the response payload for the enriched listing table.
type ListingsReport struct {
	// Count is the number of rows in the table.
	Count int `json:"count"`
	// Listings is the denormalized output table.
	Listings []pipeline.EnrichedListing `json:"listings"`
	// GeneratedAt is when the underlying pipeline result was computed.
	GeneratedAt time.Time `json:"generated_at"`
	// Warning is set when the table is empty for a recoverable reason.
	Warning string `json:"warning,omitempty"`
}

// SummaryReport carries the KPI metrics shown on the dashboard cards.
// Averages skip non-finite values (e.g. price_per_sqft rows with zero area);
// with no finite values at all the average serializes as null.
type SummaryReport struct {
	TotalListings   int             `json:"total_listings"`
	AvgListingPrice pipeline.Metric `json:"avg_listing_price"`
	AvgPricePerSqFt pipeline.Metric `json:"avg_price_per_sqft"`
	AvgSchoolRating pipeline.Metric `json:"avg_school_rating"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Warning         string          `json:"warning,omitempty"`
}

// QualityReport exposes the reconciliation outcome counts so dropped rows are
// visible for data-quality monitoring instead of disappearing silently.
type QualityReport struct {
	Summary     pipeline.Summary `json:"summary"`
	GeneratedAt time.Time        `json:"generated_at"`
	Warning     string           `json:"warning,omitempty"`
}

// NewListingsReport wraps a pipeline result for the presentation layer.
func NewListingsReport(result *pipeline.Result) *ListingsReport {
	return &ListingsReport{
		Count:       len(result.Listings),
		Listings:    result.Listings,
		GeneratedAt: result.GeneratedAt,
		Warning:     result.Warning,
	}
}

// NewSummaryReport aggregates the KPI metrics from a pipeline result.
func NewSummaryReport(result *pipeline.Result) *SummaryReport {
	report := &SummaryReport{
		TotalListings: len(result.Listings),
		GeneratedAt:   result.GeneratedAt,
		Warning:       result.Warning,
	}

	report.AvgListingPrice = finiteMean(result.Listings, func(l pipeline.EnrichedListing) pipeline.Metric {
		return l.ListingPrice
	})
	report.AvgPricePerSqFt = finiteMean(result.Listings, func(l pipeline.EnrichedListing) pipeline.Metric {
		return l.PricePerSqFt
	})
	report.AvgSchoolRating = finiteMean(result.Listings, func(l pipeline.EnrichedListing) pipeline.Metric {
		return l.SchoolRating
	})
	return report
}

// NewQualityReport wraps the run summary for the presentation layer.
func NewQualityReport(result *pipeline.Result) *QualityReport {
	return &QualityReport{
		Summary:     result.Summary,
		GeneratedAt: result.GeneratedAt,
		Warning:     result.Warning,
	}
}

// finiteMean averages the extracted metric over all rows where it is finite.
// NaN when no row contributes, which serializes as null.
func finiteMean(listings []pipeline.EnrichedListing, pick func(pipeline.EnrichedListing) pipeline.Metric) pipeline.Metric {
	var sum float64
	var n int
	for _, l := range listings {
		v := pick(l)
		if !v.Finite() {
			continue
		}
		sum += float64(v)
		n++
	}
	if n == 0 {
		return pipeline.Metric(math.NaN())
	}
	return pipeline.Metric(sum / float64(n))
}

package models_test

import (
	"math"
	"testing"
	"time"

	"property-insights/core/pipeline"
	"property-insights/feature/insights/models"

	"github.com/stretchr/testify/assert"
)

func resultWith(listings ...pipeline.EnrichedListing) *pipeline.Result {
	return &pipeline.Result{
		Listings:    listings,
		GeneratedAt: time.Now(),
	}
}

func TestNewSummaryReport_Averages(t *testing.T) {
	result := resultWith(
		pipeline.EnrichedListing{ListingPrice: 100000, PricePerSqFt: 100, SchoolRating: 8},
		pipeline.EnrichedListing{ListingPrice: 300000, PricePerSqFt: 200, SchoolRating: 6},
	)

	report := models.NewSummaryReport(result)
	assert.Equal(t, 2, report.TotalListings)
	assert.InDelta(t, 200000, float64(report.AvgListingPrice), 1e-9)
	assert.InDelta(t, 150, float64(report.AvgPricePerSqFt), 1e-9)
	assert.InDelta(t, 7, float64(report.AvgSchoolRating), 1e-9)
}

func TestNewSummaryReport_SkipsNonFiniteValues(t *testing.T) {
	result := resultWith(
		pipeline.EnrichedListing{ListingPrice: 100000, PricePerSqFt: 100, SchoolRating: 8},
		// Zero-area listing: price_per_sqft is +Inf and must not poison the average
		pipeline.EnrichedListing{ListingPrice: 200000, PricePerSqFt: pipeline.Metric(math.Inf(1)), SchoolRating: 8},
	)

	report := models.NewSummaryReport(result)
	assert.Equal(t, 2, report.TotalListings)
	assert.InDelta(t, 150000, float64(report.AvgListingPrice), 1e-9)
	assert.InDelta(t, 100, float64(report.AvgPricePerSqFt), 1e-9, "only the finite row contributes")
}

func TestNewSummaryReport_EmptyResult(t *testing.T) {
	result := resultWith()
	result.Warning = "missing source /data/demographics.csv"

	report := models.NewSummaryReport(result)
	assert.Equal(t, 0, report.TotalListings)
	assert.False(t, report.AvgListingPrice.Finite(), "no rows, average serializes as null")
	assert.False(t, report.AvgPricePerSqFt.Finite())
	assert.Equal(t, result.Warning, report.Warning)
}

func TestNewListingsReport(t *testing.T) {
	result := resultWith(pipeline.EnrichedListing{ZipCode: "32599"})

	report := models.NewListingsReport(result)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, "32599", report.Listings[0].ZipCode)
	assert.Equal(t, result.GeneratedAt, report.GeneratedAt)
}

func TestNewQualityReport(t *testing.T) {
	result := resultWith()
	result.Summary = pipeline.Summary{ListingRows: 4, Matched: 2, DroppedNoPrefix: 1, DroppedBelowThreshold: 1, Joined: 2}

	report := models.NewQualityReport(result)
	assert.Equal(t, 2, report.Summary.Matched)
	assert.Equal(t, 1, report.Summary.DroppedNoPrefix)
}

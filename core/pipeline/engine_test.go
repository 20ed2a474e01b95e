package pipeline

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demographicsCSV = "zip_code,school_rating,crime_index,median_income\n" +
	"32599,8.5,Low,72000\n" +
	"10001,6.1,High,58000\n"

const listingsCSV = "postal_code,listing_price,sq_ft,raw_address,year_built\n" +
	"325-A,250000,1500,\"123 Palm Ave\",1999\n" +
	"N/A,100000,900,\"9 Gull Rd\",1980\n" +
	"10001,100000,0,\"77 Empire St\",2001\n" +
	"777,50000,500,\"1 Nowhere Ln\",1950\n"

// testSpec writes both fixtures into a temp dir and builds a runnable spec.
func testSpec(t *testing.T, demographics, listings string) *Spec {
	t.Helper()
	dir := t.TempDir()

	demoPath := filepath.Join(dir, "demographics.csv")
	listPath := filepath.Join(dir, "listings.csv")
	if demographics != "" {
		require.NoError(t, os.WriteFile(demoPath, []byte(demographics), 0o644))
	}
	if listings != "" {
		require.NoError(t, os.WriteFile(listPath, []byte(listings), 0o644))
	}

	scorer, err := ScorerByName(ScorerPartialRatio)
	require.NoError(t, err)

	return &Spec{
		Demographics: NewFileSource(demoPath),
		Listings:     NewFileSource(listPath),
		Threshold:    80,
		ScorerName:   ScorerPartialRatio,
		Scorer:       scorer,
	}
}

func TestRun_EnrichesMatchedListings(t *testing.T) {
	spec := testSpec(t, demographicsCSV, listingsCSV)

	result, err := Run(context.Background(), spec)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Warning)

	// "325-A" resolves via partial similarity, "10001" exactly;
	// "N/A" has no digits and "777" scores below the threshold.
	require.Len(t, result.Listings, 2)

	first := result.Listings[0]
	assert.Equal(t, "32599", first.ZipCode)
	assert.Equal(t, "123 Palm Ave", first.RawAddress)
	assert.Equal(t, "Low", first.CrimeIndex)
	assert.InDelta(t, 8.5, float64(first.SchoolRating), 1e-9)
	assert.InDelta(t, 250000.0/1500.0, float64(first.PricePerSqFt), 1e-9)
	assert.Equal(t, "72000", first.Extra["median_income"])
	assert.Equal(t, "1999", first.Extra["year_built"])

	// Zero area keeps its row, with a non-finite metric
	second := result.Listings[1]
	assert.Equal(t, "10001", second.ZipCode)
	assert.True(t, math.IsInf(float64(second.PricePerSqFt), 1))

	s := result.Summary
	assert.Equal(t, 2, s.DemographicRows)
	assert.Equal(t, 4, s.ListingRows)
	assert.Equal(t, 2, s.CanonicalCodes)
	assert.Equal(t, 3, s.DistinctPrefixes)
	assert.Equal(t, 2, s.Matched)
	assert.Equal(t, 1, s.DroppedNoPrefix)
	assert.Equal(t, 1, s.DroppedBelowThreshold)
	assert.Equal(t, 2, s.Joined)
}

func TestRun_MissingDemographicsIsRecoverable(t *testing.T) {
	spec := testSpec(t, "", listingsCSV)

	result, err := Run(context.Background(), spec)
	require.NoError(t, err, "a missing source must not escape as an error")
	require.NotNil(t, result)

	assert.Empty(t, result.Listings)
	assert.NotEmpty(t, result.Warning)
	assert.Contains(t, result.Warning, "demographics.csv")
}

func TestRun_MissingListingsIsRecoverable(t *testing.T) {
	spec := testSpec(t, demographicsCSV, "")

	result, err := Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Empty(t, result.Listings)
	assert.Contains(t, result.Warning, "listings.csv")
}

func TestRun_EmptyDemographicsTable(t *testing.T) {
	spec := testSpec(t, "zip_code,school_rating,crime_index\n", listingsCSV)

	result, err := Run(context.Background(), spec)
	require.NoError(t, err)

	assert.Empty(t, result.Listings)
	assert.Empty(t, result.Warning, "an empty table is not a missing source")
	assert.Equal(t, 0, result.Summary.Matched)
	assert.Equal(t, 4, result.Summary.ListingRows)
}

func TestRun_IsDeterministic(t *testing.T) {
	spec := testSpec(t, demographicsCSV, listingsCSV)

	first, err := Run(context.Background(), spec)
	require.NoError(t, err)
	second, err := Run(context.Background(), spec)
	require.NoError(t, err)

	require.Len(t, second.Listings, len(first.Listings))
	for i := range first.Listings {
		assert.Equal(t, first.Listings[i].ZipCode, second.Listings[i].ZipCode)
		assert.Equal(t, first.Listings[i].RawAddress, second.Listings[i].RawAddress)
	}
	assert.Equal(t, first.Summary, second.Summary)
}

func TestRun_PaddedZipStillMatches(t *testing.T) {
	// "607" in the demographics file lost its leading zeros upstream;
	// normalization restores "00607" and the listing prefix aligns with it.
	spec := testSpec(t,
		"zip_code,school_rating,crime_index\n607,7.2,Medium\n",
		"postal_code,listing_price,sq_ft,raw_address\n00607-B,120000,1200,\"5 Coast Hwy\"\n")

	result, err := Run(context.Background(), spec)
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, "00607", result.Listings[0].ZipCode)
}

func TestSpec_CacheKeyDistinguishesInputs(t *testing.T) {
	a := testSpec(t, demographicsCSV, listingsCSV)
	b := testSpec(t, demographicsCSV, listingsCSV)
	assert.NotEqual(t, a.CacheKey(), b.CacheKey(), "different paths, different identities")

	c := *a
	c.Threshold = 90
	assert.NotEqual(t, a.CacheKey(), c.CacheKey(), "options are part of the identity")

	d := *a
	d.CacheTTL = time.Minute
	assert.Equal(t, a.CacheKey(), d.CacheKey(), "TTL does not change the identity")
}

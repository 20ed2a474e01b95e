package insights

import (
	"context"
	"testing"

	"property-insights/core/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_SummaryAndReportShareTheCachedRun(t *testing.T) {
	_, spec := newTestApp(t, testDemographics, testListings)
	store := pipeline.NewStore()
	svc := NewService(spec, store, zap.NewNop())

	listings, err := svc.Listings(context.Background())
	require.NoError(t, err)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, listings.Count, summary.TotalListings)
	assert.Equal(t, listings.Count, report.Summary.Joined)
	// All three views were cut from the same memoized result
	assert.Equal(t, listings.GeneratedAt, summary.GeneratedAt)
	assert.Equal(t, listings.GeneratedAt, report.GeneratedAt)
}

func TestService_MissingSourceWarningPropagates(t *testing.T) {
	_, spec := newTestApp(t, "", testListings)
	svc := NewService(spec, pipeline.NewStore(), zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalListings)
	assert.NotEmpty(t, summary.Warning)
}

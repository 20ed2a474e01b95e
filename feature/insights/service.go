package insights

import (
	"context"

	"property-insights/core/pipeline"
	"property-insights/feature/insights/models"

	"go.uber.org/zap"
)

// Service owns the pipeline spec and the result cache for this feature.
type Service struct {
	spec   *pipeline.Spec
	store  *pipeline.Store
	logger *zap.Logger
}

// NewService creates a new insights service.
func NewService(spec *pipeline.Spec, store *pipeline.Store, logger *zap.Logger) *Service {
	return &Service{
		spec:   spec,
		store:  store,
		logger: logger,
	}
}

// Listings returns the enriched listing table, memoized per spec identity.
func (s *Service) Listings(ctx context.Context) (*models.ListingsReport, error) {
	result, err := s.result(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewListingsReport(result), nil
}

// Summary returns the dashboard KPI metrics.
func (s *Service) Summary(ctx context.Context) (*models.SummaryReport, error) {
	result, err := s.result(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewSummaryReport(result), nil
}

// Report returns the reconciliation data-quality counts.
func (s *Service) Report(ctx context.Context) (*models.QualityReport, error) {
	result, err := s.result(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewQualityReport(result), nil
}

// Refresh drops the cached result and recomputes from the sources.
func (s *Service) Refresh(ctx context.Context) (*models.ListingsReport, error) {
	s.store.Invalidate(s.spec)
	s.logger.Info("Pipeline cache invalidated, recomputing")
	result, err := s.result(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewListingsReport(result), nil
}

func (s *Service) result(ctx context.Context) (*pipeline.Result, error) {
	result, err := s.store.GetOrCompute(ctx, s.spec)
	if err != nil {
		return nil, err
	}
	if result.Warning != "" {
		s.logger.Warn("Pipeline produced empty table", zap.String("warning", result.Warning))
	}
	return result, nil
}

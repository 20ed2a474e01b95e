package insights

import (
	"property-insights/core/logger"
	"property-insights/feature/insights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the insights feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.SummaryReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the insights routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/insights")
	group.Get("/listings", h.HandleListings)
	group.Get("/summary", h.HandleSummary)
	group.Get("/report", h.HandleReport)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleListings serves the enriched listing table.
// @Summary Enriched Listings
// @Description Returns the denormalized table joining listings with neighborhood demographics, one row per matched listing. When a source file is missing, the table is empty and a warning is set.
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} models.ListingsReport "Enriched listing table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /insights/listings [get]
func (h *Handler) HandleListings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Serving enriched listings")

	report, err := h.service.Listings(c.Context())
	if err != nil {
		l.Error("Pipeline failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}

// HandleSummary serves the KPI metrics.
// @Summary KPI Summary
// @Description Returns aggregate dashboard metrics. Averages exclude non-finite values and serialize as null when no value contributes.
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} models.SummaryReport "KPI metrics"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /insights/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Serving KPI summary")

	report, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Pipeline failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}

// HandleReport serves the reconciliation data-quality report.
// @Summary Reconciliation Report
// @Description Returns how many listing rows matched a canonical postal code and how many were dropped (no digit prefix, below similarity threshold).
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} models.QualityReport "Reconciliation counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /insights/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Serving reconciliation report")

	report, err := h.service.Report(c.Context())
	if err != nil {
		l.Error("Pipeline failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}

// HandleRefresh invalidates the cached result and recomputes.
// @Summary Refresh Pipeline
// @Description Drops the memoized pipeline result and recomputes it from the source files.
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} models.ListingsReport "Recomputed listing table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /insights/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refreshing pipeline result")

	report, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Pipeline failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}

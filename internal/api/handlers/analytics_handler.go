package handlers

import (
	"time"

	"janseva/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	intentService    *service.IntentService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, intentService *service.IntentService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		intentService:    intentService,
		logger:           logger,
	}
}

// Overview godoc
// @Summary High-level chat metrics
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.OverviewResponse
// @Router /api/v1/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	resp, err := h.analyticsService.Overview(c.Context())
	if err != nil {
		h.logger.Error("Analytics overview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}
	return c.JSON(resp)
}

// Intents godoc
// @Summary Top intents
// @Description Most frequent intent labels, optionally windowed by from/to (RFC3339)
// @Tags analytics
// @Produce json
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param limit query int false "Limit" default(20) maximum(100)
// @Security Bearer
// @Success 200 {array} dto.IntentCount
// @Router /api/v1/analytics/intents [get]
func (h *AnalyticsHandler) Intents(c *fiber.Ctx) error {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid from date",
		})
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid to date",
		})
	}

	results, err := h.analyticsService.TopIntents(c.Context(), from, to, c.QueryInt("limit", 0))
	if err != nil {
		h.logger.Error("Analytics intents failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{"total": len(results), "results": results})
}

// Queries godoc
// @Summary Most common user queries
// @Tags analytics
// @Produce json
// @Param limit query int false "Limit" default(20) maximum(100)
// @Security Bearer
// @Success 200 {array} dto.QueryCount
// @Router /api/v1/analytics/queries [get]
func (h *AnalyticsHandler) Queries(c *fiber.Ctx) error {
	results, err := h.analyticsService.TopQueries(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		h.logger.Error("Analytics queries failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{"total": len(results), "results": results})
}

// Sources godoc
// @Summary Breakdown of replies by source
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SourceCount
// @Router /api/v1/analytics/sources [get]
func (h *AnalyticsHandler) Sources(c *fiber.Ctx) error {
	results, err := h.analyticsService.Sources(c.Context())
	if err != nil {
		h.logger.Error("Analytics sources failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{"results": results})
}

// Classify godoc
// @Summary Predict the corpus class of free text
// @Description Advisory naive-Bayes prediction: does the text read like an FAQ or a scheme inquiry
// @Tags analytics
// @Produce json
// @Param q query string true "Text to classify"
// @Security Bearer
// @Success 200 {object} dto.ClassifyResponse
// @Router /api/v1/analytics/classify [get]
func (h *AnalyticsHandler) Classify(c *fiber.Ctx) error {
	return c.JSON(h.intentService.Classify(c.Query("q")))
}

// DashboardStats godoc
// @Summary Admin dashboard counters
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardStatsResponse
// @Router /api/v1/dashboard/stats [get]
func (h *AnalyticsHandler) DashboardStats(c *fiber.Ctx) error {
	resp, err := h.analyticsService.DashboardStats(c.Context())
	if err != nil {
		h.logger.Error("Dashboard stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}
	return c.JSON(resp)
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Also accept plain dates
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

package handlers

import (
	"errors"
	"strings"

	"janseva/internal/dto"
	"janseva/internal/repository"
	"janseva/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FaqHandler struct {
	faqService *service.FaqService
	logger     *zap.Logger
}

func NewFaqHandler(faqService *service.FaqService, logger *zap.Logger) *FaqHandler {
	return &FaqHandler{
		faqService: faqService,
		logger:     logger,
	}
}

// Create godoc
// @Summary Create an FAQ entry
// @Tags faqs
// @Accept json
// @Produce json
// @Param request body dto.CreateFaqRequest true "FAQ entry"
// @Security Bearer
// @Success 201 {object} models.Faq
// @Failure 400 {object} map[string]string
// @Router /api/v1/faqs [post]
func (h *FaqHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.faqService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionMissing) || errors.Is(err, service.ErrAnswerMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(faq)
}

// List godoc
// @Summary List or search FAQ entries
// @Description Filter by tags/department, or rank by relevance with q
// @Tags faqs
// @Produce json
// @Param q query string false "Full-text query"
// @Param tags query string false "Comma-separated tags (all must match)"
// @Param department query string false "Department filter"
// @Param limit query int false "Limit" default(20)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} dto.FaqListResponse
// @Router /faqs [get]
func (h *FaqHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit > 200 {
		limit = 200
	}
	if limit < 0 {
		limit = 20
	}
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}

	filter := repository.FaqFilter{
		Department: c.Query("department"),
		Tags:       splitCSV(c.Query("tags")),
		Limit:      uint64(limit),
		Offset:     uint64(skip),
	}

	results, err := h.faqService.List(c.Context(), strings.TrimSpace(c.Query("q")), filter)
	if err != nil {
		h.logger.Error("Failed to list FAQs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(dto.FaqListResponse{
		Total:   int64(len(results)),
		Results: results,
	})
}

// GetByID godoc
// @Summary Get an FAQ entry
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} models.Faq
// @Failure 404 {object} map[string]string
// @Router /faqs/{id} [get]
func (h *FaqHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid FAQ id",
		})
	}

	faq, err := h.faqService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "FAQ not found",
			})
		}
		h.logger.Error("Failed to get FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(faq)
}

// Update godoc
// @Summary Update an FAQ entry
// @Tags faqs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.UpdateFaqRequest true "Fields to update"
// @Security Bearer
// @Success 200 {object} models.Faq
// @Failure 404 {object} map[string]string
// @Router /api/v1/faqs/{id} [put]
func (h *FaqHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid FAQ id",
		})
	}

	var req dto.UpdateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	faq, err := h.faqService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFaqNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "FAQ not found",
			})
		case errors.Is(err, service.ErrQuestionMissing), errors.Is(err, service.ErrAnswerMissing):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(faq)
}

// Delete godoc
// @Summary Delete an FAQ entry
// @Tags faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/faqs/{id} [delete]
func (h *FaqHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid FAQ id",
		})
	}

	if err := h.faqService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "FAQ not found",
			})
		}
		h.logger.Error("Failed to delete FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{"message": "FAQ deleted", "id": id.String()})
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

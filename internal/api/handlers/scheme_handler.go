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

type SchemeHandler struct {
	schemeService *service.SchemeService
	logger        *zap.Logger
}

func NewSchemeHandler(schemeService *service.SchemeService, logger *zap.Logger) *SchemeHandler {
	return &SchemeHandler{
		schemeService: schemeService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a scheme entry
// @Tags schemes
// @Accept json
// @Produce json
// @Param request body dto.CreateSchemeRequest true "Scheme entry"
// @Security Bearer
// @Success 201 {object} models.Scheme
// @Failure 400 {object} map[string]string
// @Router /api/v1/schemes [post]
func (h *SchemeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	scheme, err := h.schemeService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSchemeNameMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create scheme", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(scheme)
}

// List godoc
// @Summary List or search scheme entries
// @Description Filter by category/state, or rank by relevance with q
// @Tags schemes
// @Produce json
// @Param q query string false "Full-text query"
// @Param category query string false "Category filter"
// @Param state query string false "State filter"
// @Param limit query int false "Limit" default(20)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} dto.SchemeListResponse
// @Router /schemes [get]
func (h *SchemeHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}
	if limit < 0 {
		limit = 20
	}
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}

	filter := repository.SchemeFilter{
		Category: c.Query("category"),
		State:    c.Query("state"),
		Limit:    uint64(limit),
		Offset:   uint64(skip),
	}

	results, err := h.schemeService.List(c.Context(), strings.TrimSpace(c.Query("q")), filter)
	if err != nil {
		h.logger.Error("Failed to list schemes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(dto.SchemeListResponse{
		Total:   int64(len(results)),
		Results: results,
	})
}

// GetByID godoc
// @Summary Get a scheme entry
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} models.Scheme
// @Failure 404 {object} map[string]string
// @Router /schemes/{id} [get]
func (h *SchemeHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scheme id",
		})
	}

	scheme, err := h.schemeService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSchemeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Scheme not found",
			})
		}
		h.logger.Error("Failed to get scheme", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(scheme)
}

// Update godoc
// @Summary Update a scheme entry
// @Tags schemes
// @Accept json
// @Produce json
// @Param id path string true "Scheme ID"
// @Param request body dto.UpdateSchemeRequest true "Fields to update"
// @Security Bearer
// @Success 200 {object} models.Scheme
// @Failure 404 {object} map[string]string
// @Router /api/v1/schemes/{id} [put]
func (h *SchemeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scheme id",
		})
	}

	var req dto.UpdateSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	scheme, err := h.schemeService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchemeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Scheme not found",
			})
		case errors.Is(err, service.ErrSchemeNameMissing):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to update scheme", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(scheme)
}

// Delete godoc
// @Summary Delete a scheme entry
// @Tags schemes
// @Produce json
// @Param id path string true "Scheme ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/schemes/{id} [delete]
func (h *SchemeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scheme id",
		})
	}

	if err := h.schemeService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrSchemeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Scheme not found",
			})
		}
		h.logger.Error("Failed to delete scheme", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{"message": "Scheme deleted", "id": id.String()})
}

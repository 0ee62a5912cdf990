package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
)

// CategoryHandler serves the business-category registry
type CategoryHandler struct {
	registry *catalog.Registry
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(registry *catalog.Registry) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

// ListCategories godoc
// @Summary List business categories
// @Description Returns all preset business categories with their capabilities
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.registry.List(),
	})
}

// GetCategory godoc
// @Summary Get business category
// @Description Returns a single category with its capability list and defaults
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	cat, ok := h.registry.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "category not found",
		})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"data":     cat,
		"defaults": catalog.DefaultCapabilities(cat),
	})
}

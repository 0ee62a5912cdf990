package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agentforge/agentforge-be/internal/core/integrations"
)

// IntegrationHandler serves the static integration catalog
type IntegrationHandler struct {
	catalog *integrations.Catalog
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(catalog *integrations.Catalog) *IntegrationHandler {
	return &IntegrationHandler{catalog: catalog}
}

// ListIntegrations godoc
// @Summary List integrations
// @Description Returns the catalog of third-party service integrations
// @Tags Integrations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /integrations [get]
func (h *IntegrationHandler) ListIntegrations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.catalog.List(),
	})
}

// GetIntegration godoc
// @Summary Get integration
// @Description Returns a single integration with its setup steps
// @Tags Integrations
// @Produce json
// @Param id path string true "Integration ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /integrations/{id} [get]
func (h *IntegrationHandler) GetIntegration(c *fiber.Ctx) error {
	entry, ok := h.catalog.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "integration not found",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   entry,
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/agentforge/agentforge-be/internal/core/draft"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/services"
)

// DraftHandler handles saved wizard drafts (resume-later)
type DraftHandler struct {
	draftService *services.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// SaveDraft godoc
// @Summary Save in-progress draft
// @Description Store the wizard state so the user can resume later
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft body draft.Draft true "Draft state"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /drafts [put]
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var d draft.Draft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	// Drafts are saved as-is: partial state is expected mid-wizard
	if err := h.draftService.SaveDraft(userID, d); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save draft",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Draft saved",
	})
}

// GetDraft godoc
// @Summary Get saved draft
// @Tags Drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /drafts [get]
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	d, err := h.draftService.GetDraft(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no saved draft",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load draft",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   d,
	})
}

// DiscardDraft godoc
// @Summary Discard saved draft
// @Tags Drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /drafts [delete]
func (h *DraftHandler) DiscardDraft(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.draftService.DiscardDraft(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to discard draft",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Draft discarded",
	})
}

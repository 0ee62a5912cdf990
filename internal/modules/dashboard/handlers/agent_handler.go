package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/agentforge/agentforge-be/internal/core/draft"
	"github.com/agentforge/agentforge-be/internal/core/widget"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/services"
)

// AgentHandler handles agent-related requests
type AgentHandler struct {
	agentService *services.AgentService
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService *services.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("userID").(string)
	return uuid.Parse(idStr)
}

// CreateAgent godoc
// @Summary Create a new agent
// @Description Validate the draft, synthesize the prompt and messages, and persist the agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param draft body draft.Draft true "Agent draft"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *fiber.Ctx) error {
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

	// Validation failures are inline errors; they never reach persistence
	if err := draft.Validate(d, h.agentService.Registry()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	agent, err := h.agentService.CreateAgent(userID, d)
	if err != nil {
		log.Printf("❌ Failed to create agent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create agent",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Agent created successfully",
		"data":    agent,
	})
}

// ListAgents godoc
// @Summary List agents
// @Description Retrieve all agents owned by the authenticated user
// @Tags Agents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	agents, err := h.agentService.ListAgents(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch agents",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   agents,
	})
}

// GetAgent godoc
// @Summary Get agent by ID
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	agent, err := h.agentService.GetAgent(id, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "agent not found",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   agent,
	})
}

// UpdateAgent godoc
// @Summary Update agent
// @Description Update editable fields of an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body services.UpdateAgentRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	var req services.UpdateAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	agent, err := h.agentService.UpdateAgent(id, userID, req)
	if err != nil {
		if err == services.ErrAgentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "agent not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update agent",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   agent,
	})
}

// DeleteAgent godoc
// @Summary Delete agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	if err := h.agentService.DeleteAgent(id, userID); err != nil {
		if err == services.ErrAgentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "agent not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete agent",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Agent deleted",
	})
}

// GetWidgetSnippet godoc
// @Summary Get widget embed code
// @Description Returns the script tag to embed the agent's chat widget
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Param greeting query string false "Optional greeting attribute"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /agents/{id}/snippet [get]
func (h *AgentHandler) GetWidgetSnippet(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	snippet, err := h.agentService.WidgetSnippet(id, userID, c.Query("greeting"))
	if err != nil {
		if err == services.ErrAgentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "agent not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"snippet": snippet,
	})
}

// UpdateWidgetConfig godoc
// @Summary Update widget display settings
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param config body widget.Config true "Widget configuration"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /agents/{id}/widget [put]
func (h *AgentHandler) UpdateWidgetConfig(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	var cfg widget.Config
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	agent, err := h.agentService.UpdateWidgetConfig(id, userID, cfg)
	if err != nil {
		if err == services.ErrAgentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "agent not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   agent,
	})
}

// PreviewAgent godoc
// @Summary Preview agent behavior
// @Description Send a sample message to the agent's system prompt and return the reply
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param request body PreviewRequest true "Sample message"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /agents/{id}/preview [post]
func (h *AgentHandler) PreviewAgent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid agent id",
		})
	}

	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	reply, err := h.agentService.Preview(c.Context(), id, userID, req.Message)
	if err != nil {
		if err == services.ErrAgentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "agent not found",
			})
		}
		log.Printf("❌ Preview failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "preview failed",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"reply":  reply,
	})
}

// PreviewRequest is the body for the agent preview endpoint
type PreviewRequest struct {
	Message string `json:"message"`
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
	"github.com/agentforge/agentforge-be/internal/core/draft"
	"github.com/agentforge/agentforge-be/internal/core/llm"
	"github.com/agentforge/agentforge-be/internal/core/widget"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/models"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/repositories"
)

// ErrAgentNotFound is returned when an agent does not exist or belongs to
// another user.
var ErrAgentNotFound = fmt.Errorf("agent not found")

// AgentService creates and manages configured agents.
type AgentService struct {
	agentRepo     repositories.AgentRepo
	registry      *catalog.Registry
	llmService    *llm.Service
	widgetBaseURL string
}

// NewAgentService creates a new agent service
func NewAgentService(agentRepo repositories.AgentRepo, registry *catalog.Registry, llmService *llm.Service, widgetBaseURL string) *AgentService {
	return &AgentService{
		agentRepo:     agentRepo,
		registry:      registry,
		llmService:    llmService,
		widgetBaseURL: widgetBaseURL,
	}
}

// Registry exposes the category registry for handler-level validation.
func (s *AgentService) Registry() *catalog.Registry {
	return s.registry
}

// CreateAgent consumes a validated draft: runs the synthesizers once and
// persists the resulting agent.
func (s *AgentService) CreateAgent(userID uuid.UUID, d draft.Draft) (*models.Agent, error) {
	sub, err := draft.BuildSubmission(d, s.registry)
	if err != nil {
		return nil, err
	}

	capsJSON, err := json.Marshal(sub.Capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode capabilities: %w", err)
	}
	infoJSON, err := json.Marshal(sub.BusinessInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to encode business info: %w", err)
	}
	cfgJSON, err := json.Marshal(widget.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to encode widget config: %w", err)
	}

	agent := &models.Agent{
		UserID:             userID,
		Name:               sub.Name,
		Description:        sub.Description,
		SystemPrompt:       sub.SystemPrompt,
		WelcomeMessage:     sub.WelcomeMessage,
		SuggestedQuestions: sub.SuggestedQuestions,
		AgentType:          sub.AgentType,
		BusinessCategory:   sub.BusinessCategory,
		Capabilities:       capsJSON,
		BusinessInfo:       infoJSON,
		WidgetConfig:       cfgJSON,
		IsActive:           true,
	}

	if err := s.agentRepo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}

	return agent, nil
}

// GetAgent returns an agent owned by the given user.
func (s *AgentService) GetAgent(id, userID uuid.UUID) (*models.Agent, error) {
	agent, err := s.agentRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if agent.UserID != userID {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}

// ListAgents returns all agents of a user, newest first.
func (s *AgentService) ListAgents(userID uuid.UUID) ([]models.Agent, error) {
	return s.agentRepo.FindByUserID(userID)
}

// UpdateAgentRequest carries the editable agent fields.
type UpdateAgentRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	WelcomeMessage *string `json:"welcome_message,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// UpdateAgent applies the editable fields to an owned agent.
func (s *AgentService) UpdateAgent(id, userID uuid.UUID, req UpdateAgentRequest) (*models.Agent, error) {
	agent, err := s.GetAgent(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Description != nil {
		agent.Description = *req.Description
	}
	if req.WelcomeMessage != nil {
		agent.WelcomeMessage = *req.WelcomeMessage
	}
	if req.IsActive != nil {
		agent.IsActive = *req.IsActive
	}

	if err := s.agentRepo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return agent, nil
}

// DeleteAgent removes an owned agent.
func (s *AgentService) DeleteAgent(id, userID uuid.UUID) error {
	if _, err := s.GetAgent(id, userID); err != nil {
		return err
	}
	return s.agentRepo.Delete(id)
}

// WidgetSnippet renders the embed code for a website agent.
func (s *AgentService) WidgetSnippet(id, userID uuid.UUID, greeting string) (string, error) {
	agent, err := s.GetAgent(id, userID)
	if err != nil {
		return "", err
	}
	if agent.AgentType != draft.TypeWebsite {
		return "", fmt.Errorf("widget snippets are only available for website agents")
	}

	cfg := widget.DefaultConfig()
	if len(agent.WidgetConfig) > 0 {
		if err := json.Unmarshal(agent.WidgetConfig, &cfg); err != nil {
			return "", fmt.Errorf("failed to decode widget config: %w", err)
		}
	}

	return widget.Snippet(s.widgetBaseURL, agent.ID.String(), cfg, greeting), nil
}

// UpdateWidgetConfig replaces the widget display settings of a website agent.
func (s *AgentService) UpdateWidgetConfig(id, userID uuid.UUID, cfg widget.Config) (*models.Agent, error) {
	agent, err := s.GetAgent(id, userID)
	if err != nil {
		return nil, err
	}
	if agent.AgentType != draft.TypeWebsite {
		return nil, fmt.Errorf("widget config is only available for website agents")
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode widget config: %w", err)
	}
	agent.WidgetConfig = cfgJSON

	if err := s.agentRepo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update widget config: %w", err)
	}
	return agent, nil
}

// Preview runs a sample message against the agent's stored system prompt.
func (s *AgentService) Preview(ctx context.Context, id, userID uuid.UUID, message string) (string, error) {
	agent, err := s.GetAgent(id, userID)
	if err != nil {
		return "", err
	}
	return s.llmService.GenerateResponse(ctx, agent.SystemPrompt, message)
}

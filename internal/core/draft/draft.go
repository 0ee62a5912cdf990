package draft

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
	"github.com/agentforge/agentforge-be/internal/core/prompt"
)

const maxDescriptionLen = 500

// Agent types supported by the creation wizard.
const (
	TypeWhatsApp = "whatsapp"
	TypeWebsite  = "website"
)

// Draft is the in-progress agent configuration assembled across wizard steps.
// It is mutated step by step and consumed exactly once by BuildSubmission.
type Draft struct {
	BusinessDetails     prompt.BusinessDetails `json:"business_details"`
	CategoryID          string                 `json:"category_id"`
	ActiveCapabilityIDs []string               `json:"active_capability_ids"`
	CustomInstructions  string                 `json:"custom_instructions,omitempty"`
	AgentType           string                 `json:"agent_type"`
}

// BusinessInfo is the subset of business details sent to persistence.
type BusinessInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
}

// Submission is the write-once payload handed to the create-agent endpoint.
type Submission struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	SystemPrompt       string       `json:"system_prompt"`
	WelcomeMessage     string       `json:"welcome_message"`
	SuggestedQuestions string       `json:"suggested_questions"`
	AgentType          string       `json:"agent_type"`
	BusinessCategory   string       `json:"business_category"`
	Capabilities       []string     `json:"capabilities"`
	BusinessInfo       BusinessInfo `json:"business_info"`
}

// Validate checks the draft against the registry. Failures here are shown
// inline to the user and never reach persistence.
func Validate(d Draft, reg *catalog.Registry) error {
	if strings.TrimSpace(d.BusinessDetails.Name) == "" {
		return fmt.Errorf("business name is required")
	}
	if d.BusinessDetails.Email != "" {
		if _, err := mail.ParseAddress(d.BusinessDetails.Email); err != nil {
			return fmt.Errorf("invalid email address")
		}
	}
	if utf8.RuneCountInString(d.BusinessDetails.Description) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLen)
	}

	if d.AgentType != TypeWhatsApp && d.AgentType != TypeWebsite {
		return fmt.Errorf("agent_type must be %q or %q", TypeWhatsApp, TypeWebsite)
	}

	cat, ok := reg.Get(d.CategoryID)
	if !ok {
		return fmt.Errorf("unknown business category: %s", d.CategoryID)
	}

	if !catalog.HasSelection(d.ActiveCapabilityIDs) {
		return fmt.Errorf("select at least one capability")
	}
	known := make(map[string]bool, len(cat.Capabilities))
	for _, cap := range cat.Capabilities {
		known[cap.ID] = true
	}
	for _, id := range d.ActiveCapabilityIDs {
		if !known[id] {
			return fmt.Errorf("capability %q does not belong to category %q", id, d.CategoryID)
		}
	}

	return nil
}

// BuildSubmission validates the draft and runs the prompt and message
// synthesizers once to produce the create-agent payload.
func BuildSubmission(d Draft, reg *catalog.Registry) (*Submission, error) {
	if err := Validate(d, reg); err != nil {
		return nil, err
	}

	cat, _ := reg.Get(d.CategoryID)
	details := d.BusinessDetails

	return &Submission{
		Name:               details.Name,
		Description:        details.Description,
		SystemPrompt:       prompt.BuildSystemPrompt(details, cat, d.ActiveCapabilityIDs, d.CustomInstructions),
		WelcomeMessage:     prompt.WelcomeMessage(details, cat, d.ActiveCapabilityIDs),
		SuggestedQuestions: strings.Join(prompt.SuggestedQuestions(d.ActiveCapabilityIDs), "\n"),
		AgentType:          d.AgentType,
		BusinessCategory:   cat.ID,
		Capabilities:       append([]string(nil), d.ActiveCapabilityIDs...),
		BusinessInfo: BusinessInfo{
			Name:         details.Name,
			Phone:        details.Phone,
			Email:        details.Email,
			Address:      details.Address,
			WorkingHours: details.WorkingHours,
		},
	}, nil
}

package draft

import (
	"strings"
	"testing"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
	"github.com/agentforge/agentforge-be/internal/core/prompt"
)

func testRegistry() *catalog.Registry {
	return catalog.NewRegistry([]catalog.BusinessCategory{
		{
			ID:          "restaurant",
			DisplayName: "Restaurant & Food",
			Capabilities: []catalog.CapabilityDescriptor{
				{ID: "reservations", Label: "Table Reservations", DefaultEnabled: true},
				{ID: "menu", Label: "Menu & Pricing", DefaultEnabled: true},
				{ID: "orders", Label: "Food Orders", DefaultEnabled: true},
				{ID: "billing", Label: "Bill Payment", DefaultEnabled: true},
			},
		},
	})
}

func validDraft() Draft {
	return Draft{
		BusinessDetails: prompt.BusinessDetails{
			Name:  "Joe's Pizza",
			Phone: "+1 555 0100",
		},
		CategoryID:          "restaurant",
		ActiveCapabilityIDs: []string{"reservations", "menu"},
		AgentType:           TypeWhatsApp,
	}
}

func TestValidate(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		name    string
		modify  func(*Draft)
		wantErr string
	}{
		{"valid", func(d *Draft) {}, ""},
		{"missing name", func(d *Draft) { d.BusinessDetails.Name = "  " }, "business name"},
		{"bad email", func(d *Draft) { d.BusinessDetails.Email = "not-an-email" }, "email"},
		{"long description", func(d *Draft) { d.BusinessDetails.Description = strings.Repeat("x", 501) }, "description"},
		{"bad agent type", func(d *Draft) { d.AgentType = "telegram" }, "agent_type"},
		{"unknown category", func(d *Draft) { d.CategoryID = "florist" }, "category"},
		{"no capabilities", func(d *Draft) { d.ActiveCapabilityIDs = nil }, "capability"},
		{"foreign capability", func(d *Draft) { d.ActiveCapabilityIDs = []string{"menu", "xrays"} }, "does not belong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.modify(&d)

			err := Validate(d, reg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsOptionalEmail(t *testing.T) {
	reg := testRegistry()
	d := validDraft()
	d.BusinessDetails.Email = "joe@example.com"

	if err := Validate(d, reg); err != nil {
		t.Errorf("Validate() error = %v, want nil for a well-formed email", err)
	}
}

func TestBuildSubmission(t *testing.T) {
	reg := testRegistry()
	d := validDraft()
	d.BusinessDetails.Email = "joe@example.com"
	d.ActiveCapabilityIDs = []string{"reservations", "menu", "orders", "billing"}
	d.CustomInstructions = "Mention the lunch special."

	sub, err := BuildSubmission(d, reg)
	if err != nil {
		t.Fatalf("BuildSubmission() error: %v", err)
	}

	if sub.Name != "Joe's Pizza" {
		t.Errorf("Name = %q, want %q", sub.Name, "Joe's Pizza")
	}
	if sub.AgentType != TypeWhatsApp {
		t.Errorf("AgentType = %q, want %q", sub.AgentType, TypeWhatsApp)
	}
	if sub.BusinessCategory != "restaurant" {
		t.Errorf("BusinessCategory = %q, want %q", sub.BusinessCategory, "restaurant")
	}
	if !strings.Contains(sub.SystemPrompt, "Mention the lunch special.") {
		t.Error("SystemPrompt should carry the custom instructions")
	}
	if !strings.Contains(sub.WelcomeMessage, "Joe's Pizza") {
		t.Error("WelcomeMessage should greet with the business name")
	}

	// Newline-joined, one per matched priority group
	questions := strings.Split(sub.SuggestedQuestions, "\n")
	want := []string{
		"I want to book an appointment",
		"Show me your services/menu",
		"Track my order status",
		"Check my pending payment",
	}
	if len(questions) != len(want) {
		t.Fatalf("SuggestedQuestions = %q, want %d entries", sub.SuggestedQuestions, len(want))
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("SuggestedQuestions[%d] = %q, want %q", i, questions[i], want[i])
		}
	}

	info := sub.BusinessInfo
	if info.Name != "Joe's Pizza" || info.Phone != "+1 555 0100" || info.Email != "joe@example.com" {
		t.Errorf("BusinessInfo = %+v, want the draft's contact subset", info)
	}
}

func TestBuildSubmissionRejectsInvalidDraft(t *testing.T) {
	reg := testRegistry()
	d := validDraft()
	d.ActiveCapabilityIDs = nil

	if _, err := BuildSubmission(d, reg); err == nil {
		t.Error("BuildSubmission() should fail validation before synthesizing")
	}
}

func TestBuildSubmissionCopiesCapabilities(t *testing.T) {
	reg := testRegistry()
	d := validDraft()

	sub, err := BuildSubmission(d, reg)
	if err != nil {
		t.Fatalf("BuildSubmission() error: %v", err)
	}

	sub.Capabilities[0] = "mutated"
	if d.ActiveCapabilityIDs[0] == "mutated" {
		t.Error("Submission.Capabilities must not alias the draft's slice")
	}
}

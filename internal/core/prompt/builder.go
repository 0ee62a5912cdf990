package prompt

import (
	"fmt"
	"strings"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
)

// BusinessDetails holds the wizard's business-info step. Any optional field
// left empty is omitted from synthesized output, never rendered as an empty
// placeholder.
type BusinessDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
	Description  string `json:"description,omitempty"`
}

// ActiveLabels resolves active capability ids to their labels in the
// category's declared order, regardless of the order ids appear in activeIDs.
func ActiveLabels(cat catalog.BusinessCategory, activeIDs []string) []string {
	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	var labels []string
	for _, cap := range cat.Capabilities {
		if active[cap.ID] {
			labels = append(labels, cap.Label)
		}
	}
	return labels
}

// BuildSystemPrompt assembles the system prompt for an agent. Deterministic:
// the same inputs always produce byte-identical output.
func BuildSystemPrompt(details BusinessDetails, cat catalog.BusinessCategory, activeIDs []string, customInstructions string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are the AI assistant for %s, a %s business.\n", details.Name, strings.ToLower(cat.DisplayName)))

	// Business Information: only non-empty fields, each on its own line
	var info []string
	if details.Name != "" {
		info = append(info, fmt.Sprintf("- Business Name: %s", details.Name))
	}
	if details.Phone != "" {
		info = append(info, fmt.Sprintf("- Phone: %s", details.Phone))
	}
	if details.Email != "" {
		info = append(info, fmt.Sprintf("- Email: %s", details.Email))
	}
	if details.Address != "" {
		info = append(info, fmt.Sprintf("- Address: %s", details.Address))
	}
	if details.WorkingHours != "" {
		info = append(info, fmt.Sprintf("- Working Hours: %s", details.WorkingHours))
	}
	if details.Description != "" {
		info = append(info, fmt.Sprintf("- About: %s", details.Description))
	}
	if len(info) > 0 {
		sb.WriteString("\n## Business Information\n")
		for _, line := range info {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	labels := ActiveLabels(cat, activeIDs)
	if len(labels) > 0 {
		sb.WriteString("\n## Your Capabilities\n")
		for _, label := range labels {
			sb.WriteString(fmt.Sprintf("- %s\n", label))
		}
	}

	sb.WriteString("\n## Guidelines\n")
	sb.WriteString("- Keep a warm, conversational tone\n")
	sb.WriteString("- Ask one question at a time\n")
	sb.WriteString("- Confirm all details with the customer before finalizing anything\n")
	sb.WriteString("- If you cannot help with a request, say so politely and offer to connect a human\n")
	sb.WriteString("- Reply in the language the customer writes in\n")
	sb.WriteString("- Use emojis sparingly\n")

	sb.WriteString("\n## Important Rules\n")
	sb.WriteString("- Never invent business information that is not listed above\n")
	sb.WriteString("- For bookings, collect: customer name, phone number, preferred date and time\n")
	sb.WriteString("- For billing, collect: customer name and reference number\n")
	sb.WriteString("- For orders, collect: customer name, phone number, delivery address\n")
	sb.WriteString("- Always close with a helpful follow-up question\n")

	if customInstructions != "" {
		sb.WriteString("\n## Additional Instructions\n")
		sb.WriteString(customInstructions)
		sb.WriteString("\n")
	}

	return sb.String()
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/agentforge/agentforge-be/internal/core/catalog"
)

const maxSuggestedQuestions = 4

// maxWelcomePreview caps the capability bullets in the welcome message. Kept
// separate from maxSuggestedQuestions: the two limits are independent
// contracts that happen to share a value.
const maxWelcomePreview = 4

// questionGroups maps capability-id groups to a canned suggested question.
// Groups are evaluated in this order, at most one question per group.
// The order and wording are part of the output contract; changing either
// changes every agent's suggested questions.
var questionGroups = []struct {
	ids      []string
	question string
}{
	{[]string{"appointments", "reservations", "viewings"}, "I want to book an appointment"},
	{[]string{"menu", "services", "catalog"}, "Show me your services/menu"},
	{[]string{"orders", "tracking", "delivery"}, "Track my order status"},
	{[]string{"billing", "fees", "payments"}, "Check my pending payment"},
	{[]string{"support", "inquiries"}, "I have a question"},
}

// WelcomeMessage greets with the business name and previews the first four
// active capabilities in category order. Fewer than four are listed as-is,
// never padded.
func WelcomeMessage(details BusinessDetails, cat catalog.BusinessCategory, activeIDs []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hi! 👋 Welcome to %s.", details.Name))

	labels := ActiveLabels(cat, activeIDs)
	if len(labels) > maxWelcomePreview {
		labels = labels[:maxWelcomePreview]
	}
	if len(labels) > 0 {
		sb.WriteString(" I can help you with:\n")
		for _, label := range labels {
			sb.WriteString(fmt.Sprintf("• %s\n", label))
		}
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString("How can I help you today?")
	return sb.String()
}

// SuggestedQuestions returns up to four quick-reply questions derived from
// the active capability ids via the fixed priority table above.
func SuggestedQuestions(activeIDs []string) []string {
	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	var questions []string
	for _, group := range questionGroups {
		for _, id := range group.ids {
			if active[id] {
				questions = append(questions, group.question)
				break
			}
		}
		if len(questions) == maxSuggestedQuestions {
			break
		}
	}
	return questions
}

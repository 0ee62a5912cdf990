package prompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestWelcomeMessageFirstFourCapabilities(t *testing.T) {
	cat := restaurantFixture()
	details := BusinessDetails{Name: "Joe's Pizza"}
	active := []string{"reservations", "menu", "orders", "delivery", "offers", "billing"}

	got := WelcomeMessage(details, cat, active)

	if !strings.HasPrefix(got, "Hi! 👋 Welcome to Joe's Pizza.") {
		t.Errorf("welcome should greet with the business name, got %q", got)
	}
	for _, label := range []string{"• Table Reservations", "• Menu & Pricing", "• Food Orders", "• Delivery Tracking"} {
		if !strings.Contains(got, label) {
			t.Errorf("welcome should preview %q", label)
		}
	}
	// Only the first four are previewed
	for _, label := range []string{"Special Offers", "Bill Payment"} {
		if strings.Contains(got, label) {
			t.Errorf("welcome should not list %q beyond the first four", label)
		}
	}
	if !strings.HasSuffix(got, "How can I help you today?") {
		t.Error("welcome should end with the generic closing question")
	}
}

func TestWelcomeMessageFewerThanFour(t *testing.T) {
	cat := restaurantFixture()
	details := BusinessDetails{Name: "Joe's Pizza"}

	got := WelcomeMessage(details, cat, []string{"menu", "billing"})

	if !strings.Contains(got, "• Menu & Pricing") || !strings.Contains(got, "• Bill Payment") {
		t.Error("welcome should list all active capabilities when fewer than four")
	}
	if strings.Count(got, "•") != 2 {
		t.Errorf("welcome lists %d bullets, want 2 (never pad with placeholders)", strings.Count(got, "•"))
	}
}

func TestWelcomeMessageNoCapabilities(t *testing.T) {
	cat := restaurantFixture()
	details := BusinessDetails{Name: "Joe's Pizza"}

	got := WelcomeMessage(details, cat, nil)

	if strings.Contains(got, "•") {
		t.Error("welcome must not render an empty bullet list")
	}
	if !strings.HasSuffix(got, "How can I help you today?") {
		t.Error("welcome should still end with the closing question")
	}
}

func TestSuggestedQuestionsRestaurantDefaults(t *testing.T) {
	active := []string{"reservations", "menu", "orders", "delivery", "offers", "billing"}

	got := SuggestedQuestions(active)
	want := []string{
		"I want to book an appointment",
		"Show me your services/menu",
		"Track my order status",
		"Check my pending payment",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestedQuestions() = %v, want %v", got, want)
	}
}

func TestSuggestedQuestionsOnePerGroup(t *testing.T) {
	// Three ids in the booking group must still yield one question
	got := SuggestedQuestions([]string{"appointments", "reservations", "viewings"})
	want := []string{"I want to book an appointment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestedQuestions() = %v, want %v", got, want)
	}
}

func TestSuggestedQuestionsCapAtFour(t *testing.T) {
	// Ids matching all five groups; result is truncated to four
	active := []string{"appointments", "menu", "orders", "billing", "support"}

	got := SuggestedQuestions(active)
	if len(got) != 4 {
		t.Fatalf("SuggestedQuestions() returned %d entries, want 4", len(got))
	}
	if got[3] != "Check my pending payment" {
		t.Errorf("fourth question = %q, want the billing group (fixed priority order)", got[3])
	}
}

func TestSuggestedQuestionsIndependentOfClickOrder(t *testing.T) {
	a := SuggestedQuestions([]string{"billing", "menu"})
	b := SuggestedQuestions([]string{"menu", "billing"})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("SuggestedQuestions depends on id order: %v vs %v", a, b)
	}
	if a[0] != "Show me your services/menu" {
		t.Errorf("first question = %q, want the menu group (group priority, not id order)", a[0])
	}
}

func TestSuggestedQuestionsNoMatches(t *testing.T) {
	if got := SuggestedQuestions([]string{"reminders", "mortgage"}); len(got) != 0 {
		t.Errorf("SuggestedQuestions() = %v, want empty for ids outside all groups", got)
	}
}

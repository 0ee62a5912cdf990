package catalog

import (
	"reflect"
	"testing"
)

func TestDefaultCapabilities(t *testing.T) {
	cat := fixtureCategory()

	got := DefaultCapabilities(cat)
	want := []string{"orders", "menu", "billing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultCapabilities() = %v, want %v (registry order, default-enabled only)", got, want)
	}
}

func TestToggleCapability(t *testing.T) {
	cat := fixtureCategory()

	tests := []struct {
		name    string
		current []string
		id      string
		want    []string
	}{
		{"add absent", []string{"orders"}, "menu", []string{"orders", "menu"}},
		{"remove present", []string{"orders", "menu"}, "menu", []string{"orders"}},
		{"reject unknown id", []string{"orders"}, "catering", []string{"orders"}},
		{"add to empty", nil, "delivery", []string{"delivery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleCapability(tt.current, tt.id, cat)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToggleCapability(%v, %q) = %v, want %v", tt.current, tt.id, got, tt.want)
			}
		})
	}
}

func TestToggleCapabilityDoesNotMutateInput(t *testing.T) {
	cat := fixtureCategory()
	current := []string{"orders", "menu"}

	_ = ToggleCapability(current, "menu", cat)
	_ = ToggleCapability(current, "delivery", cat)

	if !reflect.DeepEqual(current, []string{"orders", "menu"}) {
		t.Errorf("input slice was mutated: %v", current)
	}
}

func TestToggleCapabilityDoubleToggleIsIdentity(t *testing.T) {
	cat := fixtureCategory()
	original := []string{"orders", "billing"}

	once := ToggleCapability(original, "menu", cat)
	twice := ToggleCapability(once, "menu", cat)

	if !reflect.DeepEqual(twice, original) {
		t.Errorf("toggle twice = %v, want original %v", twice, original)
	}
}

func TestHasSelection(t *testing.T) {
	if HasSelection(nil) {
		t.Error("HasSelection(nil) should be false")
	}
	if HasSelection([]string{}) {
		t.Error("HasSelection(empty) should be false")
	}
	if !HasSelection([]string{"orders"}) {
		t.Error("HasSelection(one id) should be true")
	}
}

package catalog

import "testing"

func fixtureCategory() BusinessCategory {
	return BusinessCategory{
		ID:          "bakery",
		DisplayName: "Bakery",
		Capabilities: []CapabilityDescriptor{
			{ID: "orders", Label: "Cake Orders", DefaultEnabled: true},
			{ID: "menu", Label: "Daily Menu", DefaultEnabled: true},
			{ID: "delivery", Label: "Delivery", DefaultEnabled: false},
			{ID: "billing", Label: "Invoices", DefaultEnabled: true},
		},
	}
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry([]BusinessCategory{fixtureCategory()})

	cat, ok := reg.Get("bakery")
	if !ok {
		t.Fatal("Get(bakery) should find the fixture category")
	}
	if cat.DisplayName != "Bakery" {
		t.Errorf("DisplayName = %q, want %q", cat.DisplayName, "Bakery")
	}

	if _, ok := reg.Get("florist"); ok {
		t.Error("Get(florist) should report absent, not found")
	}
}

func TestRegistryListOrder(t *testing.T) {
	cats := []BusinessCategory{
		{ID: "c", DisplayName: "C"},
		{ID: "a", DisplayName: "A"},
		{ID: "b", DisplayName: "B"},
	}
	reg := NewRegistry(cats)

	got := reg.List()
	if len(got) != 3 {
		t.Fatalf("List() returned %d categories, want 3", len(got))
	}
	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("List()[%d].ID = %q, want %q (declared order must be preserved)", i, got[i].ID, want)
		}
	}
}

func TestDefaultRegistryRestaurant(t *testing.T) {
	reg := DefaultRegistry()

	cat, ok := reg.Get("restaurant")
	if !ok {
		t.Fatal("default registry should contain the restaurant category")
	}

	want := []string{"reservations", "menu", "orders", "delivery", "offers", "billing"}
	got := DefaultCapabilities(cat)
	if len(got) != len(want) {
		t.Fatalf("restaurant defaults = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("restaurant defaults[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultRegistryUniqueCapabilityIDs(t *testing.T) {
	for _, cat := range DefaultRegistry().List() {
		seen := make(map[string]bool)
		for _, cap := range cat.Capabilities {
			if seen[cap.ID] {
				t.Errorf("category %q declares capability %q twice", cat.ID, cap.ID)
			}
			seen[cap.ID] = true
			if cap.Label == "" {
				t.Errorf("category %q capability %q has no label", cat.ID, cap.ID)
			}
		}
	}
}

package integrations

import "testing"

func TestNewCatalogPreservesOrderAndSkipsDuplicates(t *testing.T) {
	c := NewCatalog([]Integration{
		{ID: "alpha", Name: "Alpha"},
		{ID: "beta", Name: "Beta"},
		{ID: "alpha", Name: "Alpha Again"},
		{ID: "gamma", Name: "Gamma"},
	})

	list := c.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(list))
	}
	wantOrder := []string{"alpha", "beta", "gamma"}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Errorf("List()[%d].ID = %q, want %q", i, list[i].ID, want)
		}
	}

	if got, _ := c.Get("alpha"); got.Name != "Alpha" {
		t.Errorf("Get(alpha).Name = %q, want the first entry kept", got.Name)
	}
}

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	if _, ok := c.Get("stripe"); !ok {
		t.Error("Get(stripe) not found, want built-in entry")
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) = found, want absent")
	}
}

func TestDefaultCatalogEntriesAreComplete(t *testing.T) {
	c := DefaultCatalog()
	list := c.List()
	if len(list) == 0 {
		t.Fatal("DefaultCatalog() is empty")
	}

	seen := make(map[string]bool, len(list))
	for _, e := range list {
		if e.ID == "" || e.Name == "" || e.Category == "" || e.Description == "" {
			t.Errorf("integration %q has empty metadata: %+v", e.ID, e)
		}
		if len(e.SetupSteps) == 0 {
			t.Errorf("integration %q has no setup steps", e.ID)
		}
		if seen[e.ID] {
			t.Errorf("duplicate integration id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

package catalog

// CapabilityDescriptor is a single feature toggle offered within a category.
type CapabilityDescriptor struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	DefaultEnabled bool   `json:"default_enabled"`
}

// BusinessCategory is a preset vertical bundling a curated capability list.
// Capability ids are unique within the list and the order is meaningful:
// synthesized output always follows it, never the user's click order.
type BusinessCategory struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"display_name"`
	Capabilities []CapabilityDescriptor `json:"capabilities"`
}

// Registry is an immutable lookup table of business categories.
// Build one with NewRegistry (fixtures in tests) or DefaultRegistry.
type Registry struct {
	order      []string
	categories map[string]BusinessCategory
}

// NewRegistry builds a registry from the given categories, preserving order.
func NewRegistry(categories []BusinessCategory) *Registry {
	r := &Registry{
		order:      make([]string, 0, len(categories)),
		categories: make(map[string]BusinessCategory, len(categories)),
	}
	for _, cat := range categories {
		if _, exists := r.categories[cat.ID]; exists {
			continue
		}
		r.order = append(r.order, cat.ID)
		r.categories[cat.ID] = cat
	}
	return r
}

// DefaultRegistry returns the built-in category table.
func DefaultRegistry() *Registry {
	return NewRegistry(builtinCategories())
}

// Get looks up a category by id. The second return value is false when the
// id is unknown; callers treat that as "no category selected yet".
func (r *Registry) Get(id string) (BusinessCategory, bool) {
	cat, ok := r.categories[id]
	return cat, ok
}

// List returns all categories in declared order.
func (r *Registry) List() []BusinessCategory {
	out := make([]BusinessCategory, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.categories[id])
	}
	return out
}

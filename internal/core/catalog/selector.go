package catalog

// DefaultCapabilities returns the ids marked DefaultEnabled, in registry order.
func DefaultCapabilities(cat BusinessCategory) []string {
	var ids []string
	for _, cap := range cat.Capabilities {
		if cap.DefaultEnabled {
			ids = append(ids, cap.ID)
		}
	}
	return ids
}

// ToggleCapability returns a new selection with id added if absent or removed
// if present. Ids outside the category's capability list are rejected and the
// selection is returned unchanged. The input slice is never mutated.
func ToggleCapability(current []string, id string, cat BusinessCategory) []string {
	known := false
	for _, cap := range cat.Capabilities {
		if cap.ID == id {
			known = true
			break
		}
	}
	if !known {
		return current
	}

	out := make([]string, 0, len(current)+1)
	removed := false
	for _, existing := range current {
		if existing == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, id)
	}
	return out
}

// HasSelection is the validation gate before submission: at least one
// capability must be active. An empty selection is a blocking error shown to
// the user, never a silent default.
func HasSelection(ids []string) bool {
	return len(ids) >= 1
}

package form

import "tableflip.dev/dreams/pkg/schema"

// ListBinding ties one input row to a position in a list field.
type ListBinding struct {
	Key   schema.ID
	Index int
}

// Write stores value at the bound position.
func (b ListBinding) Write(s *State, value string) error {
	return s.AppendOrUpdate(b.Key, b.Index, value)
}

// Rows issues bindings for the "add another" affordance. Each call to Add
// yields the next index for that key, starting at 0. Rows are never removed.
type Rows struct {
	issued map[schema.ID][]ListBinding
}

// NewRows returns an empty row registry.
func NewRows() *Rows {
	return &Rows{issued: make(map[schema.ID][]ListBinding)}
}

// Add appends a row for key and returns its binding.
func (r *Rows) Add(key schema.ID) ListBinding {
	b := ListBinding{Key: key, Index: len(r.issued[key])}
	r.issued[key] = append(r.issued[key], b)
	return b
}

// Bindings returns the rows issued for key in display order.
func (r *Rows) Bindings(key schema.ID) []ListBinding {
	return r.issued[key]
}

// Count returns how many rows were issued for key.
func (r *Rows) Count(key schema.ID) int {
	return len(r.issued[key])
}

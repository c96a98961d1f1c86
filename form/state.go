// Package form holds the in-progress field values for one document being
// filled out, and answers whether the draft is complete enough to render.
//
// Draft state lives only in memory; there is no persistence across restarts.
package form

import (
	"strings"

	"github.com/qualipharm/qualipharm/schema"
)

// Field ids wired into the pharmacy-initials derivation.
const (
	sourceField  = "pharmacyName"
	derivedField = "pharmacyInitials"
)

// State is the mutable form state for one template. Not safe for
// concurrent use; each draft belongs to a single interaction.
type State struct {
	tpl     *schema.DocumentTemplate
	values  map[string]string
	touched map[string]bool // fields the user edited directly
}

// New creates empty form state for a template.
func New(tpl *schema.DocumentTemplate) *State {
	return &State{
		tpl:     tpl,
		values:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// Set records a user edit to a field.
//
// Editing the pharmacy name recomputes the derived initials field, unless
// the user has already edited the initials directly: a manual override is
// never clobbered by later name keystrokes.
func (s *State) Set(id, value string) {
	s.values[id] = value
	s.touched[id] = true

	if id == sourceField && !s.touched[derivedField] {
		s.values[derivedField] = schema.Initials(value)
	}
}

// Get returns the current value of a field.
func (s *State) Get(id string) string {
	return s.values[id]
}

// Valid reports whether every required template field has a non-empty
// trimmed value.
func (s *State) Valid() bool {
	for _, f := range s.tpl.Fields {
		if f.Required && strings.TrimSpace(s.values[f.ID]) == "" {
			return false
		}
	}
	return true
}

// Missing returns the ids of required fields still empty, template order.
func (s *State) Missing() []string {
	var out []string
	for _, f := range s.tpl.Fields {
		if f.Required && strings.TrimSpace(s.values[f.ID]) == "" {
			out = append(out, f.ID)
		}
	}
	return out
}

// Values returns a copy of the current field values, ready to become a
// record's data bag.
func (s *State) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

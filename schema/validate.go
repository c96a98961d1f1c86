package schema

import (
	"fmt"
	"strings"
)

func trim(s string) string { return strings.TrimSpace(s) }

// ValidationError reports the required fields a record left empty.
type ValidationError struct {
	TemplateID string
	Missing    []string // field ids, in template order
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("modèle %s: champs obligatoires manquants: %s",
		e.TemplateID, strings.Join(e.Missing, ", "))
}

// Validate checks that every required field of the template has a non-empty
// trimmed value in the record. It returns a *ValidationError listing the
// missing field ids, or nil when the record is complete. Fields present in
// the data but absent from the template are ignored.
func Validate(tpl *DocumentTemplate, rec *FilledRecord) error {
	var missing []string
	for _, f := range tpl.Fields {
		if f.Required && trim(rec.Data[f.ID]) == "" {
			missing = append(missing, f.ID)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{TemplateID: tpl.ID, Missing: missing}
	}
	return nil
}

// IsValid reports whether the record satisfies all required fields.
func IsValid(tpl *DocumentTemplate, rec *FilledRecord) bool {
	return Validate(tpl, rec) == nil
}

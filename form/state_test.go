package form_test

import (
	"testing"

	"github.com/qualipharm/qualipharm/form"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/schema"
)

func chartTemplate() *schema.DocumentTemplate {
	return &schema.DocumentTemplate{
		ID: "org-chart",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Type: schema.FieldText, Required: true},
			{ID: "pharmacyInitials", Type: schema.FieldText},
			{ID: "titulaire", Type: schema.FieldText, Required: true},
		},
	}
}

func TestInitialsDerivedFromName(t *testing.T) {
	s := form.New(chartTemplate())

	s.Set("pharmacyName", "Pharmacie Centrale Ville")
	if got := s.Get("pharmacyInitials"); got != "PCV" {
		t.Errorf("initials = %q, want PCV", got)
	}

	// Derivation follows every name edit while untouched.
	s.Set("pharmacyName", "Pharmacie du Port")
	if got := s.Get("pharmacyInitials"); got != "PDP" {
		t.Errorf("initials = %q, want PDP", got)
	}
}

func TestManualInitialsSurviveNameEdits(t *testing.T) {
	s := form.New(chartTemplate())

	s.Set("pharmacyName", "Pharmacie Centrale Ville")
	s.Set("pharmacyInitials", "PCX")
	s.Set("pharmacyName", "Pharmacie des Halles")

	if got := s.Get("pharmacyInitials"); got != "PCX" {
		t.Errorf("manual override clobbered: initials = %q, want PCX", got)
	}
}

// The derivation must land in a field the catalog template actually
// declares, so the value carries through to the rendered document.
func TestDerivedFieldDeclaredInCatalog(t *testing.T) {
	tpl, ok := registry.TemplateByID("dysfunction-report")
	if !ok {
		t.Fatal("dysfunction-report missing from catalog")
	}
	if tpl.Field("pharmacyInitials") == nil {
		t.Fatal("pharmacyInitials not declared on dysfunction-report")
	}

	s := form.New(tpl)
	s.Set("pharmacyName", "Pharmacie Centrale Ville")
	if got := s.Values()["pharmacyInitials"]; got != "PCV" {
		t.Errorf("derived value = %q, want PCV", got)
	}
}

func TestValidAndMissing(t *testing.T) {
	s := form.New(chartTemplate())
	if s.Valid() {
		t.Fatal("empty form must not be valid")
	}

	s.Set("pharmacyName", "Pharmacie Centrale Ville")
	if s.Valid() {
		t.Fatal("titulaire still missing")
	}
	if got := s.Missing(); len(got) != 1 || got[0] != "titulaire" {
		t.Errorf("missing = %v", got)
	}

	s.Set("titulaire", "Dr Martin")
	if !s.Valid() {
		t.Errorf("form should be valid, missing %v", s.Missing())
	}
}

func TestValuesCopy(t *testing.T) {
	s := form.New(chartTemplate())
	s.Set("pharmacyName", "Pharmacie Centrale Ville")

	vals := s.Values()
	vals["pharmacyName"] = "mutated"
	if s.Get("pharmacyName") != "Pharmacie Centrale Ville" {
		t.Error("Values must return a copy")
	}
}

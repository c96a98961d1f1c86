package compose_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/schema"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 16, 45, 0, 0, time.UTC)
}

func dysfunctionRecord() *schema.FilledRecord {
	return &schema.FilledRecord{
		ID:           "a3f2c9d1",
		TemplateID:   "dysfunction-report",
		PharmacyName: "Pharmacie Centrale Ville",
		Data: map[string]string{
			"pharmacyName":    "Pharmacie Centrale Ville",
			"reportDate":      "2025-03-14",
			"incidentDate":    "2025-03-12 09:30",
			"location":        "Back-office",
			"reporter":        "A. Martin",
			"category":        "Chaîne du froid",
			"description":     "Température du réfrigérateur principal relevée à 11°C pendant deux heures suite à une porte mal fermée.",
			"immediateAction": "Produits thermosensibles mis en quarantaine.",
		},
		CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestComposeDysfunctionReport(t *testing.T) {
	tpl, ok := registry.TemplateByID("dysfunction-report")
	if !ok {
		t.Fatal("template missing")
	}
	rec := dysfunctionRecord()

	if !schema.IsValid(tpl, rec) {
		t.Fatalf("record should be valid: %v", schema.Validate(tpl, rec))
	}

	c := compose.NewComposer(compose.WithClock(fixedClock))
	if err := c.Compose(tpl, rec); err != nil {
		t.Fatalf("compose: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}

	want := "document-rapport-de-dysfonctionnement-2025-03-14-a3f2c9d1.pdf"
	if c.Filename() != want {
		t.Errorf("filename = %q, want %q", c.Filename(), want)
	}
	t.Logf("Dysfunction report PDF: %d bytes", buf.Len())
}

func TestComposeMissingOptionalUsesFallback(t *testing.T) {
	if compose.MissingValue != "Non renseigné" {
		t.Fatalf("fallback text = %q", compose.MissingValue)
	}

	tpl, _ := registry.TemplateByID("dysfunction-report")
	rec := dysfunctionRecord()
	delete(rec.Data, "rootCause")
	delete(rec.Data, "contactEmail")

	c := compose.NewComposer(compose.WithClock(fixedClock))
	if err := c.Compose(tpl, rec); err != nil {
		t.Fatalf("compose with missing optionals: %v", err)
	}
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestComposeNilTemplate(t *testing.T) {
	c := compose.NewComposer()
	if err := c.Compose(nil, dysfunctionRecord()); err != compose.ErrTemplateNotFound {
		t.Errorf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestOutputBeforeCompose(t *testing.T) {
	c := compose.NewComposer()
	var buf bytes.Buffer
	if err := c.Output(&buf); err != compose.ErrNotComposed {
		t.Errorf("err = %v, want ErrNotComposed", err)
	}
}

func TestComposePaginates(t *testing.T) {
	// Enough textarea fields to force the cursor past the break threshold.
	tpl := &schema.DocumentTemplate{
		ID:    "long-form",
		Title: "Formulaire Long",
		Fields: func() []schema.FieldDescriptor {
			var fs []schema.FieldDescriptor
			for i := 0; i < 12; i++ {
				fs = append(fs, schema.FieldDescriptor{
					ID:    fmt.Sprintf("field%d", i),
					Label: fmt.Sprintf("Section %d", i+1),
					Type:  schema.FieldTextarea,
				})
			}
			return fs
		}(),
	}
	rec := &schema.FilledRecord{
		ID:           "long-001",
		TemplateID:   "long-form",
		PharmacyName: "Pharmacie des Halles",
		Data:         map[string]string{},
		CreatedAt:    time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	c := compose.NewComposer(compose.WithClock(fixedClock))
	if err := c.Compose(tpl, rec); err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := c.PDF().PageNo(); got < 2 {
		t.Errorf("expected pagination onto a second page, got %d page(s)", got)
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	t.Logf("Paginated form: %d pages, %d bytes", c.PDF().PageNo(), buf.Len())
}

func TestComposeWithSignatures(t *testing.T) {
	tpl, _ := registry.TemplateByID("dysfunction-report")
	rec := dysfunctionRecord()
	rec.Signatures = &schema.SignatureSet{
		Recorder: &schema.SignatureEntry{Name: "A. Martin", Date: "14/03/2025", SignatureImage: tinyPNG(t)},
		Verifier: &schema.SignatureEntry{Name: "Dr Dupont", Date: "15/03/2025"},
	}

	c := compose.NewComposer(compose.WithClock(fixedClock))
	if err := c.Compose(tpl, rec); err != nil {
		t.Fatalf("compose: %v", err)
	}
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	t.Logf("Signed report PDF: %d bytes", buf.Len())
}

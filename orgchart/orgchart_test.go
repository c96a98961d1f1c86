package orgchart_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/orgchart"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/schema"
)

func chartRecord(data map[string]string) *schema.FilledRecord {
	base := map[string]string{
		"pharmacyName": "Pharmacie Centrale Ville",
		"titulaire":    "Dr Martin",
		"updateDate":   "2025-03-14",
	}
	for k, v := range data {
		base[k] = v
	}
	return &schema.FilledRecord{
		ID:           "chart-001",
		TemplateID:   "org-chart",
		PharmacyName: "Pharmacie Centrale Ville",
		Data:         base,
		CreatedAt:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestFromRecordOptionalNodes(t *testing.T) {
	ch := orgchart.FromRecord(chartRecord(map[string]string{
		"adjoint1":       "Dr Dupont",
		"administrator1": "C. Bernard",
		"subAdmins1":     "L. Petit\nM. Moreau\n",
		"auxiliaries":    "A. Roux\nB. Simon\nC. Laurent\nD. Michel",
	}))

	if ch.Titulaire != "Dr Martin" {
		t.Errorf("titulaire = %q", ch.Titulaire)
	}
	if len(ch.Adjoints) != 1 || ch.Adjoints[0] != "Dr Dupont" {
		t.Errorf("adjoints = %v", ch.Adjoints)
	}
	if len(ch.Administrators) != 1 {
		t.Fatalf("administrators = %v", ch.Administrators)
	}
	if got := ch.Administrators[0].Team; len(got) != 2 || got[1] != "M. Moreau" {
		t.Errorf("team = %v", got)
	}
	if len(ch.Auxiliaries) != 4 {
		t.Errorf("auxiliaries = %v", ch.Auxiliaries)
	}
}

func TestFromRecordEmptyOptionals(t *testing.T) {
	ch := orgchart.FromRecord(chartRecord(nil))
	if len(ch.Adjoints) != 0 || len(ch.Administrators) != 0 || len(ch.Auxiliaries) != 0 {
		t.Errorf("empty optional fields must not create nodes: %+v", ch)
	}
}

func renderChart(t *testing.T, rec *schema.FilledRecord) []byte {
	t.Helper()
	tpl, ok := registry.TemplateByID("org-chart")
	if !ok {
		t.Fatal("org-chart template missing")
	}
	c := compose.NewComposer()
	if err := orgchart.Render(c, tpl, rec); err != nil {
		t.Fatalf("render: %v", err)
	}
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	return buf.Bytes()
}

func TestRenderFullHierarchy(t *testing.T) {
	out := renderChart(t, chartRecord(map[string]string{
		"adjoint1":       "Dr Dupont",
		"adjoint2":       "Dr Leroy",
		"administrator1": "C. Bernard",
		"administrator2": "E. Thomas",
		"subAdmins1":     "L. Petit\nM. Moreau",
		"subAdmins2":     "N. Garcia",
		"auxiliaries":    "A. Roux\nB. Simon",
	}))
	t.Logf("Full hierarchy chart: %d bytes", len(out))
}

func TestRenderAuxiliaryChips(t *testing.T) {
	// More than two auxiliaries switches to initialed chips.
	out := renderChart(t, chartRecord(map[string]string{
		"auxiliaries": "Anne Roux\nBertrand Simon\nClaire Laurent\nDenis Michel\nEva Noir",
	}))
	t.Logf("Chip-mode chart: %d bytes", len(out))
}

func TestRenderTitulaireOnly(t *testing.T) {
	out := renderChart(t, chartRecord(nil))
	t.Logf("Minimal chart: %d bytes", len(out))
}

func TestRenderSetsFilename(t *testing.T) {
	tpl, _ := registry.TemplateByID("org-chart")
	rec := chartRecord(nil)
	c := compose.NewComposer()
	if err := orgchart.Render(c, tpl, rec); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "document-organigramme-de-l-officine-2025-03-14-chart-001.pdf"
	if c.Filename() != want {
		t.Errorf("filename = %q, want %q", c.Filename(), want)
	}
}

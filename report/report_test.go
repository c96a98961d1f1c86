package report_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/report"
	"github.com/qualipharm/qualipharm/schema"
)

func output(t *testing.T, c *compose.Composer) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	return buf.Bytes()
}

func TestRenderCAPA(t *testing.T) {
	tpl, _ := registry.TemplateByID("capa-plan")
	plan := &schema.CAPAPlan{
		Record: schema.FilledRecord{
			ID:           "capa-001",
			TemplateID:   "capa-plan",
			PharmacyName: "Pharmacie Centrale Ville",
			Data: map[string]string{
				"pharmacyName": "Pharmacie Centrale Ville",
				"planDate":     "2025-03-14",
				"origin":       "Audit interne T1",
				"pilot":        "A. Martin",
			},
			CreatedAt: time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC),
		},
		Actions: []schema.CAPAAction{
			{Order: 2, Description: "Former l'équipe à la procédure de réception", Type: "préventive",
				Responsible: "A. Martin", Deadline: "30/04/2025", Status: "En cours"},
			{Order: 1, Description: "Réviser la procédure de contrôle des températures", Type: "corrective",
				Responsible: "Dr Dupont", Deadline: "31/03/2025", Status: "Clôturée"},
		},
	}

	c := compose.NewComposer()
	if err := report.RenderCAPA(c, tpl, plan); err != nil {
		t.Fatalf("render: %v", err)
	}

	// Actions end up sorted by their user-assigned order.
	if plan.Actions[0].Order != 1 {
		t.Errorf("first action order = %d, want 1", plan.Actions[0].Order)
	}
	out := output(t, c)
	t.Logf("CAPA plan PDF: %d bytes", len(out))
}

func TestRenderProcessSheet(t *testing.T) {
	tpl, _ := registry.TemplateByID("process-sheet")
	sheet := &schema.ProcessSheet{
		Record: schema.FilledRecord{
			ID:           "proc-001",
			TemplateID:   "process-sheet",
			PharmacyName: "Pharmacie du Port",
			Data: map[string]string{
				"processName":  "Réception des commandes",
				"processOwner": "C. Bernard",
				"purpose":      "Garantir la conformité des produits reçus",
			},
			CreatedAt: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		},
		Steps: []schema.ProcessStep{
			{Order: 1, Description: "Contrôle du bon de livraison", Responsible: "Préparateur"},
			{Order: 2, Description: "Contrôle des températures de transport", Responsible: "Préparateur",
				ControlPoint: "Relevé enregistreur"},
			{Order: 3, Description: "Rangement par zone de stockage", Responsible: "Équipe"},
		},
	}

	c := compose.NewComposer()
	if err := report.RenderProcessSheet(c, tpl, sheet); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := output(t, c)
	t.Logf("Process sheet PDF: %d bytes", len(out))
}

func TestRenderWasteLog(t *testing.T) {
	tpl, _ := registry.TemplateByID("waste-log")
	doc := &schema.WasteDocument{
		Record: schema.FilledRecord{
			ID:           "waste-001",
			TemplateID:   "waste-log",
			PharmacyName: "Pharmacie des Halles",
			Data: map[string]string{
				"periodStart": "01/03/2025",
				"periodEnd":   "31/03/2025",
				"collector":   "MediCollect SARL",
			},
			CreatedAt: time.Date(2025, 3, 31, 17, 0, 0, 0, time.UTC),
		},
		Entries: []schema.WasteEntry{
			{Order: 1, Date: "05/03/2025", Kind: "DASRI - aiguilles", Quantity: "2 kg",
				Outlet: "Incinération", Reference: "BD-2025-114"},
			{Order: 2, Date: "19/03/2025", Kind: "Médicaments périmés", Quantity: "6 kg",
				Outlet: "Cyclamed", Reference: "BD-2025-162"},
		},
	}

	c := compose.NewComposer()
	if err := report.RenderWasteLog(c, tpl, doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := output(t, c)
	t.Logf("Waste log PDF: %d bytes", len(out))
}

func compilationRecords(n int) []schema.FilledRecord {
	recs := make([]schema.FilledRecord, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, schema.FilledRecord{
			ID:           fmt.Sprintf("rec-%03d", i+1),
			TemplateID:   "incident-register",
			PharmacyName: "Pharmacie Centrale Ville",
			Data: map[string]string{
				"pharmacyName": "Pharmacie Centrale Ville",
				"incidentDate": fmt.Sprintf("%02d/03/2025", i%28+1),
				"incidentType": "Erreur de délivrance",
				"severity":     "Mineure",
				"description":  fmt.Sprintf("Incident n°%d du mois", i+1),
				"recordedBy":   "A. Martin",
			},
			// Reverse chronological on purpose: the renderer re-orders.
			CreatedAt: time.Date(2025, 3, 28-i%28, 9, 0, 0, 0, time.UTC),
		})
	}
	return recs
}

func TestRenderCompilation(t *testing.T) {
	tpl, _ := registry.TemplateByID("incident-register")
	recs := compilationRecords(5)

	c := compose.NewComposer()
	if err := report.RenderCompilation(c, tpl, recs, 2025, time.March); err != nil {
		t.Fatalf("render: %v", err)
	}

	if c.Filename() != "compilation-incident-register-2025-03.pdf" {
		t.Errorf("filename = %q", c.Filename())
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].CreatedAt.Before(recs[i-1].CreatedAt) {
			t.Fatal("records not ordered by creation time ascending")
		}
	}
	out := output(t, c)
	t.Logf("Compilation PDF: %d bytes", len(out))
}

func TestRenderCompilationPaginates(t *testing.T) {
	tpl, _ := registry.TemplateByID("incident-register")
	recs := compilationRecords(60)

	c := compose.NewComposer()
	if err := report.RenderCompilation(c, tpl, recs, 2025, time.March); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := c.PDF().PageNo(); got < 2 {
		t.Errorf("expected multi-page compilation, got %d page(s)", got)
	}
	out := output(t, c)
	t.Logf("Large compilation: %d pages, %d bytes", c.PDF().PageNo(), len(out))
}

func TestRenderCompilationEmptyMonth(t *testing.T) {
	tpl, _ := registry.TemplateByID("incident-register")
	c := compose.NewComposer()
	err := report.RenderCompilation(c, tpl, nil, 2025, time.March)
	if err != compose.ErrNoRecords {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
}

package report

import (
	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/schema"
)

var processColumns = []columnSpec{
	{"N°", 10, "C"},
	{"Étape", 0, "L"},
	{"Responsable", 32, "L"},
	{"Documentation", 34, "L"},
	{"Point de contrôle", 34, "L"},
}

// RenderProcessSheet draws a process sheet: identity and purpose rows,
// then the ordered steps table.
func RenderProcessSheet(c *compose.Composer, tpl *schema.DocumentTemplate, sheet *schema.ProcessSheet) error {
	rec := &sheet.Record
	c.Begin(tpl.Title)

	introRow(c, "Pharmacie", rec.PharmacyName)
	introRow(c, "Processus", rec.Value("processName"))
	introRow(c, "Pilote", rec.Value("processOwner"))
	introRow(c, "Finalité", rec.Value("purpose"))
	introRow(c, "Éléments d'entrée", rec.Value("inputs"))
	introRow(c, "Éléments de sortie", rec.Value("outputs"))
	introRow(c, "Indicateurs", rec.Value("indicators"))
	c.Cursor().Advance(4)

	schema.SortSteps(sheet.Steps)

	tb := newRegisterTable(c, processColumns)
	for _, s := range sheet.Steps {
		tb.AddRow(orderLabel(s.Order), s.Description, s.Responsible, s.Documentation, s.ControlPoint)
	}
	if err := tb.Render(); err != nil {
		return err
	}

	c.Cursor().Advance(6)
	c.FinishDocument(tpl, rec)
	return c.PDF().Error()
}

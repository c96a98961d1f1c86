package report

import (
	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/schema"
)

// CAPA action table columns. Fixed widths; the action description fills
// the remaining content width.
var capaColumns = []columnSpec{
	{"N°", 10, "C"},
	{"Action", 0, "L"},
	{"Type", 24, "C"},
	{"Responsable", 32, "L"},
	{"Échéance", 24, "C"},
	{"Statut", 24, "C"},
}

// RenderCAPA draws a CAPA plan: the plan's identity rows then one table
// row per action, ordered by the user-assigned order.
func RenderCAPA(c *compose.Composer, tpl *schema.DocumentTemplate, plan *schema.CAPAPlan) error {
	rec := &plan.Record
	c.Begin(tpl.Title)

	introRow(c, "Pharmacie", rec.PharmacyName)
	introRow(c, "Date du plan", rec.Value("planDate"))
	introRow(c, "Origine", rec.Value("origin"))
	introRow(c, "Pilote", rec.Value("pilot"))
	if v := rec.Value("context"); v != "" {
		introRow(c, "Contexte", v)
	}
	c.Cursor().Advance(4)

	schema.SortActions(plan.Actions)

	tb := newRegisterTable(c, capaColumns)
	for _, a := range plan.Actions {
		tb.AddRow(orderLabel(a.Order), a.Description, a.Type, a.Responsible, a.Deadline, a.Status)
	}
	if err := tb.Render(); err != nil {
		return err
	}

	c.Cursor().Advance(6)
	c.FinishDocument(tpl, rec)
	return c.PDF().Error()
}

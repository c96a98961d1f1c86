package report

import (
	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/schema"
)

var wasteColumns = []columnSpec{
	{"N°", 10, "C"},
	{"Date", 22, "C"},
	{"Nature du déchet", 0, "L"},
	{"Quantité", 22, "C"},
	{"Filière d'élimination", 34, "L"},
	{"Bordereau", 28, "C"},
}

// RenderWasteLog draws a waste-tracking log: the collection period and
// provider rows, then one table row per waste entry.
func RenderWasteLog(c *compose.Composer, tpl *schema.DocumentTemplate, doc *schema.WasteDocument) error {
	rec := &doc.Record
	c.Begin(tpl.Title)

	introRow(c, "Pharmacie", rec.PharmacyName)
	introRow(c, "Période", rec.Value("periodStart")+" - "+rec.Value("periodEnd"))
	introRow(c, "Prestataire", rec.Value("collector"))
	if v := rec.Value("collectorPhone"); v != "" {
		introRow(c, "Téléphone", v)
	}
	c.Cursor().Advance(4)

	schema.SortEntries(doc.Entries)

	tb := newRegisterTable(c, wasteColumns)
	for _, e := range doc.Entries {
		tb.AddRow(orderLabel(e.Order), e.Date, e.Kind, e.Quantity, e.Outlet, e.Reference)
	}
	if err := tb.Render(); err != nil {
		return err
	}

	c.Cursor().Advance(6)
	c.FinishDocument(tpl, rec)
	return c.PDF().Error()
}

package report

import (
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf/contrib/barcode"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/schema"
	"github.com/qualipharm/qualipharm/table"
)

// RenderCompilation draws the monthly compilation: one wide landscape
// table with a synthetic DATE column prepended to the template's own
// field columns, one row per record ordered by creation time ascending,
// the header repeated on every page. An empty month is an error rather
// than an empty table.
func RenderCompilation(c *compose.Composer, tpl *schema.DocumentTemplate, records []schema.FilledRecord, year int, month time.Month) error {
	if len(records) == 0 {
		return compose.ErrNoRecords
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	title := "Compilation mensuelle - " + tpl.Title + " - " +
		time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("01/2006")
	c.BeginLandscape(title)

	cols := make([]table.ColumnDef, 0, len(tpl.Fields)+1)
	cols = append(cols, table.ColumnDef{Header: "DATE", Width: 24, Align: "C"})
	for _, f := range tpl.Fields {
		cols = append(cols, table.ColumnDef{Header: f.Label})
	}

	tb := table.New(c.PDF()).SetColumns(cols...).SetStyle(accentStyle(c))
	for _, rec := range records {
		row := make([]string, 0, len(cols))
		row = append(row, rec.CreatedAt.Format("02/01/2006"))
		for _, f := range tpl.Fields {
			v := rec.Value(f.ID)
			if v == "" {
				v = compose.MissingValue
			}
			row = append(row, v)
		}
		tb.AddRow(row...)
	}
	if err := tb.Render(); err != nil {
		return err
	}

	ref := schema.CompilationFileName(tpl.ID, year, month)
	ref = ref[:len(ref)-len(".pdf")]

	// Machine-readable filing reference for the paper archive.
	pdf := c.PDF()
	y := c.Cursor().Need(14)
	key := barcode.RegisterPdf417(pdf, ref, 6, 2)
	barcode.Barcode(pdf, key, 15, y+2, 50, 10, false)
	pdf.SetY(y + 14)

	c.TraceabilityBlock(ref)
	c.SetFilename(ref + ".pdf")

	return pdf.Error()
}

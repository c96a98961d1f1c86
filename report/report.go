// Package report holds the specialized renderers that deviate from the
// generic composer: the CAPA action table, the process-sheet steps table,
// the waste-tracking log and the monthly compilation. They all draw
// through the composer's primitives so pagination and footers match the
// generic documents.
package report

import (
	"fmt"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/table"
)

// introRow draws one "label : value" line of a renderer's header section.
func introRow(c *compose.Composer, label, value string) {
	if value == "" {
		value = compose.MissingValue
	}
	pdf := c.PDF()
	y := c.Cursor().Need(6)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(15, y)
	pdf.CellFormat(48, 5, c.Translate(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, c.Translate(value), "", 0, "L", false, 0, "")
	pdf.SetY(y + 6)
}

func accentStyle(c *compose.Composer) table.Style {
	r, g, b := c.Accent()
	return table.RegisterStyle(table.RGBColor{R: r, G: g, B: b})
}

// columnSpec is the fixed-column description the renderers share: header
// label, fixed width (0 fills the remainder), body alignment.
type columnSpec struct {
	header string
	width  float64
	align  string
}

func newRegisterTable(c *compose.Composer, specs []columnSpec) *table.Table {
	cols := make([]table.ColumnDef, len(specs))
	for i, s := range specs {
		cols[i] = table.ColumnDef{Header: s.header, Width: s.width, Align: s.align}
	}
	return table.New(c.PDF()).SetColumns(cols...).SetStyle(accentStyle(c))
}

func orderLabel(n int) string {
	return fmt.Sprintf("%d", n)
}

package table

import (
	"github.com/jung-kurt/gofpdf"
)

// ColumnDef defines one table column.
type ColumnDef struct {
	Header string
	Width  float64 // fixed width; 0 auto-fills remaining space
	Align  string  // body alignment ("L", "C", "R"), default "L"
}

// Row is one body row.
type Row struct {
	cells []string
	style *CellStyle
}

// SetStyle overrides the table style for every cell of this row.
func (r *Row) SetStyle(s CellStyle) *Row {
	r.style = &s
	return r
}

// Table is a register-table builder bound to a PDF document.
type Table struct {
	pdf     *gofpdf.Fpdf
	tr      func(string) string
	columns []ColumnDef
	rows    []*Row
	style   Style
	width   float64 // 0 means page width minus margins
}

// New creates a table bound to the given document. Text is passed through
// the document's cp1252 translator so accented French renders correctly
// with the core fonts.
func New(pdf *gofpdf.Fpdf) *Table {
	return &Table{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		style: Style{CellPadding: UniformPadding(1)},
	}
}

// SetColumns sets the column definitions.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	return t
}

// SetWidth fixes the total table width.
func (t *Table) SetWidth(w float64) *Table {
	t.width = w
	return t
}

// AddRow appends a body row with one cell value per column.
func (t *Table) AddRow(values ...string) *Row {
	r := &Row{cells: values}
	t.rows = append(t.rows, r)
	return r
}

// Render draws the header and all body rows, breaking pages as needed and
// re-emitting the header at the top of every new page.
func (t *Table) Render() error {
	if t.pdf.Err() {
		return t.pdf.Error()
	}

	widths := t.calculateWidths()
	startX := t.pdf.GetX()

	t.drawHeader(widths, startX)

	_, pageH := t.pdf.GetPageSize()
	_, _, _, bMargin := t.pdf.GetMargins()

	for i, r := range t.rows {
		rowH := t.rowHeight(r.cells, widths, t.bodyStyle(r, i), 0)
		if t.pdf.GetY()+rowH > pageH-bMargin {
			t.pdf.AddPage()
			t.pdf.SetX(startX)
			t.drawHeader(widths, startX)
		}
		t.drawRow(r.cells, widths, startX, t.bodyStyle(r, i), 0)
	}

	return t.pdf.Error()
}

func (t *Table) headerCells() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Header
	}
	return out
}

func (t *Table) drawHeader(widths []float64, startX float64) {
	style := CellStyle{Align: "C"}
	merge(&style, t.style.HeaderStyle)
	t.pdf.SetX(startX)
	// Header text wraps to at most two lines.
	t.drawRow(t.headerCells(), widths, startX, style, 2)
}

func (t *Table) bodyStyle(r *Row, idx int) CellStyle {
	var style CellStyle
	if t.style.BodyFont != nil {
		style.Font = t.style.BodyFont
	}
	if t.style.ZebraFill != nil && idx%2 == 0 {
		style.FillColor = t.style.ZebraFill
	}
	merge(&style, r.style)
	return style
}

func (t *Table) calculateWidths() []float64 {
	total := t.width
	if total == 0 {
		pageW, _ := t.pdf.GetPageSize()
		lMargin, _, rMargin, _ := t.pdf.GetMargins()
		total = pageW - lMargin - rMargin
	}

	widths := make([]float64, len(t.columns))
	fixed := 0.0
	auto := 0
	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			auto++
		}
	}
	if auto > 0 {
		remaining := total - fixed
		if remaining < 0 {
			remaining = 0
		}
		for i, c := range t.columns {
			if c.Width == 0 {
				widths[i] = remaining / float64(auto)
			}
		}
	}
	return widths
}

// setFont applies the style font, falling back to the current document font.
func (t *Table) setFont(style CellStyle) {
	if style.Font != nil {
		t.pdf.SetFont(style.Font.Family, style.Font.Style, style.Font.Size)
	}
}

func (t *Table) lineHeight() float64 {
	_, unitSize := t.pdf.GetFontSize()
	return unitSize * 1.4
}

// wrap splits translated cell text to the content width, capping the line
// count when maxLines > 0.
func (t *Table) wrap(text string, contentW float64, maxLines int) [][]byte {
	lines := t.pdf.SplitLines([]byte(t.tr(text)), contentW)
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func (t *Table) rowHeight(cells []string, widths []float64, style CellStyle, maxLines int) float64 {
	t.setFont(style)
	pad := t.style.CellPadding
	lineH := t.lineHeight()

	maxH := lineH + pad.Top + pad.Bottom
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		contentW := widths[i] - pad.Left - pad.Right
		if contentW < 1 {
			contentW = 1
		}
		h := float64(len(t.wrap(cell, contentW, maxLines)))*lineH + pad.Top + pad.Bottom
		if h > maxH {
			maxH = h
		}
	}
	return maxH
}

func (t *Table) drawRow(cells []string, widths []float64, startX float64, style CellStyle, maxLines int) {
	t.setFont(style)
	rowH := t.rowHeight(cells, widths, style, maxLines)
	pad := t.style.CellPadding
	lineH := t.lineHeight()
	y := t.pdf.GetY()

	if t.style.BorderColor != nil {
		t.pdf.SetDrawColor(t.style.BorderColor.R, t.style.BorderColor.G, t.style.BorderColor.B)
	}
	if t.style.LineWidth > 0 {
		t.pdf.SetLineWidth(t.style.LineWidth)
	}

	x := startX
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		cellW := widths[i]

		if style.FillColor != nil {
			t.pdf.SetFillColor(style.FillColor.R, style.FillColor.G, style.FillColor.B)
			t.pdf.Rect(x, y, cellW, rowH, "F")
		}
		t.pdf.Rect(x, y, cellW, rowH, "D")

		if style.TextColor != nil {
			t.pdf.SetTextColor(style.TextColor.R, style.TextColor.G, style.TextColor.B)
		}

		align := style.Align
		if align == "" && i < len(t.columns) && t.columns[i].Align != "" {
			align = t.columns[i].Align
		}
		if align == "" {
			align = "L"
		}

		contentW := cellW - pad.Left - pad.Right
		if contentW < 1 {
			contentW = 1
		}
		for li, line := range t.wrap(cell, contentW, maxLines) {
			t.pdf.SetXY(x+pad.Left, y+pad.Top+float64(li)*lineH)
			t.pdf.CellFormat(contentW, lineH, string(line), "", 0, align, false, 0, "")
		}

		x += cellW
	}

	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetTextColor(0, 0, 0)
	t.pdf.SetXY(startX, y+rowH)
}

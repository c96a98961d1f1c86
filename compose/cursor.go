package compose

import (
	"github.com/jung-kurt/gofpdf"
)

// Layout constants shared by the generic composer. Every renderer that
// advances the cursor goes through the same break threshold instead of
// re-deriving its own.
const (
	pageSideMargin   = 15.0
	pageTopMargin    = 20.0
	pageBottomMargin = 20.0
	breakSlack       = 15.0 // room kept above the bottom margin before breaking

	metaRowMinHeight = 6.0
	metaLineHeight   = 5.0
	textareaBoxH     = 25.0
	inputBoxH        = 15.0
)

// Cursor tracks the vertical layout position on a paginated document and
// triggers page breaks when content would run past the break threshold.
type Cursor struct {
	pdf   *gofpdf.Fpdf
	limit float64
}

// NewCursor builds a cursor for the given document using its current page
// size and margins.
func NewCursor(pdf *gofpdf.Fpdf) *Cursor {
	_, pageH := pdf.GetPageSize()
	_, _, _, bMargin := pdf.GetMargins()
	return &Cursor{pdf: pdf, limit: pageH - bMargin - breakSlack}
}

// Y returns the current vertical position.
func (c *Cursor) Y() float64 {
	return c.pdf.GetY()
}

// Need guarantees room for a block of the given height, breaking the page
// first when the cursor is past the threshold. It returns the y position
// the block should be drawn at.
func (c *Cursor) Need(h float64) float64 {
	if c.pdf.GetY()+h > c.limit {
		c.pdf.AddPage()
	}
	return c.pdf.GetY()
}

// Advance moves the cursor down by h without drawing.
func (c *Cursor) Advance(h float64) {
	c.pdf.SetY(c.pdf.GetY() + h)
}

// Package compose turns a (template, record) pair into a paginated PDF.
//
// The generic pipeline draws a title block, an optional classification
// badge, a metadata block, every template field in order, signature boxes
// and a traceability block, stamping each page with its number and the
// system caption. Specialized renderers reuse the same primitives (Begin,
// Cursor, TraceabilityBlock) so pagination behaves identically everywhere.
package compose

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/qualipharm/qualipharm/schema"
)

// MissingValue is the fallback text rendered for a missing optional value.
// Fields are never silently dropped.
const MissingValue = "Non renseigné"

// Composer builds PDF documents. A Composer is reusable: each Compose or
// Begin call starts a fresh document. Not safe for concurrent use.
type Composer struct {
	cfg      *config
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	cur      *Cursor
	filename string
}

// NewComposer creates a Composer with the given options.
func NewComposer(opts ...Option) *Composer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Composer{cfg: cfg}
}

// Begin starts a fresh A4 portrait document with the per-page footer
// installed and draws the centered title block.
func (c *Composer) Begin(title string) {
	c.begin("P", title)
}

// BeginLandscape is Begin with a landscape page, used for wide
// compilation tables.
func (c *Composer) BeginLandscape(title string) {
	c.begin("L", title)
}

func (c *Composer) begin(orientation, title string) {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pageSideMargin, pageTopMargin, pageSideMargin)
	pdf.SetAutoPageBreak(false, pageBottomMargin)
	pdf.AliasNbPages("")
	pdf.SetTitle(title, true)

	c.pdf = pdf
	c.tr = pdf.UnicodeTranslatorFromDescriptor("")
	c.installFooter()

	pdf.AddPage()
	c.cur = NewCursor(pdf)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(c.cfg.accentR, c.cfg.accentG, c.cfg.accentB)
	pdf.CellFormat(c.contentWidth(), 10, c.tr(title), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	c.cur.Advance(2)
}

// PDF exposes the underlying document to specialized renderers.
func (c *Composer) PDF() *gofpdf.Fpdf {
	return c.pdf
}

// Cursor exposes the shared layout cursor.
func (c *Composer) Cursor() *Cursor {
	return c.cur
}

// Translate maps UTF-8 text to the document's cp1252 encoding.
func (c *Composer) Translate(s string) string {
	return c.tr(s)
}

// Accent returns the configured accent color.
func (c *Composer) Accent() (r, g, b int) {
	return c.cfg.accentR, c.cfg.accentG, c.cfg.accentB
}

// SetFilename lets a specialized renderer set the download name.
func (c *Composer) SetFilename(name string) {
	c.filename = name
}

// Filename returns the download name of the last composed document.
func (c *Composer) Filename() string {
	return c.filename
}

// Output serializes the composed document to w.
func (c *Composer) Output(w io.Writer) error {
	if c.pdf == nil {
		return ErrNotComposed
	}
	if err := c.pdf.Output(w); err != nil {
		return newComposeError("output", err)
	}
	return nil
}

// Compose runs the generic pipeline on a template and a filled record.
func (c *Composer) Compose(tpl *schema.DocumentTemplate, rec *schema.FilledRecord) error {
	if tpl == nil {
		return ErrTemplateNotFound
	}

	c.Begin(tpl.Title)

	if tpl.Classification != nil {
		c.classificationBadge(tpl, rec)
	}
	c.metadataBlock(tpl, rec)

	for _, f := range tpl.Fields {
		c.renderField(f, rec)
	}

	c.FinishDocument(tpl, rec)

	if c.pdf.Err() {
		return newComposeError("compose", c.pdf.Error())
	}
	return nil
}

// FinishDocument draws the signature boxes and the traceability block,
// then records the conventional output filename. Specialized renderers
// call it after their own content so every document ends the same way.
func (c *Composer) FinishDocument(tpl *schema.DocumentTemplate, rec *schema.FilledRecord) {
	c.signatureBoxes(rec)
	c.TraceabilityBlock(rec.ID)
	c.filename = schema.DocumentFileName(tpl, rec)
}

func (c *Composer) contentWidth() float64 {
	pageW, _ := c.pdf.GetPageSize()
	lm, _, rm, _ := c.pdf.GetMargins()
	return pageW - lm - rm
}

// classificationBadge draws the centered badge carrying the full
// "initials/process/category" code plus its two descriptive lines.
func (c *Composer) classificationBadge(tpl *schema.DocumentTemplate, rec *schema.FilledRecord) {
	const badgeW, badgeH = 70.0, 10.0

	code := tpl.Classification
	initials := rec.Initials()

	pageW, _ := c.pdf.GetPageSize()
	x := (pageW - badgeW) / 2
	y := c.cur.Need(badgeH + 12)

	c.pdf.SetFillColor(c.cfg.accentR, c.cfg.accentG, c.cfg.accentB)
	c.pdf.Rect(x, y, badgeW, badgeH, "F")
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.SetFont("Helvetica", "B", 12)
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(badgeW, badgeH, c.tr(code.Format(initials)), "", 0, "C", false, 0, "")

	c.pdf.SetTextColor(90, 90, 90)
	c.pdf.SetFont("Helvetica", "", 8)
	c.pdf.SetXY(pageSideMargin, y+badgeH+1)
	c.pdf.CellFormat(c.contentWidth(), 4, c.tr("Processus : "+code.ProcessLabel), "", 1, "C", false, 0, "")
	c.pdf.CellFormat(c.contentWidth(), 4, c.tr("Catégorie : "+code.CategoryLabel), "", 1, "C", false, 0, "")
	c.pdf.SetTextColor(0, 0, 0)
	c.cur.Advance(3)
}

// metadataBlock draws the fixed document-identity rows. Each row advances
// the cursor by max(6, wrappedLineCount*5).
func (c *Composer) metadataBlock(tpl *schema.DocumentTemplate, rec *schema.FilledRecord) {
	pharmacy := rec.PharmacyName
	if tpl.Classification != nil {
		pharmacy = fmt.Sprintf("%s [%s]", pharmacy,
			tpl.Classification.Format(rec.Initials()))
	}

	rows := []struct{ label, value string }{
		{"Type de document", tpl.Title},
		{"Catégorie", tpl.Category},
		{"Date de création", rec.CreatedAt.Format("02/01/2006 15:04")},
		{"Identifiant", rec.ID},
		{"Pharmacie", pharmacy},
	}

	const labelW = 45.0
	valueW := c.contentWidth() - labelW

	for _, row := range rows {
		c.pdf.SetFont("Helvetica", "", 9)
		lines := c.pdf.SplitLines([]byte(c.tr(row.value)), valueW)
		rowH := float64(len(lines)) * metaLineHeight
		if rowH < metaRowMinHeight {
			rowH = metaRowMinHeight
		}

		y := c.cur.Need(rowH)
		c.pdf.SetFont("Helvetica", "B", 9)
		c.pdf.SetXY(pageSideMargin, y)
		c.pdf.CellFormat(labelW, metaLineHeight, c.tr(row.label), "", 0, "L", false, 0, "")

		c.pdf.SetFont("Helvetica", "", 9)
		for i, line := range lines {
			c.pdf.SetXY(pageSideMargin+labelW, y+float64(i)*metaLineHeight)
			c.pdf.CellFormat(valueW, metaLineHeight, string(line), "", 0, "L", false, 0, "")
		}
		c.pdf.SetY(y + rowH)
	}
	c.cur.Advance(4)
}

// renderField draws one template field: accent label, then the wrapped
// value. Textarea and required fields get a light background rectangle
// with the fixed estimated height (an intentional layout approximation,
// not measured from the wrapped line count). Unknown field types fall
// through to the single-line renderer.
func (c *Composer) renderField(f schema.FieldDescriptor, rec *schema.FilledRecord) {
	value := rec.Value(f.ID)
	if value == "" {
		value = MissingValue
	}

	boxH := inputBoxH
	if f.Type == schema.FieldTextarea {
		boxH = textareaBoxH
	}

	const labelH = 5.0
	contentW := c.contentWidth()

	c.pdf.SetFont("Helvetica", "", 9)
	lines := c.pdf.SplitLines([]byte(c.tr(value)), contentW-4)
	textH := float64(len(lines)) * metaLineHeight

	blockH := labelH + boxH
	if textH > boxH {
		blockH = labelH + textH
	}
	y := c.cur.Need(blockH + 2)

	c.pdf.SetFont("Helvetica", "B", 10)
	c.pdf.SetTextColor(c.cfg.accentR, c.cfg.accentG, c.cfg.accentB)
	c.pdf.SetXY(pageSideMargin, y)
	c.pdf.CellFormat(contentW, labelH, c.tr(f.Label), "", 1, "L", false, 0, "")
	c.pdf.SetTextColor(0, 0, 0)

	if f.Type == schema.FieldTextarea || f.Required {
		c.pdf.SetFillColor(240, 244, 250)
		c.pdf.Rect(pageSideMargin, y+labelH, contentW, boxH, "F")
	}

	c.pdf.SetFont("Helvetica", "", 9)
	for i, line := range lines {
		c.pdf.SetXY(pageSideMargin+2, y+labelH+1+float64(i)*metaLineHeight)
		c.pdf.CellFormat(contentW-4, metaLineHeight, string(line), "", 0, "L", false, 0, "")
	}

	c.pdf.SetY(y + blockH + 2)
}

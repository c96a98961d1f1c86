package compose

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf/contrib/barcode"
)

// installFooter stamps every page with the system caption on the left and
// "Page N/total" on the right. The total uses the {nb} alias resolved at
// output time.
func (c *Composer) installFooter() {
	pdf := c.pdf
	tr := c.tr
	tag := c.cfg.systemTag
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, tr(tag), "", 0, "L", false, 0, "")
		pdf.SetX(-40)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
}

// TraceabilityBlock draws the end-of-document traceability lines
// (generation timestamp, system tag, record reference) and, unless
// disabled, a QR code carrying the record reference.
func (c *Composer) TraceabilityBlock(recordID string) {
	const qrSize = 16.0
	blockH := 16.0
	if c.cfg.qrCode {
		blockH = qrSize + 4
	}
	y := c.cur.Need(blockH + 4)

	c.pdf.SetDrawColor(180, 180, 180)
	c.pdf.SetLineWidth(0.3)
	c.pdf.Line(pageSideMargin, y, pageSideMargin+c.contentWidth(), y)
	c.pdf.SetDrawColor(0, 0, 0)

	c.pdf.SetFont("Helvetica", "", 7)
	c.pdf.SetTextColor(110, 110, 110)
	lines := []string{
		"Document généré le " + c.cfg.now().Format("02/01/2006 à 15:04"),
		c.cfg.systemTag,
		"Réf. " + recordID,
	}
	for i, line := range lines {
		c.pdf.SetXY(pageSideMargin, y+2+float64(i)*4)
		c.pdf.CellFormat(c.contentWidth()-qrSize-4, 4, c.tr(line), "", 0, "L", false, 0, "")
	}
	c.pdf.SetTextColor(0, 0, 0)

	if c.cfg.qrCode {
		key := barcode.RegisterQR(c.pdf, recordID, qr.M, qr.Unicode)
		barcode.Barcode(c.pdf, key, pageSideMargin+c.contentWidth()-qrSize, y+2, qrSize, qrSize, false)
	}

	c.pdf.SetY(y + blockH + 2)
}

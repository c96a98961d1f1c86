package compose

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/draw"

	"github.com/qualipharm/qualipharm/schema"
)

const (
	signatureBoxH = 40.0
	signatureGap  = 10.0
	sigImageW     = 35.0 // drawn size in mm
	sigImageH     = 12.0
	sigImageMaxPx = 600 // uploads are downscaled to this width before embedding
)

// signatureBoxes draws the established-by / verified-by boxes with their
// static date/signature lines, embedding uploaded signature and stamp
// images when the record carries them.
func (c *Composer) signatureBoxes(rec *schema.FilledRecord) {
	boxW := (c.contentWidth() - signatureGap) / 2
	y := c.cur.Need(signatureBoxH + 6)

	var recorder, verifier *schema.SignatureEntry
	if rec.Signatures != nil {
		recorder = rec.Signatures.Recorder
		verifier = rec.Signatures.Verifier
	}

	c.signatureBox(pageSideMargin, y, boxW, "Établi par", recorder, rec.ID+"-rec")
	c.signatureBox(pageSideMargin+boxW+signatureGap, y, boxW, "Vérifié par", verifier, rec.ID+"-ver")

	c.pdf.SetY(y + signatureBoxH + 6)
}

func (c *Composer) signatureBox(x, y, w float64, title string, entry *schema.SignatureEntry, imgKey string) {
	c.pdf.SetDrawColor(120, 120, 120)
	c.pdf.SetLineWidth(0.3)
	c.pdf.Rect(x, y, w, signatureBoxH, "D")
	c.pdf.SetDrawColor(0, 0, 0)

	c.pdf.SetFont("Helvetica", "B", 9)
	c.pdf.SetXY(x+2, y+2)
	c.pdf.CellFormat(w-4, 5, c.tr(title), "", 1, "L", false, 0, "")

	name, date := "", ""
	if entry != nil {
		name, date = entry.Name, entry.Date
	}

	c.pdf.SetFont("Helvetica", "", 8)
	c.pdf.SetXY(x+2, y+9)
	c.pdf.CellFormat(w-4, 4, c.tr("Nom : "+name), "", 1, "L", false, 0, "")
	c.pdf.SetXY(x+2, y+14)
	c.pdf.CellFormat(w-4, 4, c.tr("Date : "+date), "", 1, "L", false, 0, "")
	c.pdf.SetXY(x+2, y+19)
	c.pdf.CellFormat(w-4, 4, c.tr("Signature :"), "", 1, "L", false, 0, "")

	if entry == nil {
		return
	}
	if len(entry.SignatureImage) > 0 {
		c.embedImage(imgKey+"-sig", entry.SignatureImage, x+4, y+24)
	}
	if len(entry.StampImage) > 0 {
		c.embedImage(imgKey+"-stamp", entry.StampImage, x+4+sigImageW+2, y+24)
	}
}

// embedImage decodes, downscales and places an uploaded image. A broken
// upload is skipped rather than failing the whole document.
func (c *Composer) embedImage(key string, data []byte, x, y float64) {
	scaled, err := scalePNG(data)
	if err != nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(key, opts, bytes.NewReader(scaled))
	c.pdf.ImageOptions(key, x, y, sigImageW, sigImageH, false, opts, 0, "")
}

// scalePNG decodes PNG or JPEG bytes and re-encodes them as a PNG no wider
// than sigImageMaxPx, keeping the aspect ratio.
func scalePNG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding signature image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > sigImageMaxPx {
		h = h * sigImageMaxPx / w
		w = sigImageMaxPx
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding signature image: %w", err)
	}
	return buf.Bytes(), nil
}

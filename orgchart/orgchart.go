// Package orgchart renders the pharmacy organizational chart: a small
// fixed-depth tree (titulaire, optional adjoints, administrator branches
// with their teams, auxiliary staff) drawn as colored boxes connected by
// L-shaped lines.
package orgchart

import (
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/schema"
)

// Branch is one administrator with their team members.
type Branch struct {
	Name string
	Team []string
}

// Chart is the hierarchy extracted from a filled org-chart record. Which
// optional fields are non-empty decides which nodes exist.
type Chart struct {
	Titulaire      string
	Adjoints       []string
	Administrators []Branch
	Auxiliaries    []string
}

// FromRecord builds the chart from the record's field values. Team and
// auxiliary textareas hold one name per line.
func FromRecord(rec *schema.FilledRecord) *Chart {
	ch := &Chart{Titulaire: rec.Value("titulaire")}

	for _, id := range []string{"adjoint1", "adjoint2"} {
		if v := rec.Value(id); v != "" {
			ch.Adjoints = append(ch.Adjoints, v)
		}
	}
	for i, id := range []string{"administrator1", "administrator2"} {
		if v := rec.Value(id); v != "" {
			teamField := []string{"subAdmins1", "subAdmins2"}[i]
			ch.Administrators = append(ch.Administrators, Branch{
				Name: v,
				Team: splitNames(rec.Value(teamField)),
			})
		}
	}
	ch.Auxiliaries = splitNames(rec.Value("auxiliaries"))
	return ch
}

func splitNames(v string) []string {
	var out []string
	for _, line := range strings.Split(v, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// initials returns the first letter of each whitespace token, uppercased.
// Unlike the pharmacy initials this is not truncated.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Render draws the chart document: title block, the tree, then the shared
// traceability block. The output filename follows the document convention.
func Render(c *compose.Composer, tpl *schema.DocumentTemplate, rec *schema.FilledRecord) error {
	ch := FromRecord(rec)

	c.Begin(tpl.Title)
	pdf := c.PDF()
	cur := c.Cursor()
	r, g, b := c.Accent()

	pageW, _ := pdf.GetPageSize()
	centerX := pageW / 2

	// Titulaire.
	y := cur.Need(boxH)
	drawBox(c, centerX-boxW/2, y, boxW, boxH, ch.Titulaire, "Pharmacien titulaire", boxStyle{fillR: r, fillG: g, fillB: b, white: true})
	parentBottom := y + boxH

	// Adjoints row.
	if n := len(ch.Adjoints); n > 0 {
		rowW := float64(n)*boxW + float64(n-1)*adjointGap
		y = parentBottom + levelGap
		cur.Advance(levelGap + boxH)
		x := centerX - rowW/2
		for _, adj := range ch.Adjoints {
			elbow(pdf, centerX, parentBottom, x+boxW/2, y)
			drawBox(c, x, y, boxW, boxH, adj, "Pharmacien adjoint", boxStyle{fillR: 227, fillG: 236, fillB: 250})
			x += boxW + adjointGap
		}
		parentBottom = y + boxH
	}

	// Two branch columns: administrators on the left, auxiliaries on the
	// right. Each hangs from the last management level.
	branchTop := parentBottom + levelGap
	leftX := centerX - branchColW - branchGap/2
	rightX := centerX + branchGap/2

	leftBottom := renderAdministrators(c, ch, leftX, branchTop, centerX, parentBottom)
	rightBottom := renderAuxiliaries(c, ch, rightX, branchTop, centerX, parentBottom)

	bottom := leftBottom
	if rightBottom > bottom {
		bottom = rightBottom
	}
	pdf.SetY(bottom + 8)

	c.TraceabilityBlock(rec.ID)
	c.SetFilename(schema.DocumentFileName(tpl, rec))

	if pdf.Err() {
		return pdf.Error()
	}
	return nil
}

func renderAdministrators(c *compose.Composer, ch *Chart, colX, top, parentX, parentBottom float64) float64 {
	pdf := c.PDF()
	bottom := top
	y := top
	for _, br := range ch.Administrators {
		boxX := colX + (branchColW-boxW)/2
		elbow(pdf, parentX, parentBottom, boxX+boxW/2, y)
		drawBox(c, boxX, y, boxW, boxH, br.Name, "Préparateur référent", boxStyle{fillR: 236, fillG: 236, fillB: 236})
		y += boxH + subGap

		subX := colX + (branchColW-subBoxW)/2
		for _, member := range br.Team {
			pdf.Line(boxX+boxW/2, y-subGap, boxX+boxW/2, y)
			drawBox(c, subX, y, subBoxW, subBoxH, member, "", boxStyle{outline: true})
			y += subBoxH + subGap
		}
		y += subGap * 2
		bottom = y - subGap*2
	}
	return bottom
}

func renderAuxiliaries(c *compose.Composer, ch *Chart, colX, top, parentX, parentBottom float64) float64 {
	pdf := c.PDF()
	if len(ch.Auxiliaries) == 0 {
		return top
	}

	boxX := colX + (branchColW-boxW)/2
	elbow(pdf, parentX, parentBottom, boxX+boxW/2, top)
	drawBox(c, boxX, top, boxW, boxH, "Personnel auxiliaire", "", boxStyle{fillR: 236, fillG: 236, fillB: 236})
	y := top + boxH + subGap

	if len(ch.Auxiliaries) <= 2 {
		subX := colX + (branchColW-subBoxW)/2
		for _, name := range ch.Auxiliaries {
			pdf.Line(boxX+boxW/2, y-subGap, boxX+boxW/2, y)
			drawBox(c, subX, y, subBoxW, subBoxH, name, "", boxStyle{outline: true})
			y += subBoxH + subGap
		}
		return y - subGap
	}

	// More than two people: compact initialed chips, three per row, to
	// conserve horizontal space.
	rowW := float64(chipsPerRow)*chipW + float64(chipsPerRow-1)*chipGap
	startX := colX + (branchColW-rowW)/2
	for i, name := range ch.Auxiliaries {
		col := i % chipsPerRow
		if col == 0 && i > 0 {
			y += chipH + chipGap
		}
		drawChip(c, startX+float64(col)*(chipW+chipGap), y, initials(name))
	}
	return y + chipH
}

type boxStyle struct {
	fillR, fillG, fillB int
	white               bool
	outline             bool
}

func drawBox(c *compose.Composer, x, y, w, h float64, name, role string, style boxStyle) {
	pdf := c.PDF()

	if style.outline {
		pdf.SetDrawColor(150, 150, 150)
		pdf.Rect(x, y, w, h, "D")
		pdf.SetDrawColor(0, 0, 0)
	} else {
		pdf.SetFillColor(style.fillR, style.fillG, style.fillB)
		pdf.Rect(x, y, w, h, "F")
	}

	if style.white {
		pdf.SetTextColor(255, 255, 255)
	}
	nameSize := 9.0
	if h <= subBoxH {
		nameSize = 7.5
	}
	pdf.SetFont("Helvetica", "B", nameSize)
	if role != "" {
		pdf.SetXY(x, y+h/2-5)
		pdf.CellFormat(w, 5, c.Translate(name), "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(x, y+h/2)
		pdf.CellFormat(w, 4, c.Translate(role), "", 0, "C", false, 0, "")
	} else {
		pdf.SetXY(x, y+(h-5)/2)
		pdf.CellFormat(w, 5, c.Translate(name), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

func drawChip(c *compose.Composer, x, y float64, text string) {
	pdf := c.PDF()
	r, g, b := c.Accent()
	pdf.SetDrawColor(r, g, b)
	pdf.Rect(x, y, chipW, chipH, "D")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x, y+(chipH-4)/2)
	pdf.CellFormat(chipW, 4, c.Translate(text), "", 0, "C", false, 0, "")
}

// elbow draws the L-shaped connector from a parent's bottom center to a
// child's top center.
func elbow(pdf *gofpdf.Fpdf, parentX, parentBottom, childX, childTop float64) {
	midY := parentBottom + connectorDrop
	pdf.Line(parentX, parentBottom, parentX, midY)
	pdf.Line(parentX, midY, childX, midY)
	pdf.Line(childX, midY, childX, childTop)
}

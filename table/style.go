// Package table renders paginated register tables into a PDF document.
//
// Columns carry fixed widths (summing to the content width) or auto-fill
// the remaining space. Header rows repeat at the top of every overflow
// page. Cell text wraps to the column width; header text is capped at two
// wrapped lines.
package table

// RGBColor is an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines the font used for a group of cells.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // points
}

// Padding is the spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// CellStyle is the visual appearance of a cell group.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C", "R"
}

// Style is the table-wide appearance.
type Style struct {
	CellPadding Padding
	HeaderStyle *CellStyle
	BodyFont    *FontSpec
	ZebraFill   *RGBColor // fill for even body rows, nil to disable
	BorderColor *RGBColor
	LineWidth   float64
}

// RegisterStyle is the house style shared by the register renderers:
// accent header band, light zebra rows, thin gray grid.
func RegisterStyle(accent RGBColor) Style {
	return Style{
		CellPadding: UniformPadding(1.5),
		HeaderStyle: &CellStyle{
			FillColor: &accent,
			TextColor: &RGBColor{255, 255, 255},
			Font:      &FontSpec{Family: "Helvetica", Style: "B", Size: 8},
			Align:     "C",
		},
		BodyFont:    &FontSpec{Family: "Helvetica", Size: 8},
		ZebraFill:   &RGBColor{245, 245, 245},
		BorderColor: &RGBColor{120, 120, 120},
		LineWidth:   0.2,
	}
}

func merge(dst, src *CellStyle) {
	if src == nil {
		return
	}
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}

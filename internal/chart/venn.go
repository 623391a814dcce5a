// Package chart draws the two-circle vocabulary overlap schematic.
//
// The geometry is fixed: circle size and overlap never scale with the data,
// only the printed numbers do.
package chart

import (
	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/format"
)

// Layout of the overlap schematic.
const (
	Width   = 600
	Height  = 400
	Radius  = 120
	Spacing = 80 // horizontal offset of each circle from the centre

	labelGap = 20
)

// Colors used by the schematic.
const (
	FirstFill   = "#9ACD32"
	SecondFill  = "#DB7093"
	CountColor  = "#2F4F2F"
	SharedColor = "#4B0082"
	NameColor   = "#3B2F2F"
)

// Names labels the two circles.
type Names struct {
	First, Second string
}

// RenderOverlap clears c and draws the schematic for cmp. Calling it
// repeatedly with the same input leaves exactly one diagram on c.
func RenderOverlap(c *Canvas, cmp analysis.ComparisonStats, names Names, p *format.Printer) {
	c.Clear()

	cx, cy := c.Width/2, c.Height/2
	left, right := cx-Spacing, cx+Spacing

	c.Add(
		Circle{CX: left, CY: cy, R: Radius, Fill: FirstFill, Opacity: 0.5, Class: "venn-first"},
		Circle{CX: right, CY: cy, R: Radius, Fill: SecondFill, Opacity: 0.5, Class: "venn-second"},
	)

	nameY := cy - Radius - labelGap
	c.Add(
		Label{X: left, Y: nameY, Text: names.First, Fill: NameColor, Size: 18, Weight: "bold", Class: "venn-name-first"},
		Label{X: right, Y: nameY, Text: names.Second, Fill: NameColor, Size: 18, Weight: "bold", Class: "venn-name-second"},
	)

	c.Add(
		Label{X: left, Y: cy, Text: p.Count(cmp.UniqueToFirst), Fill: CountColor, Size: 20, Weight: "bold", Class: "venn-count-first"},
		Label{X: right, Y: cy, Text: p.Count(cmp.UniqueToSecond), Fill: CountColor, Size: 20, Weight: "bold", Class: "venn-count-second"},
	)

	c.Add(
		Label{X: cx, Y: cy, Text: p.Count(cmp.TotalSharedWords), Fill: SharedColor, Size: 22, Weight: "bold", Class: "venn-count-shared"},
		Label{X: cx, Y: cy + labelGap, Text: "Shared", Fill: SharedColor, Size: 14, Class: "venn-shared-label"},
	)
}

// NewOverlap returns a canvas of the standard size with the schematic drawn.
func NewOverlap(cmp analysis.ComparisonStats, names Names, p *format.Printer) *Canvas {
	c := NewCanvas(Width, Height)
	RenderOverlap(c, cmp, names, p)
	return c
}

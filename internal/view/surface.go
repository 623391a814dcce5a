// Package view fills named display slots from an analysis document.
package view

import (
	"github.com/ziadkadry99/plantlore/internal/chart"
)

// Item is one entry of a rendered list.
type Item struct {
	Label string
	Value string
}

// String renders the item as "word — count", or just the word when there
// is no value.
func (i Item) String() string {
	if i.Value == "" {
		return i.Label
	}
	return i.Label + " — " + i.Value
}

// Surface is the set of named output slots a populator writes into.
type Surface interface {
	SetText(slot, text string)
	SetWidth(slot string, percent float64)
	ClearItems(container string)
	AppendItem(container string, item Item)
	Canvas(slot string) *chart.Canvas
}

// Page is an in-memory Surface. It is built once per render and read by
// the page template.
type Page struct {
	texts    map[string]string
	widths   map[string]float64
	lists    map[string][]Item
	canvases map[string]*chart.Canvas
	writes   map[string]int
}

// NewPage returns an empty Page.
func NewPage() *Page {
	return &Page{
		texts:    make(map[string]string),
		widths:   make(map[string]float64),
		lists:    make(map[string][]Item),
		canvases: make(map[string]*chart.Canvas),
		writes:   make(map[string]int),
	}
}

func (p *Page) SetText(slot, text string) {
	p.texts[slot] = text
	p.writes[slot]++
}

func (p *Page) SetWidth(slot string, percent float64) {
	p.widths[slot] = percent
	p.writes[slot]++
}

func (p *Page) ClearItems(container string) {
	p.lists[container] = nil
	p.writes[container]++
}

func (p *Page) AppendItem(container string, item Item) {
	p.lists[container] = append(p.lists[container], item)
}

// Canvas returns the canvas bound to slot, creating it on first use. The
// same canvas is returned on every call so re-rendering replaces the
// previous drawing.
func (p *Page) Canvas(slot string) *chart.Canvas {
	c, ok := p.canvases[slot]
	if !ok {
		c = chart.NewCanvas(chart.Width, chart.Height)
		p.canvases[slot] = c
	}
	return c
}

// Text returns the text written to slot.
func (p *Page) Text(slot string) string { return p.texts[slot] }

// Width returns the bar width written to slot.
func (p *Page) Width(slot string) float64 { return p.widths[slot] }

// Items returns the items appended to container.
func (p *Page) Items(container string) []Item { return p.lists[container] }

// HasCanvas reports whether anything was drawn for slot.
func (p *Page) HasCanvas(slot string) bool {
	c, ok := p.canvases[slot]
	return ok && c.Len() > 0
}

// Writes returns how many times slot was written.
func (p *Page) Writes(slot string) int { return p.writes[slot] }

// Empty reports whether nothing has been written.
func (p *Page) Empty() bool { return len(p.writes) == 0 && len(p.canvases) == 0 }

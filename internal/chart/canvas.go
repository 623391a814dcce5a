package chart

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Element is anything that can be drawn on a Canvas.
type Element interface {
	draw(s *svg.SVG)
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R int
	Fill      string
	Opacity   float64
	Class     string
}

func (c Circle) draw(s *svg.SVG) {
	s.Circle(c.CX, c.CY, c.R,
		fmt.Sprintf(`class="%s"`, c.Class),
		fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-width:2", c.Fill, c.Opacity, c.Fill))
}

// Label is a line of centered text.
type Label struct {
	X, Y   int
	Text   string
	Fill   string
	Size   int
	Weight string
	Class  string
}

func (l Label) draw(s *svg.SVG) {
	weight := l.Weight
	if weight == "" {
		weight = "normal"
	}
	s.Text(l.X, l.Y, l.Text,
		fmt.Sprintf(`class="%s"`, l.Class),
		`dominant-baseline="middle"`,
		fmt.Sprintf("text-anchor:middle;font-family:Georgia,serif;font-size:%dpx;font-weight:%s;fill:%s", l.Size, weight, l.Fill))
}

// Canvas is a fixed-size drawing surface that keeps its elements until
// cleared.
type Canvas struct {
	Width, Height int
	elements      []Element
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// Clear removes every element.
func (c *Canvas) Clear() {
	c.elements = c.elements[:0]
}

// Add appends elements in drawing order.
func (c *Canvas) Add(els ...Element) {
	c.elements = append(c.elements, els...)
}

// Len returns the number of elements drawn.
func (c *Canvas) Len() int { return len(c.elements) }

// Circles returns the circles on the canvas in drawing order.
func (c *Canvas) Circles() []Circle {
	var out []Circle
	for _, e := range c.elements {
		if circle, ok := e.(Circle); ok {
			out = append(out, circle)
		}
	}
	return out
}

// Labels returns the text labels on the canvas in drawing order.
func (c *Canvas) Labels() []Label {
	var out []Label
	for _, e := range c.elements {
		if l, ok := e.(Label); ok {
			out = append(out, l)
		}
	}
	return out
}

// WriteSVG writes the canvas as a standalone SVG document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	s := svg.New(&buf)
	s.Startview(c.Width, c.Height, 0, 0, c.Width, c.Height)
	for _, e := range c.elements {
		e.draw(s)
	}
	s.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// Inline returns the <svg> element alone, for embedding in an HTML page.
func (c *Canvas) Inline() (string, error) {
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return "", err
	}
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out, nil
}

// Package site renders the analysis report as HTML, either per request or
// as a static site on disk.
package site

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/chart"
	"github.com/ziadkadry99/plantlore/internal/nav"
	"github.com/ziadkadry99/plantlore/internal/view"
)

// LinkFunc returns the href of a view selector.
type LinkFunc func(viewID string) string

// ViewInfo names one navigable view.
type ViewInfo struct {
	ID    string
	Label string
}

// Renderer turns a populated view.Page into an HTML document.
type Renderer struct {
	Title string
	Lang  string
	Intro template.HTML
	Names chart.Names

	// BasePath prefixes the stylesheet URL and AssetPath the image URLs.
	// Both are empty for static pages, which reference siblings.
	BasePath  string
	AssetPath string

	// Views in display order: first text, second text, comparison.
	Views []ViewInfo

	tmpl *template.Template
}

// NewRenderer parses the page template.
func NewRenderer(title, lang string, intro template.HTML, names chart.Names, views []ViewInfo) (*Renderer, error) {
	if len(views) != 3 {
		return nil, fmt.Errorf("renderer needs exactly 3 views, got %d", len(views))
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{
		Title: title,
		Lang:  lang,
		Intro: intro,
		Names: names,
		Views: views,
		tmpl:  tmpl,
	}, nil
}

// WithPaths returns a copy of r whose pages load the stylesheet from base
// and images from assets.
func (r *Renderer) WithPaths(base, assets string) *Renderer {
	c := *r
	c.BasePath = base
	c.AssetPath = assets
	return &c
}

type tab struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

type bar struct {
	Name      string
	Slot      string
	ValueSlot string
	Width     string
	Value     string
}

type textSection struct {
	ID        string
	Label     string
	Visible   bool
	Title     string
	Author    string
	Total     string
	Unique    string
	Diversity string
	Bars      []bar
	Compound  string
	Wordcloud string
	TopWords  []view.Item
}

type comparisonSection struct {
	ID           string
	Label        string
	Visible      bool
	Overlap      string
	Summary      string
	Venn         template.HTML
	SharedWords  []view.Item
	UniqueFirst  []view.Item
	UniqueSecond []view.Item
	FirstName    string
	SecondName   string
}

type pageData struct {
	Title      string
	Lang       string
	Intro      template.HTML
	BasePath   string
	AssetPath  string
	Tabs       []tab
	Texts      []textSection
	Comparison comparisonSection
	Method     string
	Stopwords  bool
}

// Render writes the page. ctl decides which view is visible; link builds
// the selector hrefs; meta adds the footer notes.
func (r *Renderer) Render(w io.Writer, page *view.Page, ctl *nav.Controller, link LinkFunc, meta analysis.Metadata) error {
	venn := ""
	if page.HasCanvas(view.SlotVenn) {
		svgMarkup, err := page.Canvas(view.SlotVenn).Inline()
		if err != nil {
			return fmt.Errorf("rendering overlap chart: %w", err)
		}
		venn = svgMarkup
	}

	data := pageData{
		Title:     r.Title,
		Lang:      r.Lang,
		Intro:     r.Intro,
		BasePath:  r.BasePath,
		AssetPath: r.AssetPath,
		Method:    meta.SentimentMethod,
		Stopwords: meta.StopwordsRemoved,
	}

	for _, v := range r.Views {
		data.Tabs = append(data.Tabs, tab{ID: v.ID, Label: v.Label, Href: link(v.ID), Active: ctl.Active(v.ID)})
	}

	for _, v := range r.Views[:2] {
		data.Texts = append(data.Texts, textSectionFor(page, v, ctl.Visible(v.ID)))
	}

	cmp := r.Views[2]
	data.Comparison = comparisonSection{
		ID:           cmp.ID,
		Label:        cmp.Label,
		Visible:      ctl.Visible(cmp.ID),
		Overlap:      page.Text(view.SlotOverlap),
		Summary:      page.Text(view.SlotSummary),
		Venn:         template.HTML(venn),
		SharedWords:  page.Items(view.SlotSharedWords),
		UniqueFirst:  page.Items(view.SlotUniqueFirst),
		UniqueSecond: page.Items(view.SlotUniqueSecond),
		FirstName:    r.Names.First,
		SecondName:   r.Names.Second,
	}

	return r.tmpl.Execute(w, data)
}

func textSectionFor(page *view.Page, v ViewInfo, visible bool) textSection {
	s := textSection{
		ID:        v.ID,
		Label:     v.Label,
		Visible:   visible,
		Title:     page.Text(view.Name(v.ID, view.SlotTitle)),
		Author:    page.Text(view.Name(v.ID, view.SlotAuthor)),
		Total:     page.Text(view.Name(v.ID, view.SlotTotalWords)),
		Unique:    page.Text(view.Name(v.ID, view.SlotUniqueWords)),
		Diversity: page.Text(view.Name(v.ID, view.SlotLexicalDiversity)),
		Compound:  page.Text(view.Name(v.ID, view.SlotCompound)),
		Wordcloud: page.Text(view.Name(v.ID, view.SlotWordcloud)),
		TopWords:  page.Items(view.Name(v.ID, view.SlotTopWords)),
	}
	for _, name := range view.Sentiments {
		s.Bars = append(s.Bars, bar{
			Name:      name,
			Slot:      view.BarSlot(v.ID, name),
			ValueSlot: view.ValueSlot(v.ID, name),
			Width:     strconv.FormatFloat(page.Width(view.BarSlot(v.ID, name)), 'f', -1, 64) + "%",
			Value:     page.Text(view.ValueSlot(v.ID, name)),
		})
	}
	return s
}

// CSS returns the stylesheet referenced by rendered pages.
func CSS() string { return cssContent }

// Package report assembles a populated page and its renderer from a loaded
// analysis document and the configuration.
package report

import (
	"fmt"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/chart"
	"github.com/ziadkadry99/plantlore/internal/config"
	"github.com/ziadkadry99/plantlore/internal/format"
	"github.com/ziadkadry99/plantlore/internal/nav"
	"github.com/ziadkadry99/plantlore/internal/site"
	"github.com/ziadkadry99/plantlore/internal/view"
)

// Title heads every rendered page.
const Title = "Plant Lore: A Distant Reading"

// Report is a document rendered into display slots, ready to be written
// as HTML any number of times. It is read-only after New returns.
type Report struct {
	Doc         *analysis.Document
	Page        *view.Page
	Renderer    *site.Renderer
	DefaultView string
}

// New populates every view from doc. doc must come from a successful load;
// on error nothing is returned.
func New(cfg *config.Config, doc *analysis.Document) (*Report, error) {
	printer, err := format.NewPrinter(cfg.Locale)
	if err != nil {
		return nil, err
	}

	intro, err := site.Intro(cfg.Intro)
	if err != nil {
		return nil, err
	}

	names := chart.Names{First: cfg.Labels.First, Second: cfg.Labels.Second}
	views := []site.ViewInfo{
		{ID: config.ViewFirst, Label: cfg.Labels.First},
		{ID: config.ViewSecond, Label: cfg.Labels.Second},
		{ID: config.ViewComparison, Label: "Comparison"},
	}

	renderer, err := site.NewRenderer(Title, printer.Locale(), intro, names, views)
	if err != nil {
		return nil, err
	}

	page := view.NewPage()
	view.PopulateAll(page, doc, view.Options{
		Printer:    printer,
		Limit:      cfg.ListLimit,
		Names:      names,
		FirstView:  config.ViewFirst,
		SecondView: config.ViewSecond,
	})

	return &Report{Doc: doc, Page: page, Renderer: renderer, DefaultView: cfg.DefaultView}, nil
}

// Navigation returns a fresh navigation state showing viewID, or the
// default view when viewID is empty.
func (r *Report) Navigation(viewID string) (*nav.Controller, error) {
	ctl, err := nav.New(config.Views, r.DefaultView)
	if err != nil {
		return nil, fmt.Errorf("default view: %w", err)
	}
	if viewID != "" {
		if err := ctl.Dispatch(nav.Event{Name: nav.EventSelect, Target: viewID}); err != nil {
			return nil, err
		}
	}
	return ctl, nil
}

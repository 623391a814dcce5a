package view

import (
	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/chart"
	"github.com/ziadkadry99/plantlore/internal/format"
)

// DefaultLimit is how many list entries a view shows.
const DefaultLimit = 30

// Options control how values are formatted.
type Options struct {
	Printer *format.Printer
	Limit   int
	Names   chart.Names

	// View ids used as slot prefixes for texts[0] and texts[1].
	FirstView, SecondView string
}

func (o Options) withDefaults() Options {
	if o.Printer == nil {
		o.Printer = format.English()
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.FirstView == "" {
		o.FirstView = "first"
	}
	if o.SecondView == "" {
		o.SecondView = "second"
	}
	return o
}

// PopulateAll fills the first, second and comparison views from doc, in
// that order. doc must have passed Validate.
func PopulateAll(s Surface, doc *analysis.Document, opts Options) {
	opts = opts.withDefaults()

	PopulateText(s, opts.FirstView, doc.First(), opts)
	PopulateText(s, opts.SecondView, doc.Second(), opts)
	PopulateComparison(s, doc.Comparison, opts)

	for _, v := range []string{opts.FirstView, opts.SecondView} {
		if img, ok := doc.Metadata.WordcloudImages[v]; ok && img != "" {
			s.SetText(Name(v, SlotWordcloud), img)
		}
	}
}

// PopulateText writes one text's statistics into the slots of view.
// Values are rendered as given, without range checks.
func PopulateText(s Surface, view string, t analysis.TextStats, opts Options) {
	opts = opts.withDefaults()
	p := opts.Printer

	s.SetText(Name(view, SlotTitle), t.Title)
	s.SetText(Name(view, SlotAuthor), t.Author)
	s.SetText(Name(view, SlotTotalWords), p.Count(t.TotalWords))
	s.SetText(Name(view, SlotUniqueWords), p.Count(t.UniqueWords))
	s.SetText(Name(view, SlotLexicalDiversity), p.Ratio(t.LexicalDiversity, 2))

	fractions := map[string]float64{
		"positive": t.Sentiment.Positive,
		"negative": t.Sentiment.Negative,
		"neutral":  t.Sentiment.Neutral,
	}
	for _, name := range Sentiments {
		f := fractions[name]
		s.SetWidth(BarSlot(view, name), format.Width(f))
		s.SetText(ValueSlot(view, name), p.Ratio(f, 1))
	}

	s.SetText(Name(view, SlotCompound), p.Signed(t.Sentiment.Compound, 3))

	container := Name(view, SlotTopWords)
	s.ClearItems(container)
	for _, w := range head(t.TopWords, opts.Limit) {
		s.AppendItem(container, Item{Label: w.Word, Value: p.Count(w.Count)})
	}
}

// PopulateComparison writes the overlap statistics and draws the chart.
func PopulateComparison(s Surface, c analysis.ComparisonStats, opts Options) {
	opts = opts.withDefaults()
	p := opts.Printer

	s.SetText(SlotOverlap, p.Percent(c.OverlapPercentage, 2))
	s.SetText(SlotSummary, Summary(c, opts.Names, p))

	chart.RenderOverlap(s.Canvas(SlotVenn), c, opts.Names, p)

	s.ClearItems(SlotSharedWords)
	for _, w := range head(c.TopSharedWords, opts.Limit) {
		s.AppendItem(SlotSharedWords, Item{Label: w.Word, Value: p.Count(w.CombinedCount)})
	}

	s.ClearItems(SlotUniqueFirst)
	for _, w := range head(c.TopUniqueFirst, opts.Limit) {
		s.AppendItem(SlotUniqueFirst, Item{Label: w})
	}
	s.ClearItems(SlotUniqueSecond)
	for _, w := range head(c.TopUniqueSecond, opts.Limit) {
		s.AppendItem(SlotUniqueSecond, Item{Label: w})
	}
}

// Summary composes "S shared words • A unique to First • B unique to Second".
func Summary(c analysis.ComparisonStats, names chart.Names, p *format.Printer) string {
	return p.Count(c.TotalSharedWords) + " shared words • " +
		p.Count(c.UniqueToFirst) + " unique to " + names.First + " • " +
		p.Count(c.UniqueToSecond) + " unique to " + names.Second
}

func head[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

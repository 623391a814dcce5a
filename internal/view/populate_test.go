package view

import (
	"fmt"
	"math"
	"testing"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/chart"
	"github.com/ziadkadry99/plantlore/internal/format"
)

var testOpts = Options{
	Printer:    format.English(),
	Names:      chart.Names{First: "Folkard", Second: "Shakespeare"},
	FirstView:  "folkard",
	SecondView: "shakespeare",
}

func sampleDocument() *analysis.Document {
	return &analysis.Document{
		Texts: []analysis.TextStats{
			{
				Title:            "Plant Lore, Legends, and Lyrics",
				Author:           "Richard Folkard, Jun.",
				TotalWords:       150000,
				UniqueWords:      12000,
				LexicalDiversity: 0.08,
				Sentiment:        analysis.SentimentBreakdown{Positive: 0.2, Negative: 0.1, Neutral: 0.7, Compound: 0.15},
				TopWords:         []analysis.WordCount{{Word: "rose", Count: 500}},
			},
			{
				TotalWords:       90000,
				UniqueWords:      9000,
				LexicalDiversity: 0.1,
				Sentiment:        analysis.SentimentBreakdown{Positive: 0.1, Negative: 0.05, Neutral: 0.85, Compound: -0.2},
			},
		},
		Comparison: analysis.ComparisonStats{
			OverlapPercentage: 33.33,
			TotalSharedWords:  2000,
			UniqueToFirst:     5000,
			UniqueToSecond:    3000,
			TopSharedWords:    []analysis.SharedWord{{Word: "rose", CombinedCount: 1200}},
		},
		Metadata: analysis.Metadata{WordcloudImages: map[string]string{"folkard": "wordcloud_folkard.png"}},
	}
}

func TestPopulateAllWritesEverySlotOnce(t *testing.T) {
	page := NewPage()
	PopulateAll(page, sampleDocument(), testOpts)

	var slots []string
	slots = append(slots, TextSlots("folkard")...)
	slots = append(slots, TextSlots("shakespeare")...)
	slots = append(slots, ComparisonSlots()...)
	for _, slot := range slots {
		if got := page.Writes(slot); got != 1 {
			t.Errorf("slot %s written %d times, want 1", slot, got)
		}
	}
	if !page.HasCanvas(SlotVenn) {
		t.Error("venn diagram was not drawn")
	}
	if page.Text("folkard-wordcloud") != "wordcloud_folkard.png" {
		t.Errorf("wordcloud slot = %q", page.Text("folkard-wordcloud"))
	}
	if page.Writes("shakespeare-wordcloud") != 0 {
		t.Error("no wordcloud slot should be written without metadata")
	}
}

func TestPopulateTextEndToEnd(t *testing.T) {
	page := NewPage()
	PopulateAll(page, sampleDocument(), testOpts)

	wantText := map[string]string{
		"folkard-title":             "Plant Lore, Legends, and Lyrics",
		"folkard-total-words":       "150,000",
		"folkard-unique-words":      "12,000",
		"folkard-lexical-diversity": "8.00%",
		"folkard-positive-value":    "20.0%",
		"folkard-negative-value":    "10.0%",
		"folkard-neutral-value":     "70.0%",
		"folkard-compound":          "0.150",
		"shakespeare-compound":      "-0.200",
	}
	for slot, want := range wantText {
		if got := page.Text(slot); got != want {
			t.Errorf("%s = %q, want %q", slot, got, want)
		}
	}
	if got := page.Width("folkard-positive-bar"); got != 20 {
		t.Errorf("positive bar width = %v, want 20", got)
	}

	items := page.Items("folkard-top-words")
	if len(items) != 1 || items[0].String() != "rose — 500" {
		t.Errorf("top words = %v, want [rose — 500]", items)
	}
}

func TestSentimentWidthMatchesLabel(t *testing.T) {
	p := format.English()
	for _, f := range []float64{0, 0.05, 0.2, 0.333, 0.47, 0.9, 1} {
		page := NewPage()
		stats := analysis.TextStats{Sentiment: analysis.SentimentBreakdown{Positive: f, Negative: f, Neutral: f}}
		PopulateText(page, "v", stats, testOpts)

		for _, s := range Sentiments {
			if got := page.Width(BarSlot("v", s)); got != f*100 {
				t.Errorf("%s width for %v = %v, want %v", s, f, got, f*100)
			}
			want := p.Signed(math.Round(f*1000)/10, 1) + "%"
			if got := page.Text(ValueSlot("v", s)); got != want {
				t.Errorf("%s label for %v = %q, want %q", s, f, got, want)
			}
		}
	}
}

func TestListTruncationAndOrder(t *testing.T) {
	var words []analysis.WordCount
	var shared []analysis.SharedWord
	for i := 0; i < 45; i++ {
		// Deliberately not sorted by count: order must be preserved as given.
		words = append(words, analysis.WordCount{Word: fmt.Sprintf("w%02d", i), Count: i % 7})
		shared = append(shared, analysis.SharedWord{Word: fmt.Sprintf("s%02d", i), CombinedCount: 100 - i%5})
	}

	page := NewPage()
	PopulateText(page, "v", analysis.TextStats{TopWords: words}, testOpts)
	PopulateComparison(page, analysis.ComparisonStats{TopSharedWords: shared}, testOpts)

	got := page.Items("v-top-words")
	if len(got) != 30 {
		t.Fatalf("top words = %d, want 30", len(got))
	}
	for i, item := range got {
		if item.Label != words[i].Word {
			t.Errorf("top words[%d] = %q, want %q", i, item.Label, words[i].Word)
		}
	}

	gotShared := page.Items(SlotSharedWords)
	if len(gotShared) != 30 {
		t.Fatalf("shared words = %d, want 30", len(gotShared))
	}
	for i, item := range gotShared {
		if item.Label != shared[i].Word {
			t.Errorf("shared[%d] = %q, want %q", i, item.Label, shared[i].Word)
		}
	}
}

func TestShortListsRenderFully(t *testing.T) {
	page := NewPage()
	words := []analysis.WordCount{{Word: "oak", Count: 3}, {Word: "ash", Count: 2}}
	PopulateText(page, "v", analysis.TextStats{TopWords: words}, testOpts)

	if got := page.Items("v-top-words"); len(got) != 2 {
		t.Errorf("items = %v, want 2 entries", got)
	}

	empty := NewPage()
	PopulateText(empty, "v", analysis.TextStats{}, testOpts)
	if got := empty.Items("v-top-words"); len(got) != 0 {
		t.Errorf("items = %v, want none", got)
	}
}

func TestRepopulateDoesNotDuplicateItems(t *testing.T) {
	page := NewPage()
	doc := sampleDocument()
	PopulateComparison(page, doc.Comparison, testOpts)
	PopulateComparison(page, doc.Comparison, testOpts)

	if got := page.Items(SlotSharedWords); len(got) != 1 {
		t.Errorf("shared words after re-populate = %d, want 1", len(got))
	}
	if got := len(page.Canvas(SlotVenn).Circles()); got != 2 {
		t.Errorf("circles after re-populate = %d, want 2", got)
	}
}

func TestComparisonSummary(t *testing.T) {
	page := NewPage()
	PopulateComparison(page, sampleDocument().Comparison, testOpts)

	want := "2,000 shared words • 5,000 unique to Folkard • 3,000 unique to Shakespeare"
	if got := page.Text(SlotSummary); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
	if got := page.Text(SlotOverlap); got != "33.33%" {
		t.Errorf("overlap = %q, want 33.33%%", got)
	}

	labels := map[string]string{}
	for _, l := range page.Canvas(SlotVenn).Labels() {
		labels[l.Class] = l.Text
	}
	if labels["venn-count-first"] != "5,000" || labels["venn-count-second"] != "3,000" || labels["venn-count-shared"] != "2,000" {
		t.Errorf("chart counts = %v", labels)
	}
	if labels["venn-shared-label"] != "Shared" {
		t.Errorf("shared label = %q", labels["venn-shared-label"])
	}
}

func TestOutOfRangeValuesRenderAsGiven(t *testing.T) {
	page := NewPage()
	PopulateText(page, "v", analysis.TextStats{TotalWords: -5, LexicalDiversity: 1.5}, testOpts)

	if got := page.Text("v-total-words"); got != "-5" {
		t.Errorf("total words = %q, want -5", got)
	}
	if got := page.Text("v-lexical-diversity"); got != "150.00%" {
		t.Errorf("diversity = %q, want 150.00%%", got)
	}
}

func TestItemString(t *testing.T) {
	if got := (Item{Label: "rose", Value: "500"}).String(); got != "rose — 500" {
		t.Errorf("got %q", got)
	}
	if got := (Item{Label: "mandrake"}).String(); got != "mandrake" {
		t.Errorf("got %q", got)
	}
}

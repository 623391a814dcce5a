package view

// Slot name suffixes for a single-text view. Full slot names are
// "<view>-<suffix>", e.g. "folkard-total-words".
const (
	SlotTitle            = "title"
	SlotAuthor           = "author"
	SlotTotalWords       = "total-words"
	SlotUniqueWords      = "unique-words"
	SlotLexicalDiversity = "lexical-diversity"
	SlotCompound         = "compound"
	SlotTopWords         = "top-words"
	SlotWordcloud        = "wordcloud"
)

// Sentiment fractions rendered as bars, in display order.
var Sentiments = []string{"positive", "negative", "neutral"}

// Comparison view slots.
const (
	SlotOverlap      = "comparison-overlap"
	SlotSummary      = "comparison-summary"
	SlotSharedWords  = "comparison-shared-words"
	SlotUniqueFirst  = "comparison-unique-first"
	SlotUniqueSecond = "comparison-unique-second"
	SlotVenn         = "venn-diagram"
)

// Name joins a view id and a slot suffix.
func Name(view, suffix string) string { return view + "-" + suffix }

// BarSlot is the width slot of a sentiment bar.
func BarSlot(view, sentiment string) string { return view + "-" + sentiment + "-bar" }

// ValueSlot is the label slot of a sentiment bar.
func ValueSlot(view, sentiment string) string { return view + "-" + sentiment + "-value" }

// TextSlots lists every slot PopulateText writes for view.
func TextSlots(view string) []string {
	slots := []string{
		Name(view, SlotTitle),
		Name(view, SlotAuthor),
		Name(view, SlotTotalWords),
		Name(view, SlotUniqueWords),
		Name(view, SlotLexicalDiversity),
	}
	for _, s := range Sentiments {
		slots = append(slots, BarSlot(view, s), ValueSlot(view, s))
	}
	return append(slots, Name(view, SlotCompound), Name(view, SlotTopWords))
}

// ComparisonSlots lists every slot PopulateComparison writes, excluding
// the chart canvas.
func ComparisonSlots() []string {
	return []string{SlotOverlap, SlotSummary, SlotSharedWords, SlotUniqueFirst, SlotUniqueSecond}
}

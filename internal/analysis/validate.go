package analysis

import "fmt"

// Validate checks the document's shape: exactly two text objects and a
// comparison object. Documents failing this check are rejected regardless
// of strictness.
func (d *Document) Validate() error {
	if len(d.Texts) != 2 {
		return &ValidationError{Problems: []string{fmt.Sprintf("texts must contain exactly 2 entries, got %d", len(d.Texts))}}
	}
	var problems []string
	for _, i := range d.shape.nullTexts {
		problems = append(problems, fmt.Sprintf("texts[%d] is null", i))
	}
	if d.shape.missingComparison {
		problems = append(problems, "comparison is missing or null")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Problems lists missing fields and out-of-range values. An empty result
// means every required field was present, every count is non-negative and
// every ratio lies in its documented range.
func (d *Document) Problems() []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, f := range d.shape.missingFields {
		add("%s is missing", f)
	}

	for i, t := range d.Texts {
		field := fmt.Sprintf("texts[%d]", i)
		if t.TotalWords < 0 {
			add("%s.total_words is negative (%d)", field, t.TotalWords)
		}
		if t.UniqueWords < 0 {
			add("%s.unique_words is negative (%d)", field, t.UniqueWords)
		}
		if t.UniqueWords > t.TotalWords {
			add("%s.unique_words (%d) exceeds total_words (%d)", field, t.UniqueWords, t.TotalWords)
		}
		if !unit(t.LexicalDiversity) {
			add("%s.lexical_diversity %v outside [0, 1]", field, t.LexicalDiversity)
		}
		s := t.Sentiment
		for _, f := range []struct {
			name string
			v    float64
		}{{"positive", s.Positive}, {"negative", s.Negative}, {"neutral", s.Neutral}} {
			if !unit(f.v) {
				add("%s.sentiment.%s %v outside [0, 1]", field, f.name, f.v)
			}
		}
		if s.Compound < -1 || s.Compound > 1 {
			add("%s.sentiment.compound %v outside [-1, 1]", field, s.Compound)
		}
		for j, w := range t.TopWords {
			if w.Count < 0 {
				add("%s.top_words[%d] %q has negative count", field, j, w.Word)
			}
		}
	}

	c := d.Comparison
	if c.OverlapPercentage < 0 || c.OverlapPercentage > 100 {
		add("comparison.overlap_percentage %v outside [0, 100]", c.OverlapPercentage)
	}
	for _, f := range []struct {
		name string
		v    int
	}{{"total_shared_words", c.TotalSharedWords}, {"unique_to_first", c.UniqueToFirst}, {"unique_to_second", c.UniqueToSecond}} {
		if f.v < 0 {
			add("comparison.%s is negative (%d)", f.name, f.v)
		}
	}
	for j, w := range c.TopSharedWords {
		if w.CombinedCount < 0 {
			add("comparison.top_shared_words[%d] %q has negative count", j, w.Word)
		}
	}

	return problems
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

// Package analysis holds the lexical-analysis document produced by the
// upstream distant-reading pipeline and loads it from disk or over HTTP.
package analysis

import "encoding/json"

// Document is the full analysis payload: statistics for exactly two texts
// and their comparison. Texts are positional: index 0 is the first corpus,
// index 1 the second. A Document is never mutated after Load returns.
type Document struct {
	Texts      []TextStats     `json:"texts"`
	Comparison ComparisonStats `json:"comparison"`
	Metadata   Metadata        `json:"metadata"`

	// Raw holds the bytes as fetched, for re-serving the document unchanged.
	Raw []byte `json:"-"`

	// shape is filled by Decode; documents built in code have none.
	shape shape
}

// First returns the statistics of the first corpus.
func (d *Document) First() TextStats { return d.Texts[0] }

// Second returns the statistics of the second corpus.
func (d *Document) Second() TextStats { return d.Texts[1] }

// TextStats summarizes one text.
type TextStats struct {
	Title            string             `json:"title,omitempty"`
	Author           string             `json:"author,omitempty"`
	TotalWords       int                `json:"total_words"`
	UniqueWords      int                `json:"unique_words"`
	LexicalDiversity float64            `json:"lexical_diversity"`
	Sentiment        SentimentBreakdown `json:"sentiment"`
	TopWords         []WordCount        `json:"top_words"`
}

// SentimentBreakdown is a VADER-style polarity breakdown.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// WordCount is a word and how often it occurs.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SharedWord is a word present in both texts with its combined frequency.
type SharedWord struct {
	Word          string `json:"word"`
	CombinedCount int    `json:"combined_count"`
}

// ComparisonStats describes the vocabulary overlap between the two texts.
type ComparisonStats struct {
	OverlapPercentage float64      `json:"overlap_percentage"`
	TotalSharedWords  int          `json:"total_shared_words"`
	UniqueToFirst     int          `json:"unique_to_first"`
	UniqueToSecond    int          `json:"unique_to_second"`
	TopSharedWords    []SharedWord `json:"top_shared_words"`
	TopUniqueFirst    []string     `json:"top_unique_first,omitempty"`
	TopUniqueSecond   []string     `json:"top_unique_second,omitempty"`
}

// comparisonWire accepts both the neutral keys and the corpus-named keys
// written by the analysis pipeline.
type comparisonWire struct {
	OverlapPercentage    float64      `json:"overlap_percentage"`
	TotalSharedWords     int          `json:"total_shared_words"`
	UniqueToFirst        *int         `json:"unique_to_first"`
	UniqueToSecond       *int         `json:"unique_to_second"`
	UniqueToFolkard      *int         `json:"unique_to_folkard"`
	UniqueToShakespeare  *int         `json:"unique_to_shakespeare"`
	TopSharedWords       []SharedWord `json:"top_shared_words"`
	TopUniqueFirst       []string     `json:"top_unique_first"`
	TopUniqueSecond      []string     `json:"top_unique_second"`
	TopUniqueFolkard     []string     `json:"top_unique_folkard"`
	TopUniqueShakespeare []string     `json:"top_unique_shakespeare"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ComparisonStats) UnmarshalJSON(data []byte) error {
	var w comparisonWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = ComparisonStats{
		OverlapPercentage: w.OverlapPercentage,
		TotalSharedWords:  w.TotalSharedWords,
		UniqueToFirst:     firstInt(w.UniqueToFirst, w.UniqueToFolkard),
		UniqueToSecond:    firstInt(w.UniqueToSecond, w.UniqueToShakespeare),
		TopSharedWords:    w.TopSharedWords,
		TopUniqueFirst:    firstList(w.TopUniqueFirst, w.TopUniqueFolkard),
		TopUniqueSecond:   firstList(w.TopUniqueSecond, w.TopUniqueShakespeare),
	}
	return nil
}

func firstInt(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstList(lists ...[]string) []string {
	for _, l := range lists {
		if l != nil {
			return l
		}
	}
	return nil
}

// Metadata describes how the analysis was produced.
type Metadata struct {
	AnalysisType     string            `json:"analysis_type,omitempty"`
	SentimentMethod  string            `json:"sentiment_method,omitempty"`
	StopwordsRemoved bool              `json:"stopwords_removed,omitempty"`
	WordcloudImages  map[string]string `json:"wordcloud_images,omitempty"`
}

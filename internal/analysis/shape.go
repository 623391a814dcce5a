package analysis

import (
	"encoding/json"
	"fmt"
)

// shape records which parts of a decoded document were absent or null.
// Absent entries decode to zero values, so they are tracked separately.
type shape struct {
	nullTexts         []int
	missingComparison bool
	missingFields     []string
}

var (
	requiredTextFields = []string{"total_words", "unique_words", "lexical_diversity", "sentiment", "top_words"}

	// Each entry lists accepted aliases for one required comparison field.
	requiredComparisonFields = [][]string{
		{"overlap_percentage"},
		{"total_shared_words"},
		{"unique_to_first", "unique_to_folkard"},
		{"unique_to_second", "unique_to_shakespeare"},
	}
)

func decodeShape(raw []byte) (shape, error) {
	var wire struct {
		Texts      []map[string]json.RawMessage `json:"texts"`
		Comparison map[string]json.RawMessage   `json:"comparison"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return shape{}, err
	}

	var s shape
	for i, t := range wire.Texts {
		if t == nil {
			s.nullTexts = append(s.nullTexts, i)
			continue
		}
		for _, f := range requiredTextFields {
			if !present(t, f) {
				s.missingFields = append(s.missingFields, fmt.Sprintf("texts[%d].%s", i, f))
			}
		}
	}

	if wire.Comparison == nil {
		s.missingComparison = true
		return s, nil
	}
	for _, aliases := range requiredComparisonFields {
		if !present(wire.Comparison, aliases...) {
			s.missingFields = append(s.missingFields, "comparison."+aliases[0])
		}
	}
	return s, nil
}

// present reports whether any of keys is set to a non-null value.
func present(obj map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if v, ok := obj[k]; ok && string(v) != "null" {
			return true
		}
	}
	return false
}

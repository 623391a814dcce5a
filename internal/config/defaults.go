package config

// Views in display order. The first two are bound positionally to
// texts[0] and texts[1] of the analysis document.
const (
	ViewFirst      = "folkard"
	ViewSecond     = "shakespeare"
	ViewComparison = "comparison"
)

// Views lists every navigable view id.
var Views = []string{ViewFirst, ViewSecond, ViewComparison}

// DefaultAssets are the doublestar patterns copied into a generated site.
var DefaultAssets = []string{
	"wordcloud_*.png",
	"images/**/*.png",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis:    "analysis.json",
		OutputDir:   "site",
		AssetsDir:   ".",
		Assets:      append([]string(nil), DefaultAssets...),
		Port:        8080,
		Locale:      "en-US",
		ListLimit:   30,
		DefaultView: ViewFirst,
		LogLevel:    "info",
		Labels: LabelsConfig{
			First:  "Folkard",
			Second: "Shakespeare",
		},
	}
}

// Package format renders analysis numbers for display: grouped integer
// counts and fixed-precision ratios, following the configured locale.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats numbers for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for a BCP 47 locale such as "en-US".
func NewPrinter(locale string) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag)}, nil
}

// English is the Printer used when no locale is configured.
func English() *Printer {
	return &Printer{tag: language.AmericanEnglish, p: message.NewPrinter(language.AmericanEnglish)}
}

// Locale returns the printer's language tag.
func (p *Printer) Locale() string { return p.tag.String() }

// Count renders an integer with thousands separators: 150000 -> "150,000".
func (p *Printer) Count(n int) string {
	return p.p.Sprintf("%d", n)
}

// Ratio renders a 0..1 ratio as a percentage with the given number of
// decimals: Ratio(0.08, 2) -> "8.00%".
func (p *Printer) Ratio(r float64, decimals int) string {
	return p.Percent(r*100, decimals)
}

// Percent renders a value already on the 0..100 scale: Percent(33.33, 2) -> "33.33%".
func (p *Printer) Percent(v float64, decimals int) string {
	return p.p.Sprintf(fixed(decimals)+"%%", v)
}

// Signed renders a scalar with a fixed number of decimals, keeping the sign.
func (p *Printer) Signed(v float64, decimals int) string {
	return p.p.Sprintf(fixed(decimals), v)
}

func fixed(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%%.%df", decimals)
}

// Width returns the bar width, in percent, for a 0..1 fraction.
func Width(f float64) float64 {
	return f * 100
}

package format

import (
	"math"
	"testing"
)

func TestCount(t *testing.T) {
	p := English()
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{2000, "2,000"},
		{12000, "12,000"},
		{150000, "150,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := p.Count(tt.n); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	p := English()
	tests := []struct {
		r        float64
		decimals int
		want     string
	}{
		{0.08, 2, "8.00%"},
		{0.2, 1, "20.0%"},
		{0.7, 1, "70.0%"},
		{0.123, 1, "12.3%"},
		{0, 1, "0.0%"},
		{1, 2, "100.00%"},
	}
	for _, tt := range tests {
		if got := p.Ratio(tt.r, tt.decimals); got != tt.want {
			t.Errorf("Ratio(%v, %d) = %q, want %q", tt.r, tt.decimals, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	p := English()
	if got := p.Percent(33.33, 2); got != "33.33%" {
		t.Errorf("Percent(33.33, 2) = %q", got)
	}
	if got := p.Percent(33.333333, 2); got != "33.33%" {
		t.Errorf("Percent(33.333333, 2) = %q", got)
	}
}

func TestSigned(t *testing.T) {
	p := English()
	tests := []struct {
		v    float64
		want string
	}{
		{0.15, "0.150"},
		{0.9999, "1.000"},
		{-0.25, "-0.250"},
		{0, "0.000"},
	}
	for _, tt := range tests {
		if got := p.Signed(tt.v, 3); got != tt.want {
			t.Errorf("Signed(%v, 3) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestWidthMatchesLabel(t *testing.T) {
	p := English()
	for _, f := range []float64{0, 0.1, 0.2, 0.333, 0.5, 0.7, 0.999, 1} {
		if got := Width(f); got != f*100 {
			t.Errorf("Width(%v) = %v, want %v", f, got, f*100)
		}
		want := p.Signed(math.Round(f*1000)/10, 1) + "%"
		if got := p.Ratio(f, 1); got != want {
			t.Errorf("Ratio(%v, 1) = %q, want %q", f, got, want)
		}
	}
}

func TestNewPrinter(t *testing.T) {
	p, err := NewPrinter("de-DE")
	if err != nil {
		t.Fatalf("NewPrinter: %v", err)
	}
	if got := p.Count(150000); got != "150.000" {
		t.Errorf("German Count(150000) = %q, want %q", got, "150.000")
	}
	if p.Locale() != "de-DE" {
		t.Errorf("Locale() = %q", p.Locale())
	}

	if _, err := NewPrinter("not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}

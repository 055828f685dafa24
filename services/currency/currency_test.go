package currency

import (
	"math"
	"testing"
)

func TestNewConverter_RejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -1, -1505} {
		if _, err := NewConverter(rate); err == nil {
			t.Errorf("NewConverter(%v) expected error, got nil", rate)
		}
	}
	if _, err := NewConverter(1505); err != nil {
		t.Fatalf("NewConverter(1505) unexpected error: %v", err)
	}
}

func TestConverter_Convert(t *testing.T) {
	cv, _ := NewConverter(1500)

	tests := []struct {
		name   string
		amount float64
		from   Code
		to     Code
		want   float64
	}{
		{"identity NGN", 20000, NGN, NGN, 20000},
		{"identity USD", 20, USD, USD, 20},
		{"NGN to USD", 30000, NGN, USD, 20},
		{"USD to NGN", 20, USD, NGN, 30000},
		{"zero amount", 0, NGN, USD, 0},
		{"unsupported source", 100, Code("EUR"), USD, 100},
		{"unsupported target", 100, NGN, Code("EUR"), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cv.Convert(tt.amount, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	rates := []float64{1505, 1000, 73.25, 0.5}
	amounts := []float64{0, 1, 20000, 55000, 123456.78, 0.01}

	for _, rate := range rates {
		cv, err := NewConverter(rate)
		if err != nil {
			t.Fatalf("NewConverter(%v): %v", rate, err)
		}
		for _, a := range amounts {
			back := cv.Convert(cv.Convert(a, NGN, USD), USD, NGN)
			if diff := math.Abs(back - a); diff > 1e-9*math.Max(1, a) {
				t.Errorf("rate %v: round trip of %v drifted to %v", rate, a, back)
			}
		}
	}
}

// NGN renders as a grouped whole number, USD always carries exactly two
// decimal places. The asymmetry is part of the contract.
func TestConverter_Format(t *testing.T) {
	cv, _ := NewConverter(1000)

	tests := []struct {
		name   string
		amount float64
		from   Code
		to     Code
		want   string
	}{
		{"NGN whole", 55000, NGN, NGN, "₦55,000"},
		{"NGN grouped millions", 1234567, NGN, NGN, "₦1,234,567"},
		{"NGN rounds to nearest unit", 1999.6, NGN, NGN, "₦2,000"},
		{"NGN rounds down", 1999.4, NGN, NGN, "₦1,999"},
		{"NGN zero", 0, NGN, NGN, "₦0"},
		{"USD two decimals", 54, USD, USD, "$54.00"},
		{"USD grouped", 1234.5, USD, USD, "$1,234.50"},
		{"NGN converted to USD", 55000, NGN, USD, "$55.00"},
		{"USD converted to NGN", 20, USD, NGN, "₦20,000"},
		{"unknown target renders bare", 100, NGN, Code("EUR"), "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cv.Format(tt.amount, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Format(%v, %s, %s) = %q, want %q", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConverter_FormatRange(t *testing.T) {
	cv, _ := NewConverter(1000)

	tests := []struct {
		name string
		min  float64
		max  float64
		to   Code
		want string
	}{
		{"NGN range", 170000, 200000, NGN, "₦170,000 - ₦200,000"},
		{"single bound", 90000, 0, NGN, "₦90,000"},
		{"equal bounds collapse", 90000, 90000, NGN, "₦90,000"},
		{"range in USD", 170000, 200000, USD, "$170.00 - $200.00"},
		{"single bound in USD", 90000, 0, USD, "$90.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cv.FormatRange(tt.min, tt.max, tt.to)
			if got != tt.want {
				t.Errorf("FormatRange(%v, %v, %s) = %q, want %q", tt.min, tt.max, tt.to, got, tt.want)
			}
		})
	}
}

func TestCode_Other(t *testing.T) {
	if NGN.Other() != USD || USD.Other() != NGN {
		t.Error("Other should flip between NGN and USD")
	}
	if Code("EUR").Other() != USD {
		t.Error("Other on an unknown code should fall back to USD (mirror of the NGN default)")
	}
}

package currency

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Code is a display currency. Only NGN and USD are recognized; using a typed
// string keeps invalid values out of the core at compile time, with a Valid
// check at the few boundaries that accept raw input.
type Code string

const (
	NGN Code = "NGN"
	USD Code = "USD"
)

// DefaultCode is the display currency a fresh session starts with.
const DefaultCode = NGN

func (c Code) Valid() bool {
	return c == NGN || c == USD
}

// Other returns the opposite display currency.
func (c Code) Other() Code {
	if c == USD {
		return NGN
	}
	return USD
}

// Converter converts and formats amounts with a single NGN-per-USD exchange
// rate fixed at startup.
type Converter struct {
	rate float64
}

// NewConverter builds a Converter. The rate is units of NGN per 1 USD and
// must be positive.
func NewConverter(rate float64) (*Converter, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("invalid exchange rate %v: must be positive", rate)
	}
	return &Converter{rate: rate}, nil
}

// Rate returns the configured NGN-per-USD rate.
func (cv *Converter) Rate() float64 {
	return cv.rate
}

// Convert converts amount between NGN and USD. Same-currency conversion is
// the identity, and any pair outside NGN/USD degrades to returning the amount
// unchanged. No rounding happens here; rounding is a formatting concern.
func (cv *Converter) Convert(amount float64, from, to Code) float64 {
	switch {
	case from == to:
		return amount
	case from == NGN && to == USD:
		return amount / cv.rate
	case from == USD && to == NGN:
		return amount * cv.rate
	default:
		return amount
	}
}

// Format converts amount and renders it with a currency glyph. NGN amounts
// are rounded to the nearest whole naira and grouped with thousands
// separators; USD amounts always carry exactly two decimal places. The
// asymmetry is contractual.
func (cv *Converter) Format(amount float64, from, to Code) string {
	v := cv.Convert(amount, from, to)
	switch to {
	case USD:
		return "$" + humanize.FormatFloat("#,###.##", v)
	case NGN:
		return "₦" + humanize.Comma(int64(math.Round(v)))
	default:
		return humanize.FormatFloat("#,###.##", v)
	}
}

// FormatRange renders a normalized NGN price range in the target currency,
// converting each bound independently. A range with no upper bound renders as
// a single figure.
func (cv *Converter) FormatRange(minNGN, maxNGN float64, to Code) string {
	if maxNGN <= 0 || maxNGN == minNGN {
		return cv.Format(minNGN, NGN, to)
	}
	return cv.Format(minNGN, NGN, to) + " - " + cv.Format(maxNGN, NGN, to)
}

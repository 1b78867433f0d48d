package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberStyle defines the separators used when rendering a number.
// Styles without a locale are rendered as en-US and then re-separated.
type NumberStyle struct {
	Thousand string
	Decimal  string

	locale language.Tag
}

var (
	// StyleEnUS groups as 1,234,567.89
	StyleEnUS = NumberStyle{Thousand: ",", Decimal: ".", locale: language.AmericanEnglish}
	// StyleViVN groups as 1.234.567,89
	StyleViVN = NumberStyle{Thousand: ".", Decimal: ",", locale: language.Vietnamese}
)

var enUSPrinter = message.NewPrinter(language.AmericanEnglish)

func (s NumberStyle) render(v float64, minFrac, maxFrac int) string {
	formatted := number.Decimal(v, number.MinFractionDigits(minFrac), number.MaxFractionDigits(maxFrac))
	if s.locale != language.Und {
		return message.NewPrinter(s.locale).Sprint(formatted)
	}
	out := enUSPrinter.Sprint(formatted)
	return strings.NewReplacer(",", s.Thousand, ".", s.Decimal).Replace(out)
}

// FormatNumber renders amount with between minFrac and maxFrac fraction digits.
// The value is rounded half away from zero to maxFrac digits, then trailing zeros
// are trimmed down to minFrac. Non-finite values render as zero.
// Example: 0.000041 with (2, 8) and StyleEnUS returns "0.000041"
// Example: 1234.5 with (2, 8) and StyleViVN returns "1.234,50"
func FormatNumber(amount float64, minFrac, maxFrac int, style NumberStyle) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return FormatDecimal(decimal.NewFromFloat(amount), minFrac, maxFrac, style)
}

// FormatDecimal is FormatNumber for decimal values.
func FormatDecimal(amount decimal.Decimal, minFrac, maxFrac int, style NumberStyle) string {
	if minFrac < 0 {
		minFrac = 0
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	rounded := amount.Round(int32(maxFrac)).InexactFloat64()
	return style.render(rounded, minFrac, maxFrac)
}

// IsIntegral reports whether v has no fractional part.
func IsIntegral(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

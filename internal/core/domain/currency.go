package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
)

// DefaultUnitCurrency is the hub currency of the built-in rate table.
const DefaultUnitCurrency = "VND"

// CurrencyRate holds the two fixed conversion factors of a currency against the unit currency.
// Both directions are stored so that conversions never divide.
type CurrencyRate struct {
	Code     string  `json:"code" mapstructure:"code"`
	PerUnit  float64 `json:"perUnit" mapstructure:"per_unit"`   // 1 unit = PerUnit of Code
	UnitsPer float64 `json:"unitsPer" mapstructure:"units_per"` // 1 Code = UnitsPer units
}

// CurrencyRateTable is an immutable mapping from currency code to its CurrencyRate.
type CurrencyRateTable struct {
	unit  string
	rates map[string]CurrencyRate
}

// NewCurrencyRateTable validates rates and builds a table around unit.
// A missing UnitsPer is derived from PerUnit. The unit currency is added when absent.
func NewCurrencyRateTable(unit string, rates []CurrencyRate) (*CurrencyRateTable, error) {
	unit = NormalizeCurrencyCode(unit)
	if !IsCurrencyCode(unit) {
		return nil, fmt.Errorf("%w: unit currency %q must be a 3 letter code", apperrors.ErrValidation, unit)
	}

	table := &CurrencyRateTable{
		unit:  unit,
		rates: make(map[string]CurrencyRate, len(rates)+1),
	}
	for _, rate := range rates {
		rate.Code = NormalizeCurrencyCode(rate.Code)
		if !IsCurrencyCode(rate.Code) {
			return nil, fmt.Errorf("%w: currency code %q must be 3 letters", apperrors.ErrValidation, rate.Code)
		}
		if _, exists := table.rates[rate.Code]; exists {
			return nil, fmt.Errorf("%w: currency %s listed twice", apperrors.ErrValidation, rate.Code)
		}
		if !isPositive(rate.PerUnit) {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, rate.Code)
		}
		if rate.UnitsPer == 0 {
			rate.UnitsPer = 1 / rate.PerUnit
		}
		if !isPositive(rate.UnitsPer) {
			return nil, fmt.Errorf("%w: reciprocal rate for %s must be positive", apperrors.ErrValidation, rate.Code)
		}
		if rate.Code == unit && (rate.PerUnit != 1 || rate.UnitsPer != 1) {
			return nil, fmt.Errorf("%w: unit currency %s must convert 1:1", apperrors.ErrValidation, unit)
		}
		table.rates[rate.Code] = rate
	}
	if _, ok := table.rates[unit]; !ok {
		table.rates[unit] = CurrencyRate{Code: unit, PerUnit: 1, UnitsPer: 1}
	}
	return table, nil
}

// DefaultCurrencyRateTable returns the built-in VND based table.
func DefaultCurrencyRateTable() *CurrencyRateTable {
	table, err := NewCurrencyRateTable(DefaultUnitCurrency, DefaultCurrencyRates())
	if err != nil {
		panic(err)
	}
	return table
}

// DefaultCurrencyRates lists the built-in factors. UnitsPer values are the exact reciprocals
// as published, not recomputed.
func DefaultCurrencyRates() []CurrencyRate {
	return []CurrencyRate{
		{Code: "VND", PerUnit: 1, UnitsPer: 1},
		{Code: "USD", PerUnit: 0.000041, UnitsPer: 24390.243902439024},
		{Code: "EUR", PerUnit: 0.000038, UnitsPer: 26315.78947368421},
		{Code: "JPY", PerUnit: 0.0063, UnitsPer: 158.73015873015873},
		{Code: "GBP", PerUnit: 0.000032, UnitsPer: 31250},
		{Code: "CNY", PerUnit: 0.00030, UnitsPer: 3333.3333333333335},
	}
}

// Unit returns the hub currency code.
func (t *CurrencyRateTable) Unit() string { return t.unit }

// Lookup returns the rate entry for code.
func (t *CurrencyRateTable) Lookup(code string) (CurrencyRate, bool) {
	rate, ok := t.rates[NormalizeCurrencyCode(code)]
	return rate, ok
}

// Codes returns the supported codes, unit currency first, then alphabetical.
func (t *CurrencyRateTable) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		if code != t.unit {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return append([]string{t.unit}, codes...)
}

// Rates returns a copy of all entries in Codes order.
func (t *CurrencyRateTable) Rates() []CurrencyRate {
	codes := t.Codes()
	rates := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rates = append(rates, t.rates[code])
	}
	return rates
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether code is made of exactly three ASCII letters.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

package dto

import "github.com/SscSPs/money_rates_app/internal/core/domain"

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	Code     string  `json:"code"`
	Symbol   string  `json:"symbol"`
	Fraction int     `json:"fraction"`
	PerUnit  float64 `json:"perUnit"`
	UnitsPer float64 `json:"unitsPer"`
	IsUnit   bool    `json:"isUnit"`
}

// ListCurrenciesResponse wraps the supported currencies.
type ListCurrenciesResponse struct {
	UnitCurrency string             `json:"unitCurrency"`
	Currencies   []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a domain.SupportedCurrency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.SupportedCurrency) CurrencyResponse {
	return CurrencyResponse{
		Code:     c.Code,
		Symbol:   c.Symbol,
		Fraction: c.Fraction,
		PerUnit:  c.PerUnit,
		UnitsPer: c.UnitsPer,
		IsUnit:   c.IsUnit,
	}
}

// ToListCurrenciesResponse converts supported currencies to ListCurrenciesResponse DTO
func ToListCurrenciesResponse(unit string, currencies []domain.SupportedCurrency) ListCurrenciesResponse {
	resp := ListCurrenciesResponse{
		UnitCurrency: unit,
		Currencies:   make([]CurrencyResponse, len(currencies)),
	}
	for i, c := range currencies {
		resp.Currencies[i] = ToCurrencyResponse(c)
	}
	return resp
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

func TestDefaultCurrencyRateTable(t *testing.T) {
	table := domain.DefaultCurrencyRateTable()

	assert.Equal(t, "VND", table.Unit())
	assert.Equal(t, []string{"VND", "CNY", "EUR", "GBP", "JPY", "USD"}, table.Codes())

	usd, ok := table.Lookup(" usd ")
	require.True(t, ok)
	assert.Equal(t, 0.000041, usd.PerUnit)
	assert.Equal(t, 24390.243902439024, usd.UnitsPer)

	_, ok = table.Lookup("XYZ")
	assert.False(t, ok)
}

func TestNewCurrencyRateTable(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		rates   []domain.CurrencyRate
		wantErr bool
	}{
		{"derives reciprocal and adds unit", "usd", []domain.CurrencyRate{{Code: "EUR", PerUnit: 0.5}}, false},
		{"invalid unit", "US", nil, true},
		{"invalid code", "VND", []domain.CurrencyRate{{Code: "EURO", PerUnit: 1}}, true},
		{"duplicate code", "VND", []domain.CurrencyRate{{Code: "EUR", PerUnit: 1}, {Code: "eur", PerUnit: 2}}, true},
		{"zero rate", "VND", []domain.CurrencyRate{{Code: "EUR"}}, true},
		{"negative reciprocal", "VND", []domain.CurrencyRate{{Code: "EUR", PerUnit: 1, UnitsPer: -1}}, true},
		{"unit not 1:1", "VND", []domain.CurrencyRate{{Code: "VND", PerUnit: 2, UnitsPer: 0.5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := domain.NewCurrencyRateTable(tt.unit, tt.rates)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "USD", table.Unit())
			assert.Equal(t, []string{"USD", "EUR"}, table.Codes())
			eur, _ := table.Lookup("EUR")
			assert.Equal(t, 2.0, eur.UnitsPer)
			unit, _ := table.Lookup("USD")
			assert.Equal(t, domain.CurrencyRate{Code: "USD", PerUnit: 1, UnitsPer: 1}, unit)
		})
	}
}

func TestCurrencyRateTable_RatesInCodesOrder(t *testing.T) {
	rates := domain.DefaultCurrencyRateTable().Rates()

	require.Len(t, rates, 6)
	assert.Equal(t, "VND", rates[0].Code)
	assert.Equal(t, "USD", rates[5].Code)
}

func TestIsCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsCurrencyCode("VND"))
	assert.True(t, domain.IsCurrencyCode("usd"))
	assert.False(t, domain.IsCurrencyCode("US"))
	assert.False(t, domain.IsCurrencyCode("U5D"))
	assert.False(t, domain.IsCurrencyCode(""))
	assert.Equal(t, "EUR", domain.NormalizeCurrencyCode(" eur\n"))
}

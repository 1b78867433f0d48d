package services

import (
	"context"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for the live USD/VND rate.
// None of these operations fail: degraded paths resolve to fallback values.
type ExchangeRateReaderSvc interface {
	// GetRate returns the best-known snapshot, from cache, remote source or fallback.
	GetRate(ctx context.Context) domain.RateSnapshot

	// GetHistory returns exactly days daily samples from local history, oldest first.
	GetHistory(ctx context.Context, days int) []domain.HistoryPoint

	// FetchRemoteHistory is like GetHistory but queries the remote source for days missing locally.
	FetchRemoteHistory(ctx context.Context, days int) []domain.HistoryPoint
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}

// ConversionSvc defines conversions over the static currency rate table.
type ConversionSvc interface {
	// Rate returns the factor converting one unit of from into to. Unsupported codes yield 1.
	Rate(from, to string) float64

	// Convert returns amount expressed in to, unrounded.
	Convert(amount float64, from, to string) float64

	// Supports reports whether code is present in the rate table.
	Supports(code string) bool

	// Preview derives rate and converted amount for a wallet conversion.
	Preview(conv domain.WalletConversionContext) domain.ConversionPreview
}

// MoneyFormatterSvc defines currency-aware display formatting.
type MoneyFormatterSvc interface {
	FormatMoney(amount float64, currency string) string
	FormatConvertedBalance(amount float64, currency string) string
	FormatExchangeRate(rate float64, toCurrency string) string
}

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all supported currencies.
	ListCurrencies() []domain.SupportedCurrency

	// UnitCurrency returns the hub currency of the rate table.
	UnitCurrency() string
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionSvc
	MoneyFormatterSvc
	CurrencyReaderSvc
}

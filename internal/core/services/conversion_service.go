package services

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/utils"
)

// Display bounds for formatted amounts.
const (
	maxDisplayFraction = 8
	crossRatePlaces    = 8
)

// conversionService implements the ConversionSvcFacade interface over a static rate table
type conversionService struct {
	table *domain.CurrencyRateTable
}

// NewConversionService creates a conversion service. A nil table selects the built-in one.
func NewConversionService(table *domain.CurrencyRateTable) portssvc.ConversionSvcFacade {
	if table == nil {
		table = domain.DefaultCurrencyRateTable()
	}
	return &conversionService{table: table}
}

// Ensure conversionService implements the ConversionSvcFacade interface
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Rate returns the factor converting one unit of from into to.
// Empty or equal codes, as well as unsupported codes, yield 1.
func (s *conversionService) Rate(from, to string) float64 {
	rate, err := s.lookupRate(from, to)
	if err != nil {
		return 1
	}
	return rate
}

// lookupRate resolves the conversion factor and reports unsupported codes.
func (s *conversionService) lookupRate(from, to string) (float64, error) {
	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	if from == "" || to == "" || from == to {
		return 1, nil
	}

	fromRate, ok := s.table.Lookup(from)
	if !ok {
		return 1, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, from)
	}
	toRate, ok := s.table.Lookup(to)
	if !ok {
		return 1, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, to)
	}

	unit := s.table.Unit()
	switch {
	case from == unit:
		return toRate.PerUnit, nil
	case to == unit:
		return fromRate.UnitsPer, nil
	default:
		cross := decimal.NewFromFloat(fromRate.UnitsPer).Mul(decimal.NewFromFloat(toRate.PerUnit))
		return cross.Round(crossRatePlaces).InexactFloat64(), nil
	}
}

// Convert returns amount expressed in to. The result is not rounded.
func (s *conversionService) Convert(amount float64, from, to string) float64 {
	return amount * s.Rate(from, to)
}

// Supports reports whether code is present in the rate table.
func (s *conversionService) Supports(code string) bool {
	_, ok := s.table.Lookup(code)
	return ok
}

// Preview derives the rate, converted amount and display strings of a wallet conversion.
func (s *conversionService) Preview(conv domain.WalletConversionContext) domain.ConversionPreview {
	from := domain.NormalizeCurrencyCode(conv.FromCurrency)
	to := domain.NormalizeCurrencyCode(conv.ToCurrency)

	rate, err := s.lookupRate(from, to)
	converted := conv.Amount * rate

	return domain.ConversionPreview{
		FromCurrency:       from,
		ToCurrency:         to,
		Amount:             conv.Amount,
		Rate:               rate,
		ConvertedAmount:    converted,
		Supported:          err == nil,
		FormattedAmount:    s.FormatMoney(conv.Amount, from),
		FormattedConverted: s.FormatConvertedBalance(converted, to),
		FormattedRate:      s.FormatExchangeRate(rate, to),
	}
}

// FormatMoney renders amount in the display convention of currency.
// Example: 1000000 VND returns "1.000.000 VND"
// Example: 1234.5 USD returns "$1,234.50"
// Example: 100 EUR returns "100,00 EUR"
func (s *conversionService) FormatMoney(amount float64, currency string) string {
	currency = displayCurrency(currency)
	amount = finiteOrZero(amount)

	switch currency {
	case "USD":
		if utils.IsIntegral(amount) {
			return "$" + utils.FormatNumber(amount, 0, 0, utils.StyleEnUS)
		}
		return "$" + utils.FormatNumber(amount, 2, maxDisplayFraction, utils.StyleEnUS)
	case domain.DefaultUnitCurrency:
		if utils.IsIntegral(amount) {
			return utils.FormatNumber(amount, 0, 0, utils.StyleViVN) + " " + currency
		}
		return utils.FormatNumber(amount, 0, maxDisplayFraction, utils.StyleViVN) + " " + currency
	default:
		return utils.FormatNumber(amount, 2, maxDisplayFraction, utils.StyleViVN) + " " + currency
	}
}

// FormatConvertedBalance renders a converted amount keeping up to 8 significant fraction digits
// for every currency.
func (s *conversionService) FormatConvertedBalance(amount float64, currency string) string {
	currency = displayCurrency(currency)
	amount = finiteOrZero(amount)

	if currency == "USD" {
		return "$" + utils.FormatNumber(amount, 0, maxDisplayFraction, utils.StyleEnUS)
	}
	return utils.FormatNumber(amount, 0, maxDisplayFraction, utils.StyleViVN) + " " + currency
}

// FormatExchangeRate renders a bare conversion factor in the grouping of the target currency.
func (s *conversionService) FormatExchangeRate(rate float64, toCurrency string) string {
	style := utils.StyleViVN
	if domain.NormalizeCurrencyCode(toCurrency) == "USD" {
		style = utils.StyleEnUS
	}
	return utils.FormatNumber(finiteOrZero(rate), 0, maxDisplayFraction, style)
}

// ListCurrencies returns the rate table entries with symbol and minor unit digits.
func (s *conversionService) ListCurrencies() []domain.SupportedCurrency {
	rates := s.table.Rates()
	currencies := make([]domain.SupportedCurrency, 0, len(rates))
	for _, rate := range rates {
		symbol, fraction := rate.Code, 2
		if cur := money.GetCurrency(rate.Code); cur != nil {
			symbol, fraction = cur.Grapheme, cur.Fraction
		}
		currencies = append(currencies, domain.SupportedCurrency{
			Code:     rate.Code,
			Symbol:   symbol,
			Fraction: fraction,
			PerUnit:  rate.PerUnit,
			UnitsPer: rate.UnitsPer,
			IsUnit:   rate.Code == s.table.Unit(),
		})
	}
	return currencies
}

// UnitCurrency returns the hub currency of the rate table.
func (s *conversionService) UnitCurrency() string {
	return s.table.Unit()
}

// displayCurrency normalizes a code for display; an empty code is shown as VND.
func displayCurrency(code string) string {
	code = domain.NormalizeCurrencyCode(code)
	if code == "" {
		return domain.DefaultUnitCurrency
	}
	return code
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

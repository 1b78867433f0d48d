package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/core/services"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	service portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.service = services.NewConversionService(domain.DefaultCurrencyRateTable())
}

func (suite *ConversionServiceTestSuite) TestRate_Identity() {
	suite.Equal(1.0, suite.service.Rate("USD", "USD"))
	suite.Equal(1.0, suite.service.Rate("", "USD"))
	suite.Equal(1.0, suite.service.Rate("EUR", ""))
	suite.Equal(1.0, suite.service.Rate(" jpy", "JPY "))
}

func (suite *ConversionServiceTestSuite) TestRate_FromUnitCurrency() {
	suite.Equal(0.000041, suite.service.Rate("VND", "USD"))
	suite.Equal(0.0063, suite.service.Rate("VND", "JPY"))
}

func (suite *ConversionServiceTestSuite) TestRate_ToUnitCurrencyUsesPublishedReciprocal() {
	suite.Equal(24390.243902439024, suite.service.Rate("USD", "VND"))
	suite.Equal(31250.0, suite.service.Rate("gbp", "vnd"))
}

func (suite *ConversionServiceTestSuite) TestRate_CrossRateRoundedToEightPlaces() {
	suite.Equal(0.92682927, suite.service.Rate("USD", "EUR"))
	suite.Equal(1.07894737, suite.service.Rate("EUR", "USD"))
	suite.Equal(0.00507937, suite.service.Rate("JPY", "GBP"))
}

func (suite *ConversionServiceTestSuite) TestRate_UnsupportedCurrencyYieldsOne() {
	suite.Equal(1.0, suite.service.Rate("XYZ", "USD"))
	suite.Equal(1.0, suite.service.Rate("USD", "XYZ"))
	suite.False(suite.service.Supports("XYZ"))
	suite.True(suite.service.Supports("eur"))
}

func (suite *ConversionServiceTestSuite) TestConvert_Unrounded() {
	suite.InDelta(41.0, suite.service.Convert(1000000, "VND", "USD"), 1e-9)
	suite.Equal(2439024.3902439023, suite.service.Convert(100, "USD", "VND"))
	suite.Equal(42.0, suite.service.Convert(42, "XYZ", "USD"))
}

func (suite *ConversionServiceTestSuite) TestConvert_RoundTripWithinTolerance() {
	codes := domain.DefaultCurrencyRateTable().Codes()
	amount := 1234.5
	for _, from := range codes {
		for _, to := range codes {
			back := suite.service.Convert(suite.service.Convert(amount, from, to), to, from)
			suite.InEpsilon(amount, back, 1e-6, "%s -> %s -> %s", from, to, from)
		}
	}
}

func (suite *ConversionServiceTestSuite) TestFormatMoney() {
	cases := []struct {
		amount   float64
		currency string
		expected string
	}{
		{1000000, "VND", "1.000.000 VND"},
		{1234.5, "VND", "1.234,5 VND"},
		{5, "", "5 VND"},
		{0.000041, "USD", "$0.000041"},
		{1234.5, "USD", "$1,234.50"},
		{1000, "usd", "$1,000"},
		{-1000, "USD", "$-1,000"},
		{0.123456789, "USD", "$0.12345679"},
		{100, "EUR", "100,00 EUR"},
		{1234567.891, "EUR", "1.234.567,891 EUR"},
		{math.NaN(), "USD", "$0"},
	}
	for _, tc := range cases {
		suite.Equal(tc.expected, suite.service.FormatMoney(tc.amount, tc.currency), "%v %s", tc.amount, tc.currency)
	}
}

func (suite *ConversionServiceTestSuite) TestFormatConvertedBalance() {
	suite.Equal("$41", suite.service.FormatConvertedBalance(41, "USD"))
	suite.Equal("$1,234.5", suite.service.FormatConvertedBalance(1234.5, "USD"))
	suite.Equal("0,92682927 EUR", suite.service.FormatConvertedBalance(0.92682927, "EUR"))
	suite.Equal("100 EUR", suite.service.FormatConvertedBalance(100, "eur"))
	suite.Equal("1.000.000 VND", suite.service.FormatConvertedBalance(1000000, ""))
}

func (suite *ConversionServiceTestSuite) TestFormatExchangeRate() {
	suite.Equal("0.000041", suite.service.FormatExchangeRate(0.000041, "USD"))
	suite.Equal("24.390,24390244", suite.service.FormatExchangeRate(24390.243902439024, "VND"))
	suite.Equal("1", suite.service.FormatExchangeRate(1, "EUR"))
}

func (suite *ConversionServiceTestSuite) TestPreview_Supported() {
	preview := suite.service.Preview(domain.WalletConversionContext{FromCurrency: "usd", ToCurrency: "VND", Amount: 100})

	suite.Equal("USD", preview.FromCurrency)
	suite.Equal("VND", preview.ToCurrency)
	suite.True(preview.Supported)
	suite.Equal(24390.243902439024, preview.Rate)
	suite.Equal(2439024.3902439023, preview.ConvertedAmount)
	suite.Equal("$100", preview.FormattedAmount)
	suite.Equal("2.439.024,3902439 VND", preview.FormattedConverted)
	suite.Equal("24.390,24390244", preview.FormattedRate)
}

func (suite *ConversionServiceTestSuite) TestPreview_Unsupported() {
	preview := suite.service.Preview(domain.WalletConversionContext{FromCurrency: "XYZ", ToCurrency: "USD", Amount: 10})

	suite.False(preview.Supported)
	suite.Equal(1.0, preview.Rate)
	suite.Equal(10.0, preview.ConvertedAmount)
}

func (suite *ConversionServiceTestSuite) TestListCurrencies() {
	currencies := suite.service.ListCurrencies()

	suite.Require().Len(currencies, 6)
	suite.Equal("VND", currencies[0].Code)
	suite.True(currencies[0].IsUnit)
	suite.Equal(0, currencies[0].Fraction)

	byCode := make(map[string]domain.SupportedCurrency, len(currencies))
	for _, c := range currencies {
		byCode[c.Code] = c
	}
	suite.Equal("$", byCode["USD"].Symbol)
	suite.Equal(2, byCode["USD"].Fraction)
	suite.Equal(0, byCode["JPY"].Fraction)
	suite.Equal(0.000041, byCode["USD"].PerUnit)
	suite.False(byCode["USD"].IsUnit)
	suite.Equal("VND", suite.service.UnitCurrency())
}

func (suite *ConversionServiceTestSuite) TestListCurrencies_UnknownToRegistry() {
	table, err := domain.NewCurrencyRateTable("VND", []domain.CurrencyRate{{Code: "ZZZ", PerUnit: 0.5}})
	suite.Require().NoError(err)

	currencies := services.NewConversionService(table).ListCurrencies()

	suite.Require().Len(currencies, 2)
	suite.Equal("ZZZ", currencies[1].Code)
	suite.Equal("ZZZ", currencies[1].Symbol)
	suite.Equal(2, currencies[1].Fraction)
	suite.Equal(2.0, currencies[1].UnitsPer)
}

func (suite *ConversionServiceTestSuite) TestNilTableUsesDefault() {
	svc := services.NewConversionService(nil)
	suite.Equal(0.000041, svc.Rate("VND", "USD"))
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

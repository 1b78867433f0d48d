package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_rates_app/internal/adapters/kvstore"
	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	"github.com/SscSPs/money_rates_app/internal/core/services"
)

// MockKeyValueStore is a mock implementation of KeyValueStore
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type SettingsServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *kvstore.MemoryStore
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = kvstore.NewMemoryStore(nil)
}

func (suite *SettingsServiceTestSuite) TestDefaults() {
	svc := services.NewSettingsService(suite.store)

	suite.Equal(domain.DateFormatDayMonthYear, svc.GetDateFormat(suite.ctx))
	suite.Equal(domain.DefaultMoneyFormatSettings(), svc.GetMoneyFormat(suite.ctx))
	suite.Equal("space", svc.GetMoneyFormat(suite.ctx).Key)
	suite.Equal(0, svc.GetMoneyFormat(suite.ctx).DecimalDigits)
}

func (suite *SettingsServiceTestSuite) TestDateFormat_RoundTrip() {
	svc := services.NewSettingsService(suite.store)

	suite.Require().NoError(svc.SetDateFormat(suite.ctx, domain.DateFormatISO))

	suite.Equal(domain.DateFormatISO, svc.GetDateFormat(suite.ctx))
	stored, err := suite.store.Get(suite.ctx, services.SettingsKeyDateFormat)
	suite.Require().NoError(err)
	suite.Equal(domain.DateFormatISO, stored)
}

func (suite *SettingsServiceTestSuite) TestDateFormat_InvalidRejected() {
	svc := services.NewSettingsService(suite.store)

	err := svc.SetDateFormat(suite.ctx, "yyyy/dd/MM")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.store.Len())
}

func (suite *SettingsServiceTestSuite) TestDateFormat_UnknownStoredValueReadsDefault() {
	store := kvstore.NewMemoryStore(map[string]string{services.SettingsKeyDateFormat: "garbage"})
	svc := services.NewSettingsService(store)

	suite.Equal(domain.DateFormatDayMonthYear, svc.GetDateFormat(suite.ctx))
}

func (suite *SettingsServiceTestSuite) TestMoneyFormat_RoundTrip() {
	svc := services.NewSettingsService(suite.store)

	suite.Require().NoError(svc.SetMoneyFormat(suite.ctx, "comma", 2))

	settings := svc.GetMoneyFormat(suite.ctx)
	suite.Equal("comma", settings.Key)
	suite.Equal(",", settings.Thousand)
	suite.Equal(".", settings.Decimal)
	suite.Equal(2, settings.DecimalDigits)
}

func (suite *SettingsServiceTestSuite) TestMoneyFormat_InvalidRejected() {
	svc := services.NewSettingsService(suite.store)

	suite.ErrorIs(svc.SetMoneyFormat(suite.ctx, "tilde", 2), apperrors.ErrValidation)
	suite.ErrorIs(svc.SetMoneyFormat(suite.ctx, "dot", -1), apperrors.ErrValidation)
	suite.ErrorIs(svc.SetMoneyFormat(suite.ctx, "dot", 9), apperrors.ErrValidation)
	suite.Equal(0, suite.store.Len())
}

func (suite *SettingsServiceTestSuite) TestMoneyFormat_UnparseableDigitsReadAsZero() {
	store := kvstore.NewMemoryStore(map[string]string{
		services.SettingsKeyMoneyFormat:        "dot",
		services.SettingsKeyMoneyDecimalDigits: "two",
	})
	svc := services.NewSettingsService(store)

	settings := svc.GetMoneyFormat(suite.ctx)
	suite.Equal("dot", settings.Key)
	suite.Equal(0, settings.DecimalDigits)
}

func (suite *SettingsServiceTestSuite) TestStoreFailures() {
	store := new(MockKeyValueStore)
	store.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	store.On("Set", mock.Anything, services.SettingsKeyDateFormat, domain.DateFormatISO).Return(errors.New("connection refused"))
	svc := services.NewSettingsService(store)

	suite.Equal(domain.DateFormatDayMonthYear, svc.GetDateFormat(suite.ctx))
	err := svc.SetDateFormat(suite.ctx, domain.DateFormatISO)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	store.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestFormatAmount() {
	svc := services.NewSettingsService(suite.store)
	comma, _ := domain.FindMoneyFormat("comma")
	dot, _ := domain.FindMoneyFormat("dot")
	space, _ := domain.FindMoneyFormat("space")

	suite.Equal("1,234,567.89", svc.FormatAmount(1234567.891, domain.MoneyFormatSettings{MoneyFormat: comma, DecimalDigits: 2}))
	suite.Equal("1.234.568", svc.FormatAmount(1234567.891, domain.MoneyFormatSettings{MoneyFormat: dot}))
	suite.Equal("1 234 567,891", svc.FormatAmount(1234567.891, domain.MoneyFormatSettings{MoneyFormat: space, DecimalDigits: 3}))
	suite.Equal("1.234.567,89100000", svc.FormatAmount(1234567.891, domain.MoneyFormatSettings{MoneyFormat: dot, DecimalDigits: 12}))
}

func (suite *SettingsServiceTestSuite) TestFormatDate() {
	svc := services.NewSettingsService(suite.store)
	day := time.Date(2025, time.December, 31, 8, 0, 0, 0, time.UTC)

	suite.Equal("31/12/2025", svc.FormatDate(day, domain.DateFormatDayMonthYear))
	suite.Equal("12/31/2025", svc.FormatDate(day, domain.DateFormatMonthDayYear))
	suite.Equal("2025-12-31", svc.FormatDate(day, domain.DateFormatISO))
	suite.Equal("31/12/2025", svc.FormatDate(day, "unknown"))
	suite.Equal("", svc.FormatDate(time.Time{}, domain.DateFormatISO))
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

// SettingsReaderSvc defines read operations for display preferences.
type SettingsReaderSvc interface {
	GetDateFormat(ctx context.Context) string
	GetMoneyFormat(ctx context.Context) domain.MoneyFormatSettings
}

// SettingsWriterSvc defines write operations for display preferences.
type SettingsWriterSvc interface {
	SetDateFormat(ctx context.Context, formatKey string) error
	SetMoneyFormat(ctx context.Context, formatKey string, decimalDigits int) error
}

// SettingsFormatterSvc renders values with stored preferences.
type SettingsFormatterSvc interface {
	FormatDate(t time.Time, formatKey string) string
	FormatAmount(amount float64, settings domain.MoneyFormatSettings) string
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
	SettingsFormatterSvc
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/utils"
)

// Store keys of the display preferences.
const (
	SettingsKeyDateFormat         = "dateFormat"
	SettingsKeyMoneyFormat        = "moneyFormat"
	SettingsKeyMoneyDecimalDigits = "moneyDecimalDigits"
)

// settingsService implements the SettingsSvcFacade interface
type settingsService struct {
	BaseService
	store portsrepo.KeyValueStore
}

// NewSettingsService creates a settings service persisting to store
func NewSettingsService(store portsrepo.KeyValueStore) portssvc.SettingsSvcFacade {
	return &settingsService{store: store}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetDateFormat(ctx context.Context) string {
	value, ok := s.read(ctx, SettingsKeyDateFormat)
	if !ok || !domain.IsDateFormat(value) {
		return domain.DateFormatDayMonthYear
	}
	return value
}

func (s *settingsService) SetDateFormat(ctx context.Context, formatKey string) error {
	if !domain.IsDateFormat(formatKey) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown date format %q", formatKey))
	}
	if err := s.store.Set(ctx, SettingsKeyDateFormat, formatKey); err != nil {
		s.LogError(ctx, err, "Failed to save date format", slog.String("format", formatKey))
		return fmt.Errorf("failed to save date format: %w", err)
	}
	return nil
}

// GetMoneyFormat returns the stored grouping preset and fraction digits.
// Unknown presets read back as the default preset and unparseable digits as 0.
func (s *settingsService) GetMoneyFormat(ctx context.Context) domain.MoneyFormatSettings {
	settings := domain.DefaultMoneyFormatSettings()

	if key, ok := s.read(ctx, SettingsKeyMoneyFormat); ok {
		if format, found := domain.FindMoneyFormat(key); found {
			settings.MoneyFormat = format
		}
	}
	if raw, ok := s.read(ctx, SettingsKeyMoneyDecimalDigits); ok {
		if digits, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && digits >= 0 && digits <= domain.MaxMoneyDecimalDigits {
			settings.DecimalDigits = digits
		}
	}
	return settings
}

func (s *settingsService) SetMoneyFormat(ctx context.Context, formatKey string, decimalDigits int) error {
	if _, found := domain.FindMoneyFormat(formatKey); !found {
		return apperrors.NewValidationError(fmt.Sprintf("unknown money format %q", formatKey))
	}
	if decimalDigits < 0 || decimalDigits > domain.MaxMoneyDecimalDigits {
		return apperrors.NewValidationError(fmt.Sprintf("decimal digits must be between 0 and %d", domain.MaxMoneyDecimalDigits))
	}

	err := errors.Join(
		s.store.Set(ctx, SettingsKeyMoneyFormat, formatKey),
		s.store.Set(ctx, SettingsKeyMoneyDecimalDigits, strconv.Itoa(decimalDigits)),
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to save money format", slog.String("format", formatKey))
		return fmt.Errorf("failed to save money format: %w", err)
	}
	return nil
}

func (s *settingsService) FormatDate(t time.Time, formatKey string) string {
	return domain.FormatDate(t, formatKey)
}

// FormatAmount renders amount with the preset separators and exactly DecimalDigits fraction digits.
// Example: 1234567.891 with comma and 2 digits returns "1,234,567.89"
func (s *settingsService) FormatAmount(amount float64, settings domain.MoneyFormatSettings) string {
	digits := settings.DecimalDigits
	if digits < 0 {
		digits = 0
	}
	if digits > domain.MaxMoneyDecimalDigits {
		digits = domain.MaxMoneyDecimalDigits
	}
	style := utils.NumberStyle{Thousand: settings.Thousand, Decimal: settings.Decimal}
	if style.Decimal == "" {
		style.Decimal = "."
	}
	return utils.FormatNumber(amount, digits, digits, style)
}

// read returns a stored value. Missing keys and store failures both report false.
func (s *settingsService) read(ctx context.Context, key string) (string, bool) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Failed to read setting, using default", slog.String("key", key))
		}
		return "", false
	}
	return value, true
}

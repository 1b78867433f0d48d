package services

import (
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portsclients "github.com/SscSPs/money_rates_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/platform/config"
	"github.com/SscSPs/money_rates_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	source portsclients.RateSource,
	table *domain.CurrencyRateTable,
	rateMetrics *metrics.RateMetrics,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	options := []RateServiceOption{WithRateMetrics(rateMetrics)}
	if cfg != nil {
		options = append(options,
			WithCacheTTL(cfg.RateCacheTTL),
			WithFallbackRate(cfg.RateFallback),
			WithHistoryCap(cfg.RateHistoryCap),
		)
	}

	container.ExchangeRate = NewExchangeRateService(repos.RateStore, source, options...)
	container.Conversion = NewConversionService(table)
	container.Settings = NewSettingsService(repos.SettingsStore)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.ConversionSvcFacade   = (*conversionService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
)

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portsclients "github.com/SscSPs/money_rates_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/platform/metrics"
)

// Defaults of the exchange rate service.
const (
	DefaultFallbackRate = 24500.0
	DefaultCacheTTL     = 5 * time.Minute
	DefaultHistoryCap   = 300
	DefaultHistoryDays  = 7
)

const (
	fallbackOpGetRate = "get_rate"
	fallbackOpHistory = "history"
)

// exchangeRateService implements the ExchangeRateSvcFacade interface
type exchangeRateService struct {
	BaseService
	cache      rateCache
	source     portsclients.RateSource
	metrics    *metrics.RateMetrics
	now        func() time.Time
	ttl        time.Duration
	fallback   float64
	historyCap int
}

// RateServiceOption is a functional option for configuring the exchange rate service
type RateServiceOption func(*exchangeRateService)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) RateServiceOption {
	return func(s *exchangeRateService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCacheTTL sets how long a fetched snapshot is served from cache.
func WithCacheTTL(ttl time.Duration) RateServiceOption {
	return func(s *exchangeRateService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFallbackRate sets the VND per USD rate served when nothing better is known.
func WithFallbackRate(rate float64) RateServiceOption {
	return func(s *exchangeRateService) {
		if isUsableRate(rate) {
			s.fallback = rate
		}
	}
}

// WithHistoryCap bounds the number of persisted history samples.
func WithHistoryCap(limit int) RateServiceOption {
	return func(s *exchangeRateService) {
		if limit > 0 {
			s.historyCap = limit
		}
	}
}

// WithRateMetrics adds metrics collection
func WithRateMetrics(m *metrics.RateMetrics) RateServiceOption {
	return func(s *exchangeRateService) {
		s.metrics = m
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(store portsrepo.KeyValueStore, source portsclients.RateSource, options ...RateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		cache:      rateCache{store: store},
		source:     source,
		now:        func() time.Time { return time.Now().UTC() },
		ttl:        DefaultCacheTTL,
		fallback:   DefaultFallbackRate,
		historyCap: DefaultHistoryCap,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure exchangeRateService implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetRate returns the cached snapshot while it is fresh. Otherwise it fetches the latest
// rate, persists it and returns it. Any fetch failure yields the fallback snapshot, which
// is never persisted.
func (s *exchangeRateService) GetRate(ctx context.Context) domain.RateSnapshot {
	now := s.now().UTC()

	cached, err := s.cache.validSnapshot(ctx, now, s.ttl)
	if err == nil {
		s.metrics.ObserveCacheLookup(true)
		return *cached
	}
	s.metrics.ObserveCacheLookup(false)
	if errors.Is(err, apperrors.ErrCacheMiss) || errors.Is(err, apperrors.ErrCacheExpired) {
		s.LogDebug(ctx, "Exchange rate cache not usable", slog.String("reason", err.Error()))
	} else {
		s.LogWarn(ctx, err, "Ignoring unreadable cached exchange rate")
	}

	rate, err := s.fetchLatest(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to fetch exchange rate, serving fallback", slog.Float64("fallback", s.fallback))
		s.metrics.ObserveFallback(fallbackOpGetRate)
		return domain.FallbackSnapshot(s.fallback, now)
	}

	previous, err := s.cache.previous(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.LogWarn(ctx, err, "Ignoring unreadable previous exchange rate")
		}
		previous = nil
	}

	snapshot := domain.NewRateSnapshot(rate, previous, now)
	if err := s.cache.save(ctx, snapshot, s.historyCap); err != nil {
		s.LogError(ctx, err, "Failed to persist exchange rate")
	}
	s.metrics.SetLastRate(snapshot.VndToUsd)

	s.LogInfo(ctx, "Exchange rate refreshed",
		slog.Float64("vnd_to_usd", snapshot.VndToUsd),
		slog.Float64("change", snapshot.Change))
	return snapshot
}

// GetHistory returns exactly days daily samples, oldest first, using local history only.
// Days without a sample repeat the closest earlier sample, or the fallback rate.
func (s *exchangeRateService) GetHistory(ctx context.Context, days int) []domain.HistoryPoint {
	days = normalizeHistoryDays(days)
	daily := s.dailyHistory(ctx)
	if len(daily) >= days {
		return append([]domain.HistoryPoint(nil), daily[len(daily)-days:]...)
	}

	byDay := indexByDay(daily)
	points := make([]domain.HistoryPoint, 0, days)
	for _, day := range historyWindow(s.now(), days) {
		if p, ok := byDay[domain.DayKey(day)]; ok {
			points = append(points, p)
			continue
		}
		points = append(points, domain.HistoryPoint{Date: day, Value: s.closestEarlier(daily, day)})
	}
	return points
}

// FetchRemoteHistory returns days daily samples covering the window ending today.
// Days with a local sample use it; the others are requested one at a time from the
// remote source and fall back like GetHistory when the request fails. Remote values
// are not persisted.
func (s *exchangeRateService) FetchRemoteHistory(ctx context.Context, days int) []domain.HistoryPoint {
	days = normalizeHistoryDays(days)
	daily := s.dailyHistory(ctx)
	byDay := indexByDay(daily)
	window := historyWindow(s.now(), days)

	if local, ok := localWindow(byDay, window); ok {
		return local
	}

	points := make([]domain.HistoryPoint, 0, days)
	fetched := 0
	for _, day := range window {
		if p, ok := byDay[domain.DayKey(day)]; ok {
			points = append(points, p)
			continue
		}

		rate, err := s.fetchHistorical(ctx, day)
		if err != nil {
			s.LogWarn(ctx, err, "Failed to fetch historical exchange rate", slog.String("day", domain.DayKey(day)))
			points = append(points, domain.HistoryPoint{Date: day, Value: s.closestEarlier(daily, day)})
			continue
		}
		fetched++
		points = append(points, domain.HistoryPoint{Date: startOfDay(day), Value: math.Round(rate)})
	}

	s.LogDebug(ctx, "Remote exchange rate history assembled",
		slog.Int("days", days),
		slog.Int("fetched", fetched))
	return points
}

func (s *exchangeRateService) fetchLatest(ctx context.Context) (float64, error) {
	rate, err := s.source.FetchLatest(ctx)
	if err == nil && !isUsableRate(rate) {
		err = fmt.Errorf("%w: latest rate %v is not positive", apperrors.ErrFetchFailed, rate)
	}
	s.metrics.ObserveFetch(metrics.FetchLatest, err)
	return rate, err
}

func (s *exchangeRateService) fetchHistorical(ctx context.Context, day time.Time) (float64, error) {
	rate, err := s.source.FetchHistorical(ctx, day)
	if err == nil && !isUsableRate(rate) {
		err = fmt.Errorf("%w: rate %v for %s is not positive", apperrors.ErrFetchFailed, rate, domain.DayKey(day))
	}
	s.metrics.ObserveFetch(metrics.FetchHistorical, err)
	return rate, err
}

// dailyHistory reads the persisted history reduced to one sample per day.
// Unreadable history is treated as empty.
func (s *exchangeRateService) dailyHistory(ctx context.Context) []domain.HistoryPoint {
	points, err := s.cache.history(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.LogWarn(ctx, err, "Ignoring unreadable exchange rate history")
		}
		return nil
	}
	return latestPerDay(points)
}

// closestEarlier returns the value of the latest daily sample strictly before day,
// or the fallback rate.
func (s *exchangeRateService) closestEarlier(daily []domain.HistoryPoint, day time.Time) float64 {
	key := domain.DayKey(day)
	for i := len(daily) - 1; i >= 0; i-- {
		if daily[i].Day() < key {
			return daily[i].Value
		}
	}
	s.metrics.ObserveFallback(fallbackOpHistory)
	return s.fallback
}

func indexByDay(daily []domain.HistoryPoint) map[string]domain.HistoryPoint {
	byDay := make(map[string]domain.HistoryPoint, len(daily))
	for _, p := range daily {
		byDay[p.Day()] = p
	}
	return byDay
}

// localWindow returns the local samples of window when every day has one.
func localWindow(byDay map[string]domain.HistoryPoint, window []time.Time) ([]domain.HistoryPoint, bool) {
	points := make([]domain.HistoryPoint, 0, len(window))
	for _, day := range window {
		p, ok := byDay[domain.DayKey(day)]
		if !ok {
			return nil, false
		}
		points = append(points, p)
	}
	return points, true
}

// historyWindow returns the days instants now-(days-1) .. now in UTC, oldest first.
func historyWindow(now time.Time, days int) []time.Time {
	now = now.UTC()
	window := make([]time.Time, 0, days)
	for i := days - 1; i >= 0; i-- {
		window = append(window, now.AddDate(0, 0, -i))
	}
	return window
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeHistoryDays(days int) int {
	if days <= 0 {
		return DefaultHistoryDays
	}
	return days
}

func isUsableRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
)

// Store keys owned by the exchange rate cache. No other component writes them.
const (
	CacheKeyRate     = "exchange_rate_cache"
	CacheKeyPrevious = "exchange_rate_previous"
	CacheKeyHistory  = "exchange_rate_history"
)

// storedHistoryPoint is the persisted form of a history sample.
// Day is written for other readers of the store; grouping always derives the day from Date.
type storedHistoryPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Day   string    `json:"day,omitempty"`
}

// rateCache reads and writes the exchange rate keys of a KeyValueStore.
// Every read reports absence as apperrors.ErrCacheMiss and undecodable values as
// apperrors.ErrMalformedData; callers decide how to degrade.
type rateCache struct {
	store portsrepo.KeyValueStore
}

func (c rateCache) readJSON(ctx context.Context, key string, dst any) error {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrCacheMiss, key)
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedData, key, err)
	}
	return nil
}

func (c rateCache) writeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// snapshot returns the cached snapshot regardless of age.
func (c rateCache) snapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	var snapshot domain.RateSnapshot
	if err := c.readJSON(ctx, CacheKeyRate, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.VndToUsd <= 0 {
		return nil, fmt.Errorf("%w: %s: non-positive rate", apperrors.ErrMalformedData, CacheKeyRate)
	}
	return &snapshot, nil
}

// validSnapshot returns the cached snapshot only when it is younger than ttl.
func (c rateCache) validSnapshot(ctx context.Context, now time.Time, ttl time.Duration) (*domain.RateSnapshot, error) {
	snapshot, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if age := now.Sub(snapshot.LastUpdate); age >= ttl {
		return nil, fmt.Errorf("%w: snapshot is %s old", apperrors.ErrCacheExpired, age.Truncate(time.Second))
	}
	return snapshot, nil
}

func (c rateCache) previous(ctx context.Context) (*domain.PreviousRate, error) {
	var previous domain.PreviousRate
	if err := c.readJSON(ctx, CacheKeyPrevious, &previous); err != nil {
		return nil, err
	}
	return &previous, nil
}

func (c rateCache) history(ctx context.Context) ([]storedHistoryPoint, error) {
	var points []storedHistoryPoint
	if err := c.readJSON(ctx, CacheKeyHistory, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// save persists a freshly fetched snapshot as both the live cache and the previous value,
// then appends it to the history. All three writes are attempted.
func (c rateCache) save(ctx context.Context, snapshot domain.RateSnapshot, historyCap int) error {
	return errors.Join(
		c.writeJSON(ctx, CacheKeyPrevious, snapshot.Previous()),
		c.writeJSON(ctx, CacheKeyRate, snapshot),
		c.appendHistory(ctx, snapshot.VndToUsd, snapshot.LastUpdate, historyCap),
	)
}

// appendHistory adds a sample, drops samples with an identical timestamp, sorts
// oldest first and keeps at most limit samples. Unreadable history is replaced.
func (c rateCache) appendHistory(ctx context.Context, value float64, at time.Time, limit int) error {
	points, err := c.history(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrCacheMiss) && !errors.Is(err, apperrors.ErrMalformedData) {
		return err
	}

	points = append(points, storedHistoryPoint{Date: at, Value: value, Day: domain.DayKey(at)})
	points = dedupeByTimestamp(points)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	if limit > 0 && len(points) > limit {
		points = points[len(points)-limit:]
	}
	return c.writeJSON(ctx, CacheKeyHistory, points)
}

// dedupeByTimestamp keeps the first sample of each exact timestamp.
func dedupeByTimestamp(points []storedHistoryPoint) []storedHistoryPoint {
	seen := make(map[int64]struct{}, len(points))
	unique := points[:0:0]
	for _, p := range points {
		key := p.Date.UnixNano()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// latestPerDay groups samples by calendar day, keeps the latest sample of each day
// and returns them oldest first.
func latestPerDay(points []storedHistoryPoint) []domain.HistoryPoint {
	byDay := make(map[string]storedHistoryPoint, len(points))
	for _, p := range points {
		key := domain.DayKey(p.Date)
		if current, ok := byDay[key]; !ok || p.Date.After(current.Date) {
			byDay[key] = p
		}
	}

	daily := make([]domain.HistoryPoint, 0, len(byDay))
	for _, p := range byDay {
		daily = append(daily, domain.HistoryPoint{Date: p.Date, Value: p.Value})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily
}

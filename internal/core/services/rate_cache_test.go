package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_rates_app/internal/adapters/kvstore"
	"github.com/SscSPs/money_rates_app/internal/apperrors"
)

func TestDedupeByTimestampKeepsFirst(t *testing.T) {
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	points := []storedHistoryPoint{
		{Date: at, Value: 1},
		{Date: at.Add(time.Second), Value: 2},
		{Date: at, Value: 3},
	}

	unique := dedupeByTimestamp(points)

	require.Len(t, unique, 2)
	assert.Equal(t, 1.0, unique[0].Value)
	assert.Equal(t, 2.0, unique[1].Value)
}

func TestLatestPerDayGroupsByUTCDay(t *testing.T) {
	hanoi := time.FixedZone("ICT", 7*60*60)
	points := []storedHistoryPoint{
		// 2025-01-02 03:00 in Hanoi is still 2025-01-01 in UTC.
		{Date: time.Date(2025, 1, 2, 3, 0, 0, 0, hanoi), Value: 2},
		{Date: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), Value: 1},
		{Date: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Value: 3},
	}

	daily := latestPerDay(points)

	require.Len(t, daily, 2)
	assert.Equal(t, "2025-01-01", daily[0].Day())
	assert.Equal(t, 2.0, daily[0].Value)
	assert.Equal(t, "2025-01-02", daily[1].Day())
	assert.Equal(t, 3.0, daily[1].Value)
}

func TestRateCacheReadErrors(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore(map[string]string{CacheKeyHistory: "{"})
	cache := rateCache{store: store}

	_, err := cache.snapshot(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrCacheMiss))

	_, err = cache.history(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedData))
}

func TestAppendHistoryReplacesMalformedHistory(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore(map[string]string{CacheKeyHistory: "not json"})
	cache := rateCache{store: store}
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, cache.appendHistory(ctx, 25000, at, 10))

	points, err := cache.history(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2025-01-01", points[0].Day)
}

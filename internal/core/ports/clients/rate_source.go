package clients

import (
	"context"
	"time"
)

// RateSource fetches USD/VND quotes from a remote provider.
// Rates are returned as VND per one USD.
type RateSource interface {
	// FetchLatest returns the current rate.
	FetchLatest(ctx context.Context) (float64, error)

	// FetchHistorical returns the rate observed on the calendar day of day.
	FetchHistorical(ctx context.Context, day time.Time) (float64, error)
}

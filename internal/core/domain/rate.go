package domain

import (
	"math"
	"time"
)

// RateSnapshot is the best-known USD/VND quote.
// VndToUsd is the number of VND for one USD, UsdToVnd its reciprocal.
type RateSnapshot struct {
	VndToUsd      float64   `json:"vndToUsd"`
	UsdToVnd      float64   `json:"usdToVnd"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	LastUpdate    time.Time `json:"lastUpdate"`
}

// PreviousRate is the last successfully fetched quote, kept only to compute the delta of the next fetch.
type PreviousRate struct {
	VndToUsd   float64   `json:"vndToUsd"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// HistoryPoint is one observed rate sample.
type HistoryPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Day returns the calendar day of the sample.
func (p HistoryPoint) Day() string { return DayKey(p.Date) }

// DayKey returns the UTC calendar day of t formatted as YYYY-MM-DD.
func DayKey(t time.Time) string { return t.UTC().Format(time.DateOnly) }

// NewRateSnapshot builds a snapshot from a freshly fetched VND per USD rate.
// The delta is computed against previous when it carries a usable rate.
func NewRateSnapshot(vndPerUsd float64, previous *PreviousRate, now time.Time) RateSnapshot {
	rounded := math.Round(vndPerUsd)
	snapshot := RateSnapshot{
		VndToUsd:   rounded,
		UsdToVnd:   1 / vndPerUsd,
		LastUpdate: now,
	}
	if previous != nil && previous.VndToUsd != 0 {
		snapshot.Change = rounded - previous.VndToUsd
		snapshot.ChangePercent = snapshot.Change / previous.VndToUsd * 100
	}
	return snapshot
}

// FallbackSnapshot builds the zero-change snapshot served when no fresh rate is available.
func FallbackSnapshot(vndPerUsd float64, now time.Time) RateSnapshot {
	return RateSnapshot{
		VndToUsd:   vndPerUsd,
		UsdToVnd:   1 / vndPerUsd,
		LastUpdate: now,
	}
}

// Previous returns the part of the snapshot persisted for the next delta computation.
func (s RateSnapshot) Previous() PreviousRate {
	return PreviousRate{VndToUsd: s.VndToUsd, LastUpdate: s.LastUpdate}
}

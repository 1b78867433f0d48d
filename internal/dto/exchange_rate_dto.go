package dto

import (
	"time"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

// History sources accepted by the history endpoint.
const (
	HistorySourceLocal  = "local"
	HistorySourceRemote = "remote"
)

// MaxRemoteHistoryDays bounds the window of a remote history request, which fetches
// each missing day separately.
const MaxRemoteHistoryDays = 31

// CurrentRateResponse is the live USD/VND snapshot plus the static table's view of the same pair.
type CurrentRateResponse struct {
	VndToUsd      float64   `json:"vndToUsd"`
	UsdToVnd      float64   `json:"usdToVnd"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	LastUpdate    time.Time `json:"lastUpdate"`
	// StaticVndToUsd is the VND per USD factor of the conversion rate table.
	StaticVndToUsd float64 `json:"staticVndToUsd"`
	// DiscrepancyPercent is (live - static) / static * 100.
	DiscrepancyPercent float64 `json:"discrepancyPercent"`
}

// RateHistoryQuery defines the query string of the history endpoint.
type RateHistoryQuery struct {
	Days   int    `form:"days" binding:"omitempty,min=1,max=365"`
	Source string `form:"source" binding:"omitempty,oneof=local remote"`
}

// HistoryPointResponse is one daily sample.
type HistoryPointResponse struct {
	Date  time.Time `json:"date"`
	Day   string    `json:"day"`
	Value float64   `json:"value"`
}

// RateHistoryResponse wraps the daily samples of a history request.
type RateHistoryResponse struct {
	Source string                 `json:"source"`
	Days   int                    `json:"days"`
	Points []HistoryPointResponse `json:"points"`
}

// ToCurrentRateResponse converts a snapshot and the static VND per USD factor to CurrentRateResponse DTO
func ToCurrentRateResponse(snapshot domain.RateSnapshot, staticVndToUsd float64) CurrentRateResponse {
	resp := CurrentRateResponse{
		VndToUsd:       snapshot.VndToUsd,
		UsdToVnd:       snapshot.UsdToVnd,
		Change:         snapshot.Change,
		ChangePercent:  snapshot.ChangePercent,
		LastUpdate:     snapshot.LastUpdate,
		StaticVndToUsd: staticVndToUsd,
	}
	if staticVndToUsd != 0 {
		resp.DiscrepancyPercent = (snapshot.VndToUsd - staticVndToUsd) / staticVndToUsd * 100
	}
	return resp
}

// ToRateHistoryResponse converts domain history points to RateHistoryResponse DTO
func ToRateHistoryResponse(points []domain.HistoryPoint, source string) RateHistoryResponse {
	resp := RateHistoryResponse{
		Source: source,
		Days:   len(points),
		Points: make([]HistoryPointResponse, len(points)),
	}
	for i, p := range points {
		resp.Points[i] = HistoryPointResponse{Date: p.Date, Day: p.Day(), Value: p.Value}
	}
	return resp
}

package ratesource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	portsclients "github.com/SscSPs/money_rates_app/internal/core/ports/clients"
)

// DatePlaceholder is replaced by the requested day (YYYY-MM-DD) in the history URL.
const DatePlaceholder = "{date}"

// ratesResponse is the common shape of both provider endpoints.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// HTTPRateSource reads USD/VND quotes from two JSON endpoints answering {"rates": {"VND": n}}.
type HTTPRateSource struct {
	client     *resty.Client
	latestURL  string
	historyURL string
	symbol     string
}

// NewHTTPRateSource creates a source. historyURL must contain DatePlaceholder.
// Retries are driven by the client's retry count; a nil client never retries.
func NewHTTPRateSource(client *resty.Client, latestURL, historyURL string) *HTTPRateSource {
	if client == nil {
		client = resty.New().SetTimeout(10 * time.Second)
	}
	return &HTTPRateSource{
		client:     client,
		latestURL:  latestURL,
		historyURL: historyURL,
		symbol:     "VND",
	}
}

// Ensure HTTPRateSource implements the RateSource interface
var _ portsclients.RateSource = (*HTTPRateSource)(nil)

// FetchLatest returns the current VND per USD rate.
func (s *HTTPRateSource) FetchLatest(ctx context.Context) (float64, error) {
	return s.fetch(ctx, s.latestURL)
}

// FetchHistorical returns the VND per USD rate of the UTC calendar day of day.
func (s *HTTPRateSource) FetchHistorical(ctx context.Context, day time.Time) (float64, error) {
	if !strings.Contains(s.historyURL, DatePlaceholder) {
		return 0, fmt.Errorf("%w: history URL has no %s placeholder", apperrors.ErrFetchFailed, DatePlaceholder)
	}
	addr := strings.ReplaceAll(s.historyURL, DatePlaceholder, day.UTC().Format(time.DateOnly))
	return s.fetch(ctx, addr)
}

func (s *HTTPRateSource) fetch(ctx context.Context, addr string) (float64, error) {
	var payload ratesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetResult(&payload).
		AddRetryCondition(retryOnErrOr5xx).
		Get(addr)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot http GET %s: %v", apperrors.ErrFetchFailed, addr, err)
	}
	if !resp.IsSuccess() {
		return 0, fmt.Errorf("%w: cannot http GET %s: %s", apperrors.ErrFetchFailed, addr, resp.Status())
	}

	rate, ok := payload.Rates[s.symbol]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: response has no usable %s rate", apperrors.ErrFetchFailed, s.symbol)
	}
	return rate, nil
}

func retryOnErrOr5xx(r *resty.Response, err error) bool {
	return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
}

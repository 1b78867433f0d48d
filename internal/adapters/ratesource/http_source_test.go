package ratesource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_rates_app/internal/adapters/ratesource"
	"github.com/SscSPs/money_rates_app/internal/apperrors"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestFetchLatest_Success(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92,"VND":25432.6}}`))
	})
	source := ratesource.NewHTTPRateSource(resty.New(), server.URL+"/latest", server.URL+"/{date}")

	rate, err := source.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 25432.6, rate)
}

func TestFetchHistorical_ReplacesDate(t *testing.T) {
	var requested string
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		_, _ = w.Write([]byte(`{"rates":{"VND":25100}}`))
	})
	source := ratesource.NewHTTPRateSource(resty.New(), server.URL+"/latest", server.URL+"/history/{date}")
	ict := time.FixedZone("ICT", 7*3600)

	rate, err := source.FetchHistorical(context.Background(), time.Date(2025, 6, 15, 3, 0, 0, 0, ict))

	require.NoError(t, err)
	assert.Equal(t, 25100.0, rate)
	assert.Equal(t, "/history/2025-06-14", requested)
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non 2xx", http.StatusServiceUnavailable, `{"rates":{"VND":25000}}`},
		{"missing VND", http.StatusOK, `{"rates":{"EUR":0.92}}`},
		{"non positive VND", http.StatusOK, `{"rates":{"VND":0}}`},
		{"invalid json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			source := ratesource.NewHTTPRateSource(resty.New(), server.URL, server.URL+"/{date}")

			_, err := source.FetchLatest(context.Background())

			assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
		})
	}
}

func TestFetchHistorical_RequiresPlaceholder(t *testing.T) {
	source := ratesource.NewHTTPRateSource(nil, "http://localhost/latest", "http://localhost/history")

	_, err := source.FetchHistorical(context.Background(), time.Now())

	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"VND":25000}}`))
	})
	source := ratesource.NewHTTPRateSource(resty.New(), server.URL, server.URL+"/{date}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchLatest(ctx)

	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"rates":{"VND":25210}}`))
	})
	client := resty.New().
		SetRetryCount(1).
		SetRetryWaitTime(time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Millisecond)
	source := ratesource.NewHTTPRateSource(client, server.URL, server.URL+"/{date}")

	rate, err := source.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 25210.0, rate)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_NoRetryWithoutRetryCount(t *testing.T) {
	var calls atomic.Int32
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	source := ratesource.NewHTTPRateSource(resty.New(), server.URL, server.URL+"/{date}")

	_, err := source.FetchLatest(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	assert.Equal(t, int32(1), calls.Load())
}

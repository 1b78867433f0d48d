package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch kinds used as label values.
const (
	FetchLatest     = "latest"
	FetchHistorical = "historical"
)

// RateMetrics holds the collectors of the exchange rate subsystem.
// A nil *RateMetrics is valid and records nothing.
type RateMetrics struct {
	registry *prometheus.Registry

	// CacheLookupsTotal counts snapshot cache lookups by result (hit, miss).
	CacheLookupsTotal *prometheus.CounterVec
	// FetchesTotal counts remote fetches by kind and result (success, failure).
	FetchesTotal *prometheus.CounterVec
	// FallbacksTotal counts responses served from the fallback constant.
	FallbacksTotal *prometheus.CounterVec
	// LastRate is the last successfully fetched VND per USD rate.
	LastRate prometheus.Gauge
}

// NewRateMetrics creates the collectors on a dedicated registry that also exposes
// the Go runtime and process collectors.
func NewRateMetrics() *RateMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &RateMetrics{
		registry: registry,
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_cache_lookups_total",
				Help: "Exchange rate snapshot cache lookups by result",
			},
			[]string{"result"},
		),
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fetches_total",
				Help: "Remote exchange rate fetches by kind and result",
			},
			[]string{"kind", "result"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_fallbacks_total",
				Help: "Values served from the fallback rate by operation",
			},
			[]string{"operation"},
		),
		LastRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchange_rate_vnd_per_usd",
				Help: "Last fetched VND per USD rate",
			},
		),
	}
}

// ObserveCacheLookup records a cache hit or miss.
func (m *RateMetrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveFetch records the outcome of a remote fetch.
func (m *RateMetrics) ObserveFetch(kind string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.FetchesTotal.WithLabelValues(kind, result).Inc()
}

// ObserveFallback records a value served from the fallback constant.
func (m *RateMetrics) ObserveFallback(operation string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(operation).Inc()
}

// SetLastRate records the last fetched rate.
func (m *RateMetrics) SetLastRate(vndPerUsd float64) {
	if m == nil {
		return
	}
	m.LastRate.Set(vndPerUsd)
}

// Handler exposes the registry in the Prometheus text format.
func (m *RateMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

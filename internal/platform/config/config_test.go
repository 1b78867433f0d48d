package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, DefaultRatesTimeout, cfg.RatesTimeout)
	assert.Equal(t, DefaultRateCacheTTL, cfg.RateCacheTTL)
	assert.Equal(t, DefaultRateFallback, cfg.RateFallback)
	assert.Equal(t, DefaultRateHistoryCap, cfg.RateHistoryCap)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"STORE_DRIVER":         " Redis ",
		"RATE_CACHE_TTL":       "90s",
		"RATE_FALLBACK":        "26000",
		"RATE_HISTORY_CAP":     "50",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
	}))

	require.NoError(t, err)
	assert.Equal(t, StoreDriverRedis, cfg.StoreDriver)
	assert.Equal(t, 90*time.Second, cfg.RateCacheTTL)
	assert.Equal(t, 26000.0, cfg.RateFallback)
	assert.Equal(t, 50, cfg.RateHistoryCap)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidValuesUseDefaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"RATE_CACHE_TTL":     "soon",
		"RATES_HTTP_TIMEOUT": "-1s",
		"RATE_FALLBACK":      "-5",
		"RATE_HISTORY_CAP":   "0",
	}))

	require.NoError(t, err)
	assert.Equal(t, DefaultRateCacheTTL, cfg.RateCacheTTL)
	assert.Equal(t, DefaultRatesTimeout, cfg.RatesTimeout)
	assert.Equal(t, DefaultRateFallback, cfg.RateFallback)
	assert.Equal(t, DefaultRateHistoryCap, cfg.RateHistoryCap)
}

func TestFromViper_StoreDriverErrors(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"STORE_DRIVER": "etcd"}))
	assert.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"STORE_DRIVER": StoreDriverPostgres}))
	assert.Error(t, err)

	cfg, err := fromViper(newTestViper(map[string]any{
		"STORE_DRIVER": StoreDriverPostgres,
		"PGSQL_URL":    "postgres://localhost/rates",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/rates", cfg.DatabaseURL)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRateTable_EmptyPathUsesBuiltIn(t *testing.T) {
	table, err := LoadRateTable("")

	require.NoError(t, err)
	assert.Equal(t, "VND", table.Unit())
	assert.Len(t, table.Codes(), 6)
}

func TestLoadRateTable_YAML(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
unit_currency: vnd
currencies:
  - code: USD
    per_unit: 0.000041
    units_per: 24390.243902439024
  - code: THB
    per_unit: 0.0014
`)

	table, err := LoadRateTable(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"VND", "THB", "USD"}, table.Codes())
	usd, _ := table.Lookup("USD")
	assert.Equal(t, 24390.243902439024, usd.UnitsPer)
	thb, _ := table.Lookup("THB")
	assert.InDelta(t, 714.2857142857143, thb.UnitsPer, 1e-9)
}

func TestLoadRateTable_JSONDefaultsUnit(t *testing.T) {
	path := writeFile(t, "rates.json", `{"currencies":[{"code":"EUR","per_unit":0.000038}]}`)

	table, err := LoadRateTable(path)

	require.NoError(t, err)
	assert.Equal(t, "VND", table.Unit())
	assert.Equal(t, []string{"VND", "EUR"}, table.Codes())
}

func TestLoadRateTable_Errors(t *testing.T) {
	_, err := LoadRateTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadRateTable(writeFile(t, "empty.yaml", "unit_currency: VND\n"))
	assert.Error(t, err)

	_, err = LoadRateTable(writeFile(t, "bad.yaml", "currencies:\n  - code: EURO\n    per_unit: 1\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

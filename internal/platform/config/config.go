package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StoreDriver   string
	DatabaseURL   string
	EnableDBCheck bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Remote rate source
	RatesLatestURL  string
	RatesHistoryURL string
	RatesTimeout    time.Duration

	RateCacheTTL   time.Duration
	RateFallback   float64
	RateHistoryCap int
	RateTableFile  string

	CORSAllowedOrigins []string
	RateLimit          string
}

// Defaults used when the environment does not provide a value.
const (
	DefaultPort            = "8080"
	DefaultRatesLatestURL  = "https://api.exchangerate-api.com/v4/latest/USD"
	DefaultRatesHistoryURL = "https://api.exchangerate.host/{date}?base=USD&symbols=VND"
	DefaultRatesTimeout    = 10 * time.Second
	DefaultRateCacheTTL    = 5 * time.Minute
	DefaultRateFallback    = 24500.0
	DefaultRateHistoryCap  = 300
	DefaultRateLimit       = "60-M"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATES_LATEST_URL", DefaultRatesLatestURL)
	v.SetDefault("RATES_HISTORY_URL", DefaultRatesHistoryURL)
	v.SetDefault("RATES_HTTP_TIMEOUT", DefaultRatesTimeout.String())
	v.SetDefault("RATE_CACHE_TTL", DefaultRateCacheTTL.String())
	v.SetDefault("RATE_FALLBACK", DefaultRateFallback)
	v.SetDefault("RATE_HISTORY_CAP", DefaultRateHistoryCap)
	v.SetDefault("RATE_TABLE_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", DefaultRateLimit)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		StoreDriver:     strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RatesLatestURL:  v.GetString("RATES_LATEST_URL"),
		RatesHistoryURL: v.GetString("RATES_HISTORY_URL"),
		RateFallback:    v.GetFloat64("RATE_FALLBACK"),
		RateHistoryCap:  v.GetInt("RATE_HISTORY_CAP"),
		RateTableFile:   v.GetString("RATE_TABLE_FILE"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverRedis:
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %s", StoreDriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.RatesTimeout = durationOrDefault(v, "RATES_HTTP_TIMEOUT", DefaultRatesTimeout)
	cfg.RateCacheTTL = durationOrDefault(v, "RATE_CACHE_TTL", DefaultRateCacheTTL)

	if cfg.RateFallback <= 0 {
		log.Printf("Warning: Invalid value for RATE_FALLBACK (%v). Defaulting to %v.\n", cfg.RateFallback, DefaultRateFallback)
		cfg.RateFallback = DefaultRateFallback
	}
	if cfg.RateHistoryCap <= 0 {
		log.Printf("Warning: Invalid value for RATE_HISTORY_CAP (%d). Defaulting to %d.\n", cfg.RateHistoryCap, DefaultRateHistoryCap)
		cfg.RateHistoryCap = DefaultRateHistoryCap
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = DefaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

// rateTableFile is the on-disk layout of a currency rate table.
type rateTableFile struct {
	UnitCurrency string                `mapstructure:"unit_currency"`
	Currencies   []domain.CurrencyRate `mapstructure:"currencies"`
}

// LoadRateTable reads a currency rate table from a JSON or YAML file.
// An empty path returns the built-in table.
func LoadRateTable(path string) (*domain.CurrencyRateTable, error) {
	if strings.TrimSpace(path) == "" {
		return domain.DefaultCurrencyRateTable(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rate table %s: %w", path, err)
	}

	var file rateTableFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode rate table %s: %w", path, err)
	}
	if file.UnitCurrency == "" {
		file.UnitCurrency = domain.DefaultUnitCurrency
	}
	if len(file.Currencies) == 0 {
		return nil, fmt.Errorf("rate table %s lists no currencies", path)
	}

	table, err := domain.NewCurrencyRateTable(file.UnitCurrency, file.Currencies)
	if err != nil {
		return nil, fmt.Errorf("invalid rate table %s: %w", path, err)
	}
	return table, nil
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"github.com/SscSPs/money_rates_app/internal/adapters/cache"
	"github.com/SscSPs/money_rates_app/internal/adapters/kvstore"
	"github.com/SscSPs/money_rates_app/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_rates_app/internal/core/services"
	"github.com/SscSPs/money_rates_app/internal/handlers"
	"github.com/SscSPs/money_rates_app/internal/middleware"
	"github.com/SscSPs/money_rates_app/internal/platform/config"
	"github.com/SscSPs/money_rates_app/internal/platform/metrics"
	"github.com/SscSPs/money_rates_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_rates_app/pkg/database"
)

const migrationsPath = "file://migrations"

// @title Money Rates API
// @version 1.0
// @description Currency conversion and USD/VND exchange rate service.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	table, err := config.LoadRateTable(cfg.RateTableFile)
	if err != nil {
		logger.Error("Failed to load currency rate table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeStores, err := newRepositoryProvider(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStores()

	rateMetrics := metrics.NewRateMetrics()
	source := ratesource.NewHTTPRateSource(
		resty.New().
			SetTimeout(cfg.RatesTimeout).
			SetRetryCount(2).
			SetRetryWaitTime(500*time.Millisecond).
			SetRetryMaxWaitTime(2*time.Second),
		cfg.RatesLatestURL,
		cfg.RatesHistoryURL,
	)
	serviceContainer := services.NewServiceContainer(cfg, repos, source, table, rateMetrics)

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateMetrics, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRepositoryProvider builds the stores selected by cfg.StoreDriver and returns a function releasing them.
func newRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrationsPath, logger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil

	case config.StoreDriverRedis:
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		rateStore := cache.NewRedisStore(client, "rates:")
		if err := rateStore.Ping(ctx); err != nil {
			_ = client.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Redis connection established.", slog.String("addr", cfg.RedisAddr))
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing redis client", slog.String("error", err.Error()))
			}
		}
		return portsrepo.RepositoryProvider{
			RateStore:     rateStore,
			SettingsStore: cache.NewRedisStore(client, "settings:"),
		}, closeClient, nil

	default:
		return portsrepo.RepositoryProvider{
			RateStore:     kvstore.NewMemoryStore(nil),
			SettingsStore: kvstore.NewMemoryStore(nil),
		}, func() {}, nil
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID"}

	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}

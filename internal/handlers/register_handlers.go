package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/money_rates_app/cmd/docs"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/middleware"
	"github.com/SscSPs/money_rates_app/internal/platform/config"
	"github.com/SscSPs/money_rates_app/internal/platform/metrics"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateMetrics and rateLimiter are optional.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateMetrics *metrics.RateMetrics,
	rateLimiter *limiter.Limiter,
) {
	registerValidators()

	registerHomeRoutes(r)

	if rateMetrics != nil {
		r.GET("/metrics", gin.WrapH(rateMetrics.Handler()))
	}

	setupAPIV1Routes(r, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	registerExchangeRateRoutes(v1, service.ExchangeRate, service.Conversion)
	registerCurrencyRoutes(v1, service.Conversion)
	registerConversionRoutes(v1, service.Conversion)
	registerSettingsRoutes(v1, service.Settings)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg == nil || cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

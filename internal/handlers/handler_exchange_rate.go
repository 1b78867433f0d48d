package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/dto"
	"github.com/SscSPs/money_rates_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to the live USD/VND rate.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	conversionService   portssvc.ConversionSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, cs portssvc.ConversionSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		conversionService:   cs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, conversionService portssvc.ConversionSvc) {
	h := newExchangeRateHandler(exchangeRateService, conversionService)

	rates := rg.Group("/rates")
	{
		rates.GET("/current", h.getCurrentRate)
		rates.GET("/history", h.getRateHistory)
	}
}

// getCurrentRate godoc
// @Summary Get the current USD/VND rate
// @Description Returns the cached snapshot while fresh, otherwise refreshes it from the remote source. Never fails: a fallback rate is served when the source is unavailable.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.CurrentRateResponse
// @Router /rates/current [get]
func (h *exchangeRateHandler) getCurrentRate(c *gin.Context) {
	snapshot := h.exchangeRateService.GetRate(c.Request.Context())
	static := h.conversionService.Rate("USD", "VND")

	c.JSON(http.StatusOK, dto.ToCurrentRateResponse(snapshot, static))
}

// getRateHistory godoc
// @Summary Get daily USD/VND history
// @Description Returns exactly `days` daily samples, oldest first. With source=remote, days missing locally are fetched from the remote provider and `days` is limited to 31.
// @Tags exchange rates
// @Produce  json
// @Param   days   query int    false "Number of days (default 7, at most 31 with source=remote)" minimum(1) maximum(365)
// @Param   source query string false "local or remote (default local)" Enums(local, remote)
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or remote window too long"
// @Router /rates/history [get]
func (h *exchangeRateHandler) getRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.RateHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for rate history", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if query.Source == dto.HistorySourceRemote {
		if query.Days > dto.MaxRemoteHistoryDays {
			logger.Warn("Remote rate history window too long", slog.Int("days", query.Days))
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Remote history is limited to %d days", dto.MaxRemoteHistoryDays)})
			return
		}
		points := h.exchangeRateService.FetchRemoteHistory(c.Request.Context(), query.Days)
		c.JSON(http.StatusOK, dto.ToRateHistoryResponse(points, dto.HistorySourceRemote))
		return
	}

	points := h.exchangeRateService.GetHistory(c.Request.Context(), query.Days)
	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(points, dto.HistorySourceLocal))
}

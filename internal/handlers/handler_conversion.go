package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/dto"
	"github.com/SscSPs/money_rates_app/internal/middleware"
)

// conversionHandler handles HTTP requests related to conversions and money formatting.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	conversions := rg.Group("/conversions")
	{
		conversions.GET("/rate", h.getConversionRate)
		conversions.POST("/preview", h.previewConversion)
	}

	rg.GET("/format/money", h.formatMoney)
}

// getConversionRate godoc
// @Summary Get a static conversion rate
// @Description Returns the factor converting one unit of `from` into `to`. Unsupported codes yield 1.
// @Tags conversions
// @Produce  json
// @Param   from query string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   query string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConversionRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Router /conversions/rate [get]
func (h *conversionHandler) getConversionRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConversionRateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for conversion rate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from := domain.NormalizeCurrencyCode(query.From)
	to := domain.NormalizeCurrencyCode(query.To)
	rate := h.conversionService.Rate(from, to)

	c.JSON(http.StatusOK, dto.ConversionRateResponse{
		From:          from,
		To:            to,
		Rate:          rate,
		FormattedRate: h.conversionService.FormatExchangeRate(rate, to),
		Supported:     h.conversionService.Supports(from) && h.conversionService.Supports(to),
	})
}

// previewConversion godoc
// @Summary Preview a wallet conversion
// @Description Derives the rate, the unrounded converted amount and their display strings
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConversionPreviewRequest true "Conversion input"
// @Success 200 {object} dto.ConversionPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Router /conversions/preview [post]
func (h *conversionHandler) previewConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConversionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	preview := h.conversionService.Preview(req.ToWalletConversionContext())
	if !preview.Supported {
		logger.Info("Conversion preview for unsupported currency pair",
			slog.String("from", preview.FromCurrency),
			slog.String("to", preview.ToCurrency))
	}
	c.JSON(http.StatusOK, dto.ToConversionPreviewResponse(preview))
}

// formatMoney godoc
// @Summary Format an amount
// @Description Renders an amount in the display convention of a currency. mode=balance keeps up to 8 fraction digits for every currency.
// @Tags conversions
// @Produce  json
// @Param   amount   query number false "Amount"
// @Param   currency query string false "Currency code (default VND)"
// @Param   mode     query string false "money or balance (default money)" Enums(money, balance)
// @Success 200 {object} dto.FormattedMoneyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /format/money [get]
func (h *conversionHandler) formatMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.FormatMoneyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for money formatting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	currency := domain.NormalizeCurrencyCode(query.Currency)
	if currency == "" {
		currency = domain.DefaultUnitCurrency
	}
	mode := query.Mode
	if mode == "" {
		mode = dto.FormatModeMoney
	}

	formatted := h.conversionService.FormatMoney(query.Amount, currency)
	if mode == dto.FormatModeBalance {
		formatted = h.conversionService.FormatConvertedBalance(query.Amount, currency)
	}

	c.JSON(http.StatusOK, dto.FormattedMoneyResponse{
		Amount:    query.Amount,
		Currency:  currency,
		Mode:      mode,
		Formatted: formatted,
	})
}

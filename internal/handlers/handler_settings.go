package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/dto"
	"github.com/SscSPs/money_rates_app/internal/middleware"
)

// moneyFormatExample is rendered with the stored money format in responses.
const moneyFormatExample = 1234567.891

// settingsHandler handles HTTP requests related to display preferences.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/date-format", h.getDateFormat)
		settings.PUT("/date-format", h.updateDateFormat)
		settings.GET("/money-format", h.getMoneyFormat)
		settings.PUT("/money-format", h.updateMoneyFormat)
	}
}

// getDateFormat godoc
// @Summary Get the date format
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.DateFormatResponse
// @Router /settings/date-format [get]
func (h *settingsHandler) getDateFormat(c *gin.Context) {
	format := h.settingsService.GetDateFormat(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToDateFormatResponse(format, h.settingsService.FormatDate(time.Now(), format)))
}

// updateDateFormat godoc
// @Summary Change the date format
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   format body dto.UpdateDateFormatRequest true "Date format key"
// @Success 200 {object} dto.DateFormatResponse
// @Failure 400 {object} map[string]string "Unknown date format"
// @Failure 500 {object} map[string]string "Failed to save date format"
// @Router /settings/date-format [put]
func (h *settingsHandler) updateDateFormat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDateFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDateFormat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.settingsService.SetDateFormat(c.Request.Context(), req.Format); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating date format", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update date format in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save date format"})
		}
		return
	}

	logger.Info("Date format updated", slog.String("format", req.Format))
	c.JSON(http.StatusOK, dto.ToDateFormatResponse(req.Format, h.settingsService.FormatDate(time.Now(), req.Format)))
}

// getMoneyFormat godoc
// @Summary Get the money format
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.MoneyFormatResponse
// @Router /settings/money-format [get]
func (h *settingsHandler) getMoneyFormat(c *gin.Context) {
	settings := h.settingsService.GetMoneyFormat(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToMoneyFormatResponse(settings, h.settingsService.FormatAmount(moneyFormatExample, settings)))
}

// updateMoneyFormat godoc
// @Summary Change the money format
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   format body dto.UpdateMoneyFormatRequest true "Money format preset and fraction digits"
// @Success 200 {object} dto.MoneyFormatResponse
// @Failure 400 {object} map[string]string "Unknown money format or digits out of range"
// @Failure 500 {object} map[string]string "Failed to save money format"
// @Router /settings/money-format [put]
func (h *settingsHandler) updateMoneyFormat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMoneyFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMoneyFormat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.settingsService.SetMoneyFormat(ctx, req.Format, *req.DecimalDigits); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating money format", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update money format in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save money format"})
		}
		return
	}

	settings := h.settingsService.GetMoneyFormat(ctx)
	logger.Info("Money format updated", slog.String("format", settings.Key), slog.Int("decimal_digits", settings.DecimalDigits))
	c.JSON(http.StatusOK, dto.ToMoneyFormatResponse(settings, h.settingsService.FormatAmount(moneyFormatExample, settings)))
}

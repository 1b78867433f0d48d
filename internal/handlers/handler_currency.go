package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/money_rates_app/internal/core/ports/services"
	"github.com/SscSPs/money_rates_app/internal/dto"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currencies of the conversion rate table, unit currency first
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies()
	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(h.currencyService.UnitCurrency(), currencies))
}

package dto

import "github.com/SscSPs/money_rates_app/internal/core/domain"

// Format modes of the money formatting endpoint.
const (
	FormatModeMoney   = "money"
	FormatModeBalance = "balance"
)

// ConversionRateQuery defines the query string of the conversion rate endpoint.
type ConversionRateQuery struct {
	From string `form:"from" binding:"required,currency"`
	To   string `form:"to" binding:"required,currency"`
}

// ConversionRateResponse is the factor converting one unit of From into To.
type ConversionRateResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Rate          float64 `json:"rate"`
	FormattedRate string  `json:"formattedRate"`
	Supported     bool    `json:"supported"`
}

// ConversionPreviewRequest defines the structure for previewing a wallet conversion.
type ConversionPreviewRequest struct {
	FromCurrency string  `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string  `json:"toCurrency" binding:"required,currency"`
	Amount       float64 `json:"amount"`
}

// ConversionPreviewResponse defines the structure of a conversion preview.
type ConversionPreviewResponse struct {
	FromCurrency       string  `json:"fromCurrency"`
	ToCurrency         string  `json:"toCurrency"`
	Amount             float64 `json:"amount"`
	Rate               float64 `json:"rate"`
	ConvertedAmount    float64 `json:"convertedAmount"`
	Supported          bool    `json:"supported"`
	FormattedAmount    string  `json:"formattedAmount"`
	FormattedConverted string  `json:"formattedConverted"`
	FormattedRate      string  `json:"formattedRate"`
}

// FormatMoneyQuery defines the query string of the money formatting endpoint.
type FormatMoneyQuery struct {
	Amount   float64 `form:"amount"`
	Currency string  `form:"currency" binding:"omitempty,currency"`
	Mode     string  `form:"mode" binding:"omitempty,oneof=money balance"`
}

// FormattedMoneyResponse is a rendered amount.
type FormattedMoneyResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Mode      string  `json:"mode"`
	Formatted string  `json:"formatted"`
}

// ToWalletConversionContext converts the request to the domain input of a preview.
func (r ConversionPreviewRequest) ToWalletConversionContext() domain.WalletConversionContext {
	return domain.WalletConversionContext{
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Amount:       r.Amount,
	}
}

// ToConversionPreviewResponse converts a domain.ConversionPreview to ConversionPreviewResponse DTO
func ToConversionPreviewResponse(p domain.ConversionPreview) ConversionPreviewResponse {
	return ConversionPreviewResponse{
		FromCurrency:       p.FromCurrency,
		ToCurrency:         p.ToCurrency,
		Amount:             p.Amount,
		Rate:               p.Rate,
		ConvertedAmount:    p.ConvertedAmount,
		Supported:          p.Supported,
		FormattedAmount:    p.FormattedAmount,
		FormattedConverted: p.FormattedConverted,
		FormattedRate:      p.FormattedRate,
	}
}

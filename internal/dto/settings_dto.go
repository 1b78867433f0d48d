package dto

import "github.com/SscSPs/money_rates_app/internal/core/domain"

// DateFormatResponse is the stored date format with the selectable options.
type DateFormatResponse struct {
	Format  string                    `json:"format"`
	Example string                    `json:"example"`
	Options []domain.DateFormatOption `json:"options"`
}

// UpdateDateFormatRequest defines the structure for changing the date format.
type UpdateDateFormatRequest struct {
	Format string `json:"format" binding:"required"`
}

// MoneyFormatResponse is the stored money format with the selectable presets.
type MoneyFormatResponse struct {
	Format        string               `json:"format"`
	Thousand      string               `json:"thousand"`
	Decimal       string               `json:"decimal"`
	DecimalDigits int                  `json:"decimalDigits"`
	Example       string               `json:"example"`
	Options       []domain.MoneyFormat `json:"options"`
}

// UpdateMoneyFormatRequest defines the structure for changing the money format.
type UpdateMoneyFormatRequest struct {
	Format        string `json:"format" binding:"required"`
	DecimalDigits *int   `json:"decimalDigits" binding:"required,min=0,max=8"`
}

// ToDateFormatResponse builds the DateFormatResponse DTO; example is a date rendered with format.
func ToDateFormatResponse(format, example string) DateFormatResponse {
	return DateFormatResponse{
		Format:  format,
		Example: example,
		Options: domain.DateFormats,
	}
}

// ToMoneyFormatResponse converts domain.MoneyFormatSettings to MoneyFormatResponse DTO
func ToMoneyFormatResponse(settings domain.MoneyFormatSettings, example string) MoneyFormatResponse {
	return MoneyFormatResponse{
		Format:        settings.Key,
		Thousand:      settings.Thousand,
		Decimal:       settings.Decimal,
		DecimalDigits: settings.DecimalDigits,
		Example:       example,
		Options:       domain.MoneyFormats,
	}
}

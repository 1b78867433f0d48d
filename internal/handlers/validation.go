package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/money_rates_app/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the DTOs:
//
//	currency: a three letter currency code, case insensitive
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currency", validateCurrencyCode)
	})
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.IsCurrencyCode(domain.NormalizeCurrencyCode(fl.Field().String()))
}

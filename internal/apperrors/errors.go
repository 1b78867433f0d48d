package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCacheMiss indicates that no cached value exists under a key.
var ErrCacheMiss = errors.New("cache miss")

// ErrCacheExpired indicates that a cached value exists but is too old to be served.
var ErrCacheExpired = errors.New("cached value expired")

// ErrMalformedData indicates that persisted data could not be decoded.
var ErrMalformedData = errors.New("malformed persisted data")

// ErrFetchFailed indicates that a remote rate source could not produce a usable rate.
var ErrFetchFailed = errors.New("rate fetch failed")

// ErrUnsupportedCurrency indicates a currency code that is absent from the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

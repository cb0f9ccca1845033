package item

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrUnknownPromotion = errors.New("item references an unknown promotion")

	// Business rule errors
	ErrItemNotFound = errors.New("promotion item not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrItemNotFound):
		return "ITEM_NOT_FOUND"
	case errors.Is(err, ErrUnknownPromotion), errors.As(err, &fieldErrs):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrItemNotFound):
		return 404
	case errors.Is(err, ErrUnknownPromotion), errors.As(err, &fieldErrs):
		return 400
	default:
		return 500
	}
}

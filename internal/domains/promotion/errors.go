package promotion

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrInvalidSlug      = errors.New("promotion slug is invalid")
	ErrInvalidYearRange = errors.New("promotion end year precedes start year")
	ErrUnknownBrand     = errors.New("promotion references an unknown brand")

	// Business rule errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrDuplicateSlug     = errors.New("promotion with this slug already exists")
	ErrPromotionHasItems = errors.New("cannot delete promotion with linked items")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrPromotionNotFound):
		return "PROMOTION_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrPromotionHasItems):
		return "PROMOTION_HAS_ITEMS"
	case errors.Is(err, ErrUnknownBrand), errors.Is(err, ErrInvalidYearRange),
		errors.Is(err, ErrInvalidSlug), errors.As(err, &fieldErrs):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrPromotionNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrPromotionHasItems):
		return 409
	case errors.Is(err, ErrUnknownBrand), errors.Is(err, ErrInvalidYearRange),
		errors.Is(err, ErrInvalidSlug), errors.As(err, &fieldErrs):
		return 400
	default:
		return 500
	}
}

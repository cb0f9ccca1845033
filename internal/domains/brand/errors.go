package brand

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrInvalidSlug = errors.New("brand slug is invalid")

	// Business rule errors
	ErrBrandNotFound     = errors.New("brand not found")
	ErrDuplicateSlug     = errors.New("brand with this slug already exists")
	ErrBrandHasPromotion = errors.New("cannot delete brand with linked promotions")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrBrandNotFound):
		return "BRAND_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrBrandHasPromotion):
		return "BRAND_HAS_PROMOTIONS"
	case errors.Is(err, ErrInvalidSlug), errors.As(err, &fieldErrs):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var fieldErrs validation.Errors
	switch {
	case errors.Is(err, ErrBrandNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrBrandHasPromotion):
		return 409
	case errors.Is(err, ErrInvalidSlug), errors.As(err, &fieldErrs):
		return 400
	default:
		return 500
	}
}

package brand

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// CreateBrandRequest - POST /api/v1/brands
// Slug is optional; when absent it is generated from Name.
type CreateBrandRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug,omitempty"`
	Description  string  `json:"description"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	PrimaryColor string  `json:"primaryColor"`
	Founded      *int    `json:"founded,omitempty"`
}

func (r CreateBrandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(1, MaxDescriptionLength),
		),
		validation.Field(&r.PrimaryColor,
			validation.Required.Error("primaryColor is required"),
			validation.Match(hexColorPattern).Error("primaryColor must be a hex color token like #E31E24"),
		),
		validation.Field(&r.Founded,
			validation.Min(1800), validation.Max(2100),
		),
		validation.Field(&r.LogoURL,
			is.RequestURI.Error("logoUrl must be a valid URI"),
		),
	)
}

// UpdateBrandRequest - PUT /api/v1/brands/:id
// Slug is immutable and deliberately absent. Nil fields are left unchanged.
type UpdateBrandRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
	Founded      *int    `json:"founded,omitempty"`
}

func (r UpdateBrandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, MaxDescriptionLength)),
		validation.Field(&r.PrimaryColor,
			validation.NilOrNotEmpty,
			validation.Match(hexColorPattern).Error("primaryColor must be a hex color token like #E31E24"),
		),
		validation.Field(&r.Founded, validation.Min(1800), validation.Max(2100)),
		validation.Field(&r.LogoURL, is.RequestURI.Error("logoUrl must be a valid URI")),
	)
}

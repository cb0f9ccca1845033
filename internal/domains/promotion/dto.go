package promotion

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength        = 255
	MaxCategoryLength    = 100
	MaxDescriptionLength = 10000

	MinYear = 1900
	MaxYear = 2100
)

// CreatePromotionRequest - POST /api/v1/promotions
// Slug is optional; generated from Name when absent.
type CreatePromotionRequest struct {
	BrandID     uuid.UUID `json:"brandId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	Category    string    `json:"category"`

	ImageURL             *string  `json:"imageUrl,omitempty"`
	WrapperPhotoURL      *string  `json:"wrapperPhotoUrl,omitempty"`
	WrapperPhotoURLs     []string `json:"wrapperPhotosUrls,omitempty"`
	PromotionImageURLs   []string `json:"promotionImagesUrls,omitempty"`
	YoutubeCommercialURL *string  `json:"youtubeCommercialUrl,omitempty"`
	BuffetGamesVideoURL  *string  `json:"buffetGamesVideoUrl,omitempty"`

	StartYear int  `json:"startYear"`
	EndYear   *int `json:"endYear,omitempty"`
}

func (r CreatePromotionRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.BrandID, validation.Required.Error("brandId is required")),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(1, MaxDescriptionLength),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, MaxCategoryLength),
		),
		validation.Field(&r.StartYear,
			validation.Required.Error("startYear is required"),
			validation.Min(MinYear), validation.Max(MaxYear),
		),
		validation.Field(&r.EndYear, validation.Min(MinYear), validation.Max(MaxYear)),
	)
	if err != nil {
		return err
	}

	// Campaigns can stay open-ended (nil EndYear) but never end before
	// they start.
	if r.EndYear != nil && *r.EndYear < r.StartYear {
		return ErrInvalidYearRange
	}
	return nil
}

// UpdatePromotionRequest - PUT /api/v1/promotions/:id
// Slug and BrandID are immutable. Nil fields are left unchanged; media
// slices replace the stored value when present.
type UpdatePromotionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`

	ImageURL             *string  `json:"imageUrl,omitempty"`
	WrapperPhotoURL      *string  `json:"wrapperPhotoUrl,omitempty"`
	WrapperPhotoURLs     []string `json:"wrapperPhotosUrls,omitempty"`
	PromotionImageURLs   []string `json:"promotionImagesUrls,omitempty"`
	YoutubeCommercialURL *string  `json:"youtubeCommercialUrl,omitempty"`
	BuffetGamesVideoURL  *string  `json:"buffetGamesVideoUrl,omitempty"`

	StartYear *int `json:"startYear,omitempty"`
	EndYear   *int `json:"endYear,omitempty"`
}

func (r UpdatePromotionRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, MaxDescriptionLength)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, MaxCategoryLength)),
		validation.Field(&r.StartYear, validation.Min(MinYear), validation.Max(MaxYear)),
		validation.Field(&r.EndYear, validation.Min(MinYear), validation.Max(MaxYear)),
	)
	if err != nil {
		return err
	}

	if r.StartYear != nil && r.EndYear != nil && *r.EndYear < *r.StartYear {
		return ErrInvalidYearRange
	}
	return nil
}

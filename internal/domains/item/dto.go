package item

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
)

// CreateItemRequest - POST /api/v1/items
type CreateItemRequest struct {
	PromotionID uuid.UUID `json:"promotionId"`
	Name        string    `json:"name"`

	Description *string                `json:"description,omitempty"`
	ImageURL    *string                `json:"imageUrl,omitempty"`
	Rarity      *string                `json:"rarity,omitempty"`
	ItemNumber  *int                   `json:"itemNumber,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PromotionID, validation.Required.Error("promotionId is required")),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
		validation.Field(&r.Rarity,
			validation.In(Rarities()...).Error("rarity must be one of common/rare/super_rare/ultra_rare"),
		),
		validation.Field(&r.ItemNumber, validation.Min(1)),
	)
}

// UpdateItemRequest - PUT /api/v1/items/:id
// PromotionID is immutable. Nil fields are left unchanged; Metadata
// replaces the stored bag when present.
type UpdateItemRequest struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	ImageURL    *string                `json:"imageUrl,omitempty"`
	Rarity      *string                `json:"rarity,omitempty"`
	ItemNumber  *int                   `json:"itemNumber,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
		validation.Field(&r.Rarity,
			validation.In(Rarities()...).Error("rarity must be one of common/rare/super_rare/ultra_rare"),
		),
		validation.Field(&r.ItemNumber, validation.Min(1)),
	)
}

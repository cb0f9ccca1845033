package item

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the PromotionItem domain.
type Service interface {
	// Create creates an item after checking that the referenced promotion
	// exists.
	// Errors: ErrUnknownPromotion, validation.Errors.
	Create(ctx context.Context, req *CreateItemRequest) (*PromotionItem, error)

	// GetByID retrieves an item by UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionItem, error)

	// GetAll lists every item in insertion order.
	GetAll(ctx context.Context) ([]PromotionItem, error)

	// GetAllByPromotionID lists a promotion's items in insertion order.
	GetAllByPromotionID(ctx context.Context, promotionID uuid.UUID) ([]PromotionItem, error)

	// Search performs a case-insensitive substring search over
	// name/description.
	Search(ctx context.Context, query string) ([]PromotionItem, error)

	// Update applies a partial update. PromotionID never changes.
	// Errors: ErrItemNotFound, validation.Errors.
	Update(ctx context.Context, id uuid.UUID, req *UpdateItemRequest) (*PromotionItem, error)

	// Delete removes an item.
	// Errors: ErrItemNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

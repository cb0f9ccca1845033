package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for promotion items.
type Repository interface {
	// Create inserts a new item, assigning ID and CreatedAt.
	Create(ctx context.Context, i *PromotionItem) (*PromotionItem, error)

	// GetByID retrieves an item by UUID.
	// Errors: ErrItemNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionItem, error)

	// GetAll returns every item in insertion order.
	GetAll(ctx context.Context) ([]PromotionItem, error)

	// GetAllByPromotionID returns a promotion's items in insertion order.
	GetAllByPromotionID(ctx context.Context, promotionID uuid.UUID) ([]PromotionItem, error)

	// CountByPromotionID supports the promotion-deletion guard.
	CountByPromotionID(ctx context.Context, promotionID uuid.UUID) (int, error)

	// Search matches query as a case-insensitive substring of name or
	// description. Items without a description match on name only. An
	// empty query matches everything.
	Search(ctx context.Context, query string) ([]PromotionItem, error)

	// Update replaces the mutable fields of an existing item.
	// PromotionID and CreatedAt are never changed.
	// Errors: ErrItemNotFound.
	Update(ctx context.Context, i *PromotionItem) (*PromotionItem, error)

	// Delete removes an item by ID.
	// Errors: ErrItemNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

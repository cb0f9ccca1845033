package promotion

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Promotion domain.
type Service interface {
	// Create creates a promotion after checking that the referenced brand
	// exists. Slug is generated from the name when absent.
	// Errors: ErrUnknownBrand, ErrInvalidYearRange, ErrDuplicateSlug.
	Create(ctx context.Context, req *CreatePromotionRequest) (*Promotion, error)

	// GetByID retrieves a promotion by UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*Promotion, error)

	// GetBySlug retrieves a promotion by slug, read-through cached.
	GetBySlug(ctx context.Context, slug string) (*Promotion, error)

	// GetAll lists every promotion in insertion order.
	GetAll(ctx context.Context) ([]Promotion, error)

	// GetAllByBrandID lists a single brand's promotions.
	GetAllByBrandID(ctx context.Context, brandID uuid.UUID) ([]Promotion, error)

	// Search performs a case-insensitive substring search over
	// name/description/category.
	Search(ctx context.Context, query string) ([]Promotion, error)

	// Update applies a partial update. Slug and BrandID never change.
	// Errors: ErrPromotionNotFound, ErrInvalidYearRange.
	Update(ctx context.Context, id uuid.UUID, req *UpdatePromotionRequest) (*Promotion, error)

	// Delete removes a promotion that has no items left.
	// Errors: ErrPromotionNotFound, ErrPromotionHasItems.
	Delete(ctx context.Context, id uuid.UUID) error
}

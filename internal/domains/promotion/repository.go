package promotion

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for promotions.
type Repository interface {
	// Create inserts a new promotion, assigning ID and CreatedAt.
	// Errors: ErrDuplicateSlug.
	Create(ctx context.Context, p *Promotion) (*Promotion, error)

	// GetByID retrieves a promotion by UUID.
	// Errors: ErrPromotionNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Promotion, error)

	// GetBySlug retrieves a promotion by its globally unique slug.
	// Errors: ErrPromotionNotFound.
	GetBySlug(ctx context.Context, slug string) (*Promotion, error)

	// GetAll returns every promotion in insertion order.
	GetAll(ctx context.Context) ([]Promotion, error)

	// GetAllByBrandID returns the promotions of one brand, in insertion
	// order, regardless of how creations interleaved with other brands.
	GetAllByBrandID(ctx context.Context, brandID uuid.UUID) ([]Promotion, error)

	// CountByBrandID supports the brand-deletion guard.
	CountByBrandID(ctx context.Context, brandID uuid.UUID) (int, error)

	// Search matches query as a case-insensitive substring of name,
	// description or category. An empty query matches everything.
	Search(ctx context.Context, query string) ([]Promotion, error)

	// Update replaces the mutable fields of an existing promotion.
	// Slug, BrandID and CreatedAt are never changed.
	// Errors: ErrPromotionNotFound.
	Update(ctx context.Context, p *Promotion) (*Promotion, error)

	// Delete removes a promotion by ID.
	// Errors: ErrPromotionNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the record.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsBySlug checks whether a slug is taken.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

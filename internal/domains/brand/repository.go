package brand

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for brands. The catalog runs on an
// in-memory implementation (repository/memory.go); all state is rebuilt by
// the seed loader on process start.
type Repository interface {
	// Create inserts a new brand, assigning ID and CreatedAt.
	// Errors: ErrDuplicateSlug if the slug is taken.
	Create(ctx context.Context, b *Brand) (*Brand, error)

	// GetByID retrieves a brand by UUID.
	// Errors: ErrBrandNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Brand, error)

	// GetBySlug retrieves a brand by URL slug.
	// Errors: ErrBrandNotFound.
	GetBySlug(ctx context.Context, slug string) (*Brand, error)

	// GetAll returns every brand in insertion order.
	GetAll(ctx context.Context) ([]Brand, error)

	// Update replaces the mutable fields of an existing brand.
	// Slug and CreatedAt are never changed.
	// Errors: ErrBrandNotFound.
	Update(ctx context.Context, b *Brand) (*Brand, error)

	// Delete removes a brand by ID.
	// Errors: ErrBrandNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the record.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsBySlug checks whether a slug is taken.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

package brand

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Brand domain.
type Service interface {
	// Create creates a brand. Slug is generated from the name when the
	// request leaves it empty; uniqueness is enforced either way.
	// Errors: validation.Errors, ErrInvalidSlug, ErrDuplicateSlug.
	Create(ctx context.Context, req *CreateBrandRequest) (*Brand, error)

	// GetByID retrieves a brand by UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*Brand, error)

	// GetBySlug retrieves a brand by slug, read-through cached.
	GetBySlug(ctx context.Context, slug string) (*Brand, error)

	// GetAll lists every brand in insertion order.
	GetAll(ctx context.Context) ([]Brand, error)

	// Update applies a partial update. The slug never changes.
	// Errors: ErrBrandNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateBrandRequest) (*Brand, error)

	// Delete removes a brand that has no promotions left.
	// Errors: ErrBrandNotFound, ErrBrandHasPromotion.
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"promospedia/internal/domains/brand"
)

// MemoryRepository keeps all brands in process memory. A map gives O(1) ID
// lookup; the id slice preserves insertion order so listings are
// deterministic. Guarded by an RWMutex since gin runs handlers on
// concurrent goroutines.
type MemoryRepository struct {
	mu     sync.RWMutex
	brands map[uuid.UUID]*brand.Brand
	order  []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		brands: make(map[uuid.UUID]*brand.Brand),
	}
}

func (r *MemoryRepository) Create(_ context.Context, b *brand.Brand) (*brand.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slugTaken(b.Slug) {
		return nil, brand.ErrDuplicateSlug
	}

	stored := b.Clone()
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.brands[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*brand.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.brands[id]
	if !ok {
		return nil, brand.ErrBrandNotFound
	}
	return b.Clone(), nil
}

func (r *MemoryRepository) GetBySlug(_ context.Context, slug string) (*brand.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if b := r.brands[id]; b.Slug == slug {
			return b.Clone(), nil
		}
	}
	return nil, brand.ErrBrandNotFound
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]brand.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]brand.Brand, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.brands[id].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, b *brand.Brand) (*brand.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.brands[b.ID]
	if !ok {
		return nil, brand.ErrBrandNotFound
	}

	stored := b.Clone()
	stored.Slug = current.Slug
	stored.CreatedAt = current.CreatedAt

	r.brands[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[id]; !ok {
		return brand.ErrBrandNotFound
	}

	delete(r.brands, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.brands[id]
	return ok, nil
}

func (r *MemoryRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slugTaken(slug), nil
}

// slugTaken must be called with the lock held.
func (r *MemoryRepository) slugTaken(slug string) bool {
	for _, b := range r.brands {
		if b.Slug == slug {
			return true
		}
	}
	return false
}

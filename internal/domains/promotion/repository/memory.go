package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"promospedia/internal/domains/promotion"
)

// MemoryRepository keeps all promotions in process memory, mirroring the
// brand repository: map for ID lookup, id slice for deterministic
// insertion order, RWMutex for concurrent handlers. Filters and search are
// linear scans, which is fine at catalog scale (tens of records); indexing
// by brandID/slug is the upgrade path if the dataset ever grows.
type MemoryRepository struct {
	mu         sync.RWMutex
	promotions map[uuid.UUID]*promotion.Promotion
	order      []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		promotions: make(map[uuid.UUID]*promotion.Promotion),
	}
}

func (r *MemoryRepository) Create(_ context.Context, p *promotion.Promotion) (*promotion.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slugTaken(p.Slug) {
		return nil, promotion.ErrDuplicateSlug
	}

	stored := p.Clone()
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.promotions[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.promotions[id]
	if !ok {
		return nil, promotion.ErrPromotionNotFound
	}
	return p.Clone(), nil
}

func (r *MemoryRepository) GetBySlug(_ context.Context, slug string) (*promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.promotions[id]; p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return nil, promotion.ErrPromotionNotFound
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]promotion.Promotion, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.promotions[id].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) GetAllByBrandID(_ context.Context, brandID uuid.UUID) ([]promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]promotion.Promotion, 0)
	for _, id := range r.order {
		if p := r.promotions[id]; p.BrandID == brandID {
			out = append(out, *p.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) CountByBrandID(_ context.Context, brandID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, p := range r.promotions {
		if p.BrandID == brandID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) Search(_ context.Context, query string) ([]promotion.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]promotion.Promotion, 0)
	for _, id := range r.order {
		p := r.promotions[id]
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, *p.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, p *promotion.Promotion) (*promotion.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.promotions[p.ID]
	if !ok {
		return nil, promotion.ErrPromotionNotFound
	}

	stored := p.Clone()
	stored.Slug = current.Slug
	stored.BrandID = current.BrandID
	stored.CreatedAt = current.CreatedAt

	r.promotions[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.promotions[id]; !ok {
		return promotion.ErrPromotionNotFound
	}

	delete(r.promotions, id)
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

	_, ok := r.promotions[id]
	return ok, nil
}

func (r *MemoryRepository) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slugTaken(slug), nil
}

// slugTaken must be called with the lock held.
func (r *MemoryRepository) slugTaken(slug string) bool {
	for _, p := range r.promotions {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

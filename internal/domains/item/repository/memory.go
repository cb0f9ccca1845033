package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"promospedia/internal/domains/item"
)

// MemoryRepository keeps all promotion items in process memory. Same shape
// as the brand/promotion repositories: ID map plus insertion-order slice,
// RWMutex guarded, linear-scan filters.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*item.PromotionItem
	order []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[uuid.UUID]*item.PromotionItem),
	}
}

func (r *MemoryRepository) Create(_ context.Context, i *item.PromotionItem) (*item.PromotionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := i.Clone()
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.items[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return stored.Clone(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*item.PromotionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.items[id]
	if !ok {
		return nil, item.ErrItemNotFound
	}
	return i.Clone(), nil
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]item.PromotionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]item.PromotionItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.items[id].Clone())
	}
	return out, nil
}

func (r *MemoryRepository) GetAllByPromotionID(_ context.Context, promotionID uuid.UUID) ([]item.PromotionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]item.PromotionItem, 0)
	for _, id := range r.order {
		if i := r.items[id]; i.PromotionID == promotionID {
			out = append(out, *i.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) CountByPromotionID(_ context.Context, promotionID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, i := range r.items {
		if i.PromotionID == promotionID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) Search(_ context.Context, query string) ([]item.PromotionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]item.PromotionItem, 0)
	for _, id := range r.order {
		i := r.items[id]
		if strings.Contains(strings.ToLower(i.Name), q) {
			out = append(out, *i.Clone())
			continue
		}
		if i.Description != nil && strings.Contains(strings.ToLower(*i.Description), q) {
			out = append(out, *i.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, i *item.PromotionItem) (*item.PromotionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[i.ID]
	if !ok {
		return nil, item.ErrItemNotFound
	}

	stored := i.Clone()
	stored.PromotionID = current.PromotionID
	stored.CreatedAt = current.CreatedAt

	r.items[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return item.ErrItemNotFound
	}

	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

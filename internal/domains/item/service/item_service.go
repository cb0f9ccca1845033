package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promospedia/internal/domains/item"
	"promospedia/internal/domains/promotion"
)

// itemService implements item.Service. The promotion repository backs the
// foreign key check at creation time.
type itemService struct {
	repo       item.Repository
	promotions promotion.Repository
}

func NewItemService(repo item.Repository, promotions promotion.Repository) item.Service {
	return &itemService{
		repo:       repo,
		promotions: promotions,
	}
}

func (s *itemService) Create(ctx context.Context, req *item.CreateItemRequest) (*item.PromotionItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	promotionExists, err := s.promotions.ExistsByID(ctx, req.PromotionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check promotion reference: %w", err)
	}
	if !promotionExists {
		return nil, item.ErrUnknownPromotion
	}

	created, err := s.repo.Create(ctx, &item.PromotionItem{
		PromotionID: req.PromotionID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rarity:      req.Rarity,
		ItemNumber:  req.ItemNumber,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*item.PromotionItem, error) {
	if id == uuid.Nil {
		return nil, item.ErrItemNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *itemService) GetAll(ctx context.Context) ([]item.PromotionItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *itemService) GetAllByPromotionID(ctx context.Context, promotionID uuid.UUID) ([]item.PromotionItem, error) {
	return s.repo.GetAllByPromotionID(ctx, promotionID)
}

func (s *itemService) Search(ctx context.Context, query string) ([]item.PromotionItem, error) {
	return s.repo.Search(ctx, query)
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req *item.UpdateItemRequest) (*item.PromotionItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.ImageURL != nil {
		current.ImageURL = req.ImageURL
	}
	if req.Rarity != nil {
		current.Rarity = req.Rarity
	}
	if req.ItemNumber != nil {
		current.ItemNumber = req.ItemNumber
	}
	if req.Metadata != nil {
		current.Metadata = req.Metadata
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

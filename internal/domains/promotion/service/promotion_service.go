package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"promospedia/internal/domains/brand"
	"promospedia/internal/domains/item"
	"promospedia/internal/domains/promotion"
	"promospedia/internal/shared/utils"
	"promospedia/pkg/cache"
)

const (
	slugCacheTTL    = 5 * time.Minute
	slugCachePrefix = "promotion:slug:"
)

// promotionService implements promotion.Service. It holds the brand
// repository so foreign keys are checked at creation time instead of
// letting dangling references into the store, and the item repository for
// the deletion guard.
type promotionService struct {
	repo   promotion.Repository
	brands brand.Repository
	items  item.Repository
	cache  cache.Cache
}

func NewPromotionService(repo promotion.Repository, brands brand.Repository, items item.Repository, c cache.Cache) promotion.Service {
	return &promotionService{
		repo:   repo,
		brands: brands,
		items:  items,
		cache:  c,
	}
}

func (s *promotionService) Create(ctx context.Context, req *promotion.CreatePromotionRequest) (*promotion.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brandExists, err := s.brands.ExistsByID(ctx, req.BrandID)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand reference: %w", err)
	}
	if !brandExists {
		return nil, promotion.ErrUnknownBrand
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	if !utils.IsValidSlug(slug) {
		return nil, promotion.ErrInvalidSlug
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, promotion.ErrDuplicateSlug
	}

	created, err := s.repo.Create(ctx, &promotion.Promotion{
		BrandID:              req.BrandID,
		Name:                 strings.TrimSpace(req.Name),
		Slug:                 slug,
		Description:          req.Description,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
		WrapperPhotoURL:      req.WrapperPhotoURL,
		WrapperPhotoURLs:     req.WrapperPhotoURLs,
		PromotionImageURLs:   req.PromotionImageURLs,
		YoutubeCommercialURL: req.YoutubeCommercialURL,
		BuffetGamesVideoURL:  req.BuffetGamesVideoURL,
		StartYear:            req.StartYear,
		EndYear:              req.EndYear,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return created, nil
}

func (s *promotionService) GetByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	if id == uuid.Nil {
		return nil, promotion.ErrPromotionNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *promotionService) GetBySlug(ctx context.Context, slug string) (*promotion.Promotion, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, promotion.ErrPromotionNotFound
	}

	var cached promotion.Promotion
	found, err := s.cache.Get(ctx, slugCachePrefix+slug, &cached)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("promotion cache read failed")
	}
	if found {
		return &cached, nil
	}

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, slugCachePrefix+slug, p, slugCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("promotion cache write failed")
	}
	return p, nil
}

func (s *promotionService) GetAll(ctx context.Context) ([]promotion.Promotion, error) {
	return s.repo.GetAll(ctx)
}

func (s *promotionService) GetAllByBrandID(ctx context.Context, brandID uuid.UUID) ([]promotion.Promotion, error) {
	return s.repo.GetAllByBrandID(ctx, brandID)
}

func (s *promotionService) Search(ctx context.Context, query string) ([]promotion.Promotion, error) {
	return s.repo.Search(ctx, query)
}

func (s *promotionService) Update(ctx context.Context, id uuid.UUID, req *promotion.UpdatePromotionRequest) (*promotion.Promotion, error) {
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
		current.Description = *req.Description
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.ImageURL != nil {
		current.ImageURL = req.ImageURL
	}
	if req.WrapperPhotoURL != nil {
		current.WrapperPhotoURL = req.WrapperPhotoURL
	}
	if req.WrapperPhotoURLs != nil {
		current.WrapperPhotoURLs = req.WrapperPhotoURLs
	}
	if req.PromotionImageURLs != nil {
		current.PromotionImageURLs = req.PromotionImageURLs
	}
	if req.YoutubeCommercialURL != nil {
		current.YoutubeCommercialURL = req.YoutubeCommercialURL
	}
	if req.BuffetGamesVideoURL != nil {
		current.BuffetGamesVideoURL = req.BuffetGamesVideoURL
	}
	if req.StartYear != nil {
		current.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		current.EndYear = req.EndYear
	}

	// Re-check the range after merging so a partial update cannot leave
	// an end year before the start year.
	if current.EndYear != nil && *current.EndYear < current.StartYear {
		return nil, promotion.ErrInvalidYearRange
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	s.invalidate(ctx, updated.Slug)
	return updated, nil
}

func (s *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.items.CountByPromotionID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count linked items: %w", err)
	}
	if count > 0 {
		return promotion.ErrPromotionHasItems
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, p.Slug)
	return nil
}

func (s *promotionService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.Delete(ctx, slugCachePrefix+slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("promotion cache invalidation failed")
	}
}

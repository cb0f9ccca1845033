package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"promospedia/internal/domains/brand"
	"promospedia/internal/domains/promotion"
	"promospedia/internal/shared/utils"
	"promospedia/pkg/cache"
)

const (
	slugCacheTTL    = 5 * time.Minute
	slugCachePrefix = "brand:slug:"
)

// brandService implements brand.Service.
type brandService struct {
	repo       brand.Repository
	promotions promotion.Repository // deletion guard only
	cache      cache.Cache
}

func NewBrandService(repo brand.Repository, promotions promotion.Repository, c cache.Cache) brand.Service {
	return &brandService{
		repo:       repo,
		promotions: promotions,
		cache:      c,
	}
}

func (s *brandService) Create(ctx context.Context, req *brand.CreateBrandRequest) (*brand.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	if !utils.IsValidSlug(slug) {
		return nil, brand.ErrInvalidSlug
	}

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, brand.ErrDuplicateSlug
	}

	created, err := s.repo.Create(ctx, &brand.Brand{
		Name:         strings.TrimSpace(req.Name),
		Slug:         slug,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		Founded:      req.Founded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return created, nil
}

func (s *brandService) GetByID(ctx context.Context, id uuid.UUID) (*brand.Brand, error) {
	if id == uuid.Nil {
		return nil, brand.ErrBrandNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *brandService) GetBySlug(ctx context.Context, slug string) (*brand.Brand, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, brand.ErrBrandNotFound
	}

	var cached brand.Brand
	found, err := s.cache.Get(ctx, slugCachePrefix+slug, &cached)
	if err != nil {
		// A broken cache must never break reads.
		log.Warn().Err(err).Str("slug", slug).Msg("brand cache read failed")
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, slugCachePrefix+slug, b, slugCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("brand cache write failed")
	}
	return b, nil
}

func (s *brandService) GetAll(ctx context.Context) ([]brand.Brand, error) {
	return s.repo.GetAll(ctx)
}

func (s *brandService) Update(ctx context.Context, id uuid.UUID, req *brand.UpdateBrandRequest) (*brand.Brand, error) {
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
	if req.LogoURL != nil {
		current.LogoURL = req.LogoURL
	}
	if req.PrimaryColor != nil {
		current.PrimaryColor = *req.PrimaryColor
	}
	if req.Founded != nil {
		current.Founded = req.Founded
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	s.invalidate(ctx, updated.Slug)
	return updated, nil
}

func (s *brandService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.promotions.CountByBrandID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count linked promotions: %w", err)
	}
	if count > 0 {
		return brand.ErrBrandHasPromotion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, b.Slug)
	return nil
}

func (s *brandService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.Delete(ctx, slugCachePrefix+slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("brand cache invalidation failed")
	}
}

// Package seed rebuilds the catalog from an embedded snapshot. The store is
// in-memory, so every process start begins empty; loading the snapshot gives
// the API real content to serve immediately.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"promospedia/internal/domains/brand"
	"promospedia/internal/domains/item"
	"promospedia/internal/domains/promotion"
)

//go:embed data/catalog.json
var catalogJSON []byte

type brandSeed struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	PrimaryColor string  `json:"primaryColor"`
	Founded      *int    `json:"founded,omitempty"`
}

type promotionSeed struct {
	BrandSlug   string `json:"brandSlug"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category"`

	ImageURL             *string  `json:"imageUrl,omitempty"`
	WrapperPhotoURL      *string  `json:"wrapperPhotoUrl,omitempty"`
	WrapperPhotoURLs     []string `json:"wrapperPhotosUrls,omitempty"`
	PromotionImageURLs   []string `json:"promotionImagesUrls,omitempty"`
	YoutubeCommercialURL *string  `json:"youtubeCommercialUrl,omitempty"`
	BuffetGamesVideoURL  *string  `json:"buffetGamesVideoUrl,omitempty"`

	StartYear int  `json:"startYear"`
	EndYear   *int `json:"endYear,omitempty"`
}

type itemSeed struct {
	PromotionSlug string `json:"promotionSlug"`
	Name          string `json:"name"`

	Description *string                `json:"description,omitempty"`
	ImageURL    *string                `json:"imageUrl,omitempty"`
	Rarity      *string                `json:"rarity,omitempty"`
	ItemNumber  *int                   `json:"itemNumber,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type catalog struct {
	Brands     []brandSeed     `json:"brands"`
	Promotions []promotionSeed `json:"promotions"`
	Items      []itemSeed      `json:"items"`
}

// Load inserts the embedded catalog through the domain services so every
// invariant (slug uniqueness, parent existence, year range) is enforced on
// the seed data too. Records whose slug already exists are skipped, so
// calling Load twice is harmless.
func Load(ctx context.Context, brands brand.Service, promotions promotion.Service, items item.Service) error {
	var data catalog
	if err := json.Unmarshal(catalogJSON, &data); err != nil {
		return fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	var created, skipped int

	for _, b := range data.Brands {
		_, err := brands.Create(ctx, &brand.CreateBrandRequest{
			Name:         b.Name,
			Slug:         b.Slug,
			Description:  b.Description,
			LogoURL:      b.LogoURL,
			PrimaryColor: b.PrimaryColor,
			Founded:      b.Founded,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, brand.ErrDuplicateSlug):
			skipped++
		default:
			return fmt.Errorf("failed to seed brand %s: %w", b.Slug, err)
		}
	}

	for _, p := range data.Promotions {
		parent, err := brands.GetBySlug(ctx, p.BrandSlug)
		if err != nil {
			return fmt.Errorf("seed promotion %s references unknown brand %s: %w", p.Slug, p.BrandSlug, err)
		}

		_, err = promotions.Create(ctx, &promotion.CreatePromotionRequest{
			BrandID:              parent.ID,
			Name:                 p.Name,
			Slug:                 p.Slug,
			Description:          p.Description,
			Category:             p.Category,
			ImageURL:             p.ImageURL,
			WrapperPhotoURL:      p.WrapperPhotoURL,
			WrapperPhotoURLs:     p.WrapperPhotoURLs,
			PromotionImageURLs:   p.PromotionImageURLs,
			YoutubeCommercialURL: p.YoutubeCommercialURL,
			BuffetGamesVideoURL:  p.BuffetGamesVideoURL,
			StartYear:            p.StartYear,
			EndYear:              p.EndYear,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, promotion.ErrDuplicateSlug):
			skipped++
		default:
			return fmt.Errorf("failed to seed promotion %s: %w", p.Slug, err)
		}
	}

	for _, i := range data.Items {
		parent, err := promotions.GetBySlug(ctx, i.PromotionSlug)
		if err != nil {
			return fmt.Errorf("seed item %q references unknown promotion %s: %w", i.Name, i.PromotionSlug, err)
		}

		// Items have no slug, so re-seeding would duplicate them. Seed a
		// promotion's items only while it is still empty.
		existing, err := items.GetAllByPromotionID(ctx, parent.ID)
		if err != nil {
			return fmt.Errorf("failed to check items for %s: %w", i.PromotionSlug, err)
		}
		if containsItemNamed(existing, i.Name) {
			skipped++
			continue
		}

		if _, err := items.Create(ctx, &item.CreateItemRequest{
			PromotionID: parent.ID,
			Name:        i.Name,
			Description: i.Description,
			ImageURL:    i.ImageURL,
			Rarity:      i.Rarity,
			ItemNumber:  i.ItemNumber,
			Metadata:    i.Metadata,
		}); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", i.Name, err)
		}
		created++
	}

	log.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("catalog seed loaded")
	return nil
}

func containsItemNamed(items []item.PromotionItem, name string) bool {
	for _, i := range items {
		if i.Name == name {
			return true
		}
	}
	return false
}

package promotion

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a themed collectible campaign run by a brand over a year
// range ("Tazos", "Funki Punky", ...). Media fields are all optional and
// independent; URLs are opaque strings owned by the object storage gateway.
type Promotion struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brandId"`

	Name        string `json:"name"`
	Slug        string `json:"slug"` // globally unique across all promotions
	Description string `json:"description"`
	Category    string `json:"category"` // tazos, stickers, spinners, figuras, ...

	ImageURL             *string  `json:"imageUrl"`
	WrapperPhotoURL      *string  `json:"wrapperPhotoUrl"`
	WrapperPhotoURLs     []string `json:"wrapperPhotosUrls"`
	PromotionImageURLs   []string `json:"promotionImagesUrls"`
	YoutubeCommercialURL *string  `json:"youtubeCommercialUrl"`
	BuffetGamesVideoURL  *string  `json:"buffetGamesVideoUrl"`

	StartYear int  `json:"startYear"`
	EndYear   *int `json:"endYear"` // nil while a campaign is open-ended

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy; repositories hand out clones only.
func (p *Promotion) Clone() *Promotion {
	clone := *p
	clone.ImageURL = cloneStringPtr(p.ImageURL)
	clone.WrapperPhotoURL = cloneStringPtr(p.WrapperPhotoURL)
	clone.YoutubeCommercialURL = cloneStringPtr(p.YoutubeCommercialURL)
	clone.BuffetGamesVideoURL = cloneStringPtr(p.BuffetGamesVideoURL)
	if p.WrapperPhotoURLs != nil {
		clone.WrapperPhotoURLs = append([]string(nil), p.WrapperPhotoURLs...)
	}
	if p.PromotionImageURLs != nil {
		clone.PromotionImageURLs = append([]string(nil), p.PromotionImageURLs...)
	}
	if p.EndYear != nil {
		v := *p.EndYear
		clone.EndYear = &v
	}
	return &clone
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

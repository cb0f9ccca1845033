package item

import (
	"time"

	"github.com/google/uuid"
)

// Rarity tiers form a closed set; items without a tier keep Rarity nil.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RaritySuperRare = "super_rare"
	RarityUltraRare = "ultra_rare"
)

// Rarities returns the valid rarity tiers.
func Rarities() []interface{} {
	return []interface{}{RarityCommon, RarityRare, RaritySuperRare, RarityUltraRare}
}

// PromotionItem is a single collectible unit inside a promotion's
// collection. Metadata is a schemaless bag because item attributes vary per
// promotion theme (character, material, breed, ...).
type PromotionItem struct {
	ID          uuid.UUID `json:"id"`
	PromotionID uuid.UUID `json:"promotionId"`

	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Rarity      *string `json:"rarity"`
	ItemNumber  *int    `json:"itemNumber"` // ordinal position within the collection

	Metadata map[string]interface{} `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy; repositories hand out clones only.
// Metadata values are copied one level deep, which covers the flat
// key-value bags the catalog stores.
func (i *PromotionItem) Clone() *PromotionItem {
	clone := *i
	clone.Description = cloneStringPtr(i.Description)
	clone.ImageURL = cloneStringPtr(i.ImageURL)
	clone.Rarity = cloneStringPtr(i.Rarity)
	if i.ItemNumber != nil {
		v := *i.ItemNumber
		clone.ItemNumber = &v
	}
	if i.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(i.Metadata))
		for k, v := range i.Metadata {
			clone.Metadata[k] = v
		}
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

package brand

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a snack manufacturer that runs collectible promotions.
// JSON field names match the public API wire format.
type Brand struct {
	ID uuid.UUID `json:"id"`

	Name string `json:"name"`
	Slug string `json:"slug"` // URL-friendly, unique, immutable after creation

	Description  string  `json:"description"`
	LogoURL      *string `json:"logoUrl"`
	PrimaryColor string  `json:"primaryColor"`
	Founded      *int    `json:"founded"`

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so repository callers can never mutate
// stored state through a returned pointer.
func (b *Brand) Clone() *Brand {
	clone := *b
	if b.LogoURL != nil {
		v := *b.LogoURL
		clone.LogoURL = &v
	}
	if b.Founded != nil {
		v := *b.Founded
		clone.Founded = &v
	}
	return &clone
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promospedia/internal/domains/item"
	itemRepo "promospedia/internal/domains/item/repository"
	"promospedia/internal/domains/promotion"
	promotionRepo "promospedia/internal/domains/promotion/repository"
)

func newTestService(t *testing.T) (item.Service, *promotion.Promotion) {
	t.Helper()
	promotions := promotionRepo.NewMemoryRepository()
	items := itemRepo.NewMemoryRepository()

	p, err := promotions.Create(context.Background(), &promotion.Promotion{
		BrandID:   uuid.New(),
		Name:      "Bob Esponja Llaveros",
		Slug:      "bob-esponja-2005",
		StartYear: 2005,
	})
	require.NoError(t, err)

	return NewItemService(items, promotions), p
}

func TestItemService_Create(t *testing.T) {
	svc, p := newTestService(t)

	rarity := item.RarityCommon
	number := 1
	created, err := svc.Create(context.Background(), &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Llavero Bob Esponja",
		Rarity:      &rarity,
		ItemNumber:  &number,
		Metadata:    map[string]interface{}{"material": "goma"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "goma", created.Metadata["material"])
}

func TestItemService_CreateRejectsUnknownPromotion(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &item.CreateItemRequest{
		PromotionID: uuid.New(),
		Name:        "Llavero Bob Esponja",
	})
	assert.ErrorIs(t, err, item.ErrUnknownPromotion)
}

func TestItemService_CreateRejectsBadRarity(t *testing.T) {
	svc, p := newTestService(t)

	rarity := "legendary"
	_, err := svc.Create(context.Background(), &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Llavero Bob Esponja",
		Rarity:      &rarity,
	})
	assert.Error(t, err)
}

func TestItemService_SearchSubstring(t *testing.T) {
	svc, p := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Llavero Bob Esponja",
	})
	require.NoError(t, err)

	desc := "Tazo holográfico de Goku"
	_, err = svc.Create(ctx, &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Goku Super Saiyan",
		Description: &desc,
	})
	require.NoError(t, err)

	// Substring, case-insensitive, over the name.
	results, err := svc.Search(ctx, "espon")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Llavero Bob Esponja", results[0].Name)

	// Over the description too.
	results, err = svc.Search(ctx, "holográfico")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Goku Super Saiyan", results[0].Name)
}

func TestItemService_GetAllInsertionOrder(t *testing.T) {
	svc, p := newTestService(t)
	ctx := context.Background()

	names := []string{"Llavero Bob Esponja", "Llavero Patricio", "Llavero Arenita"}
	for _, name := range names {
		_, err := svc.Create(ctx, &item.CreateItemRequest{
			PromotionID: p.ID,
			Name:        name,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, it := range all {
		assert.Equal(t, names[i], it.Name)
	}
}

func TestItemService_UpdateKeepsPromotionID(t *testing.T) {
	svc, p := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Llavero Bob Esponja",
	})
	require.NoError(t, err)

	name := "Llavero Patricio"
	updated, err := svc.Update(ctx, created.ID, &item.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Llavero Patricio", updated.Name)
	assert.Equal(t, p.ID, updated.PromotionID)
}

func TestItemService_Delete(t *testing.T) {
	svc, p := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &item.CreateItemRequest{
		PromotionID: p.ID,
		Name:        "Llavero Bob Esponja",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

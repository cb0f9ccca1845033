package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promospedia/internal/domains/brand"
	brandRepo "promospedia/internal/domains/brand/repository"
	"promospedia/internal/domains/promotion"
	promotionRepo "promospedia/internal/domains/promotion/repository"
	"promospedia/pkg/cache"
)

func newTestService(t *testing.T) (brand.Service, brand.Repository, promotion.Repository) {
	t.Helper()
	brands := brandRepo.NewMemoryRepository()
	promotions := promotionRepo.NewMemoryRepository()
	svc := NewBrandService(brands, promotions, cache.NewMemory())
	return svc, brands, promotions
}

func validCreateRequest() *brand.CreateBrandRequest {
	return &brand.CreateBrandRequest{
		Name:         "Sabritas",
		Description:  "La marca líder en botanas saladas de México.",
		PrimaryColor: "#E31E24",
	}
}

func TestBrandService_CreateGeneratesSlug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.Name = "Vualá"
	req.Description = "Marca de helados mexicana."

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "vuala", created.Slug, "diacritics fold into ascii")
}

func TestBrandService_CreateRejectsDuplicateSlug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Name = "Sabritas Clásicas"
	req.Slug = "sabritas"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, brand.ErrDuplicateSlug)
}

func TestBrandService_CreateRejectsBadColor(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validCreateRequest()
	req.PrimaryColor = "red"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestBrandService_GetBySlugIsCached(t *testing.T) {
	svc, brands, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	first, err := svc.GetBySlug(ctx, "sabritas")
	require.NoError(t, err)
	assert.Equal(t, created.ID, first.ID)

	// Remove the record under the service; the cached read still serves.
	require.NoError(t, brands.Delete(ctx, created.ID))

	second, err := svc.GetBySlug(ctx, "sabritas")
	require.NoError(t, err)
	assert.Equal(t, created.ID, second.ID)
}

func TestBrandService_UpdateKeepsSlug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	name := "Sabritas Renovada"
	updated, err := svc.Update(ctx, created.ID, &brand.UpdateBrandRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sabritas Renovada", updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Description, updated.Description, "untouched fields survive partial updates")
}

func TestBrandService_DeleteRefusedWithPromotions(t *testing.T) {
	svc, _, promotions := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = promotions.Create(ctx, &promotion.Promotion{
		BrandID:   created.ID,
		Name:      "Tazos",
		Slug:      "tazos",
		StartYear: 1994,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, brand.ErrBrandHasPromotion)

	// Still retrievable after the refused delete.
	_, err = svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestBrandService_DeleteUnknownBrand(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}

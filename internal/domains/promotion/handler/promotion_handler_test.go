package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promospedia/internal/domains/brand"
	brandRepo "promospedia/internal/domains/brand/repository"
	"promospedia/internal/domains/item"
	itemRepo "promospedia/internal/domains/item/repository"
	itemService "promospedia/internal/domains/item/service"
	"promospedia/internal/domains/promotion"
	promotionRepo "promospedia/internal/domains/promotion/repository"
	promotionService "promospedia/internal/domains/promotion/service"
	"promospedia/pkg/cache"
)

func newTestRouter(t *testing.T) (*gin.Engine, promotion.Service, *brand.Brand) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	brands := brandRepo.NewMemoryRepository()
	promotions := promotionRepo.NewMemoryRepository()
	items := itemRepo.NewMemoryRepository()

	b, err := brands.Create(context.Background(), &brand.Brand{Name: "Vualá", Slug: "vuala"})
	require.NoError(t, err)

	promoSvc := promotionService.NewPromotionService(promotions, brands, items, cache.NewMemory())
	itemSvc := itemService.NewItemService(items, promotions)
	h := NewPromotionHandler(promoSvc, itemSvc)

	router := gin.New()
	router.POST("/api/v1/promotions", h.Create)
	router.GET("/api/v1/search/promotions", h.Search)
	router.GET("/api/v1/promotions/:slug", h.GetBySlug)
	router.GET("/api/v1/promotions/:slug/items", h.GetItems)
	return router, promoSvc, b
}

func seedPromotion(t *testing.T, svc promotion.Service, b *brand.Brand) *promotion.Promotion {
	t.Helper()
	p, err := svc.Create(context.Background(), &promotion.CreatePromotionRequest{
		BrandID:     b.ID,
		Name:        "Fonomanía 2.0",
		Description: "Accesorios decorativos para celulares.",
		Category:    "accesorios",
		StartYear:   2008,
	})
	require.NoError(t, err)
	return p
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPromotionHandler_CreateMissingNameIsValidationError(t *testing.T) {
	router, _, b := newTestRouter(t)

	w := postJSON(router, "/api/v1/promotions", map[string]interface{}{
		"brandId":     b.ID.String(),
		"description": "Campaña sin nombre",
		"category":    "tazos",
		"startYear":   1994,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestPromotionHandler_CreateOutOfRangeYearIsValidationError(t *testing.T) {
	router, _, b := newTestRouter(t)

	w := postJSON(router, "/api/v1/promotions", map[string]interface{}{
		"brandId":     b.ID.String(),
		"name":        "Tazos",
		"description": "Discos de cartón",
		"category":    "tazos",
		"startYear":   1850,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestPromotionHandler_SearchRequiresQuery(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/promotions", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromotionHandler_Search(t *testing.T) {
	router, svc, b := newTestRouter(t)
	seedPromotion(t, svc, b)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/promotions?q=fonoman", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []promotion.Promotion `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, "fonomania-20", resp.Data[0].Slug)
}

func TestPromotionHandler_GetBySlug(t *testing.T) {
	router, svc, b := newTestRouter(t)
	seedPromotion(t, svc, b)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/promotions/fonomania-20", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/promotions/ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPromotionHandler_GetItemsResolvesSlugFirst(t *testing.T) {
	router, svc, b := newTestRouter(t)
	seedPromotion(t, svc, b)

	// Existing promotion without items: 200 with an empty list.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/promotions/fonomania-20/items", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []item.PromotionItem `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Meta.Total)
	assert.NotNil(t, resp.Data)

	// Unknown promotion: 404, not an empty list.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/promotions/ghost/items", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

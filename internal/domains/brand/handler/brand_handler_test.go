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
	brandService "promospedia/internal/domains/brand/service"
	itemRepo "promospedia/internal/domains/item/repository"
	promotionRepo "promospedia/internal/domains/promotion/repository"
	promotionService "promospedia/internal/domains/promotion/service"
	"promospedia/pkg/cache"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func newTestRouter(t *testing.T) (*gin.Engine, brand.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	brands := brandRepo.NewMemoryRepository()
	promotions := promotionRepo.NewMemoryRepository()
	items := itemRepo.NewMemoryRepository()
	c := cache.NewMemory()

	brandSvc := brandService.NewBrandService(brands, promotions, c)
	promoSvc := promotionService.NewPromotionService(promotions, brands, items, c)
	h := NewBrandHandler(brandSvc, promoSvc)

	router := gin.New()
	router.POST("/api/v1/brands", h.Create)
	router.GET("/api/v1/brands", h.GetAll)
	router.GET("/api/v1/brands/:slug", h.GetBySlug)
	router.GET("/api/v1/brands/:slug/promotions", h.GetPromotions)
	router.DELETE("/api/v1/brands/:id", h.Delete)
	return router, brandSvc
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBrandHandler_CreateAndFetch(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/brands", map[string]interface{}{
		"name":         "Sabritas",
		"description":  "Botanas saladas de México",
		"primaryColor": "#E31E24",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)

	w = doRequest(router, http.MethodGet, "/api/v1/brands/sabritas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	var b brand.Brand
	require.NoError(t, json.Unmarshal(fetched.Data, &b))
	assert.Equal(t, "Sabritas", b.Name)
	assert.Equal(t, "sabritas", b.Slug)
}

func TestBrandHandler_GetBySlugNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/brands/no-such-brand", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BRAND_NOT_FOUND", resp.Error.Code)
}

func TestBrandHandler_CreateDuplicateSlugConflict(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := map[string]interface{}{
		"name":         "Barcel",
		"description":  "Dulces y botanas",
		"primaryColor": "#00B04F",
	}
	w := doRequest(router, http.MethodPost, "/api/v1/brands", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/brands", payload)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_SLUG", resp.Error.Code)
}

func TestBrandHandler_CreateMissingNameIsValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/brands", map[string]interface{}{
		"description":  "sin nombre",
		"primaryColor": "#FFFFFF",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestBrandHandler_CreateBadColorIsValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/brands", map[string]interface{}{
		"name":         "Sabritas",
		"description":  "Botanas saladas",
		"primaryColor": "rojo",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestBrandHandler_GetAllWithMeta(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	for _, name := range []string{"Sabritas", "Gamesa"} {
		_, err := svc.Create(ctx, &brand.CreateBrandRequest{
			Name:         name,
			Description:  "Marca mexicana",
			PrimaryColor: "#FFFFFF",
		})
		require.NoError(t, err)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/brands", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestBrandHandler_GetPromotionsUnknownBrand(t *testing.T) {
	router, _ := newTestRouter(t)

	// Unknown brand is a 404, not an empty list.
	w := doRequest(router, http.MethodGet, "/api/v1/brands/ghost/promotions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBrandHandler_DeleteInvalidUUID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodDelete, "/api/v1/brands/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

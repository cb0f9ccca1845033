package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemRepo "promospedia/internal/domains/item/repository"
	itemService "promospedia/internal/domains/item/service"
	"promospedia/internal/domains/promotion"
	promotionRepo "promospedia/internal/domains/promotion/repository"
)

func newTestRouter(t *testing.T) (*gin.Engine, *promotion.Promotion) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	promotions := promotionRepo.NewMemoryRepository()
	items := itemRepo.NewMemoryRepository()

	p, err := promotions.Create(context.Background(), &promotion.Promotion{
		BrandID:   uuid.New(),
		Name:      "Tazos",
		Slug:      "tazos",
		StartYear: 1994,
	})
	require.NoError(t, err)

	h := NewItemHandler(itemService.NewItemService(items, promotions))

	router := gin.New()
	router.POST("/api/v1/items", h.Create)
	router.GET("/api/v1/items/:id", h.GetByID)
	return router, p
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestItemHandler_Create(t *testing.T) {
	router, p := newTestRouter(t)

	w := postJSON(router, "/api/v1/items", map[string]interface{}{
		"promotionId": p.ID.String(),
		"name":        "Goku Super Saiyan",
		"rarity":      "super_rare",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestItemHandler_CreateBadRarityIsValidationError(t *testing.T) {
	router, p := newTestRouter(t)

	w := postJSON(router, "/api/v1/items", map[string]interface{}{
		"promotionId": p.ID.String(),
		"name":        "Goku Super Saiyan",
		"rarity":      "legendary",
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

func TestItemHandler_CreateMissingNameIsValidationError(t *testing.T) {
	router, p := newTestRouter(t)

	w := postJSON(router, "/api/v1/items", map[string]interface{}{
		"promotionId": p.ID.String(),
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

func TestItemHandler_GetByIDNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

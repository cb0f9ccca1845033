package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promospedia/internal/domains/item"
	"promospedia/internal/domains/promotion"
	"promospedia/internal/shared/response"
)

type PromotionHandler struct {
	service promotion.Service
	items   item.Service
}

func NewPromotionHandler(svc promotion.Service, items item.Service) *PromotionHandler {
	return &PromotionHandler{
		service: svc,
		items:   items,
	}
}

// Create - POST /api/v1/promotions
func (h *PromotionHandler) Create(c *gin.Context) {
	var req promotion.CreatePromotionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, promotion.ToHTTPStatus(err), promotion.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetAll - GET /api/v1/promotions
func (h *PromotionHandler) GetAll(c *gin.Context) {
	promos, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch promotions")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, promos, &response.Meta{Total: len(promos)})
}

// GetBySlug - GET /api/v1/promotions/:slug
func (h *PromotionHandler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, promotion.ToHTTPStatus(err), promotion.ToErrorCode(err), "Promotion not found")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// GetItems - GET /api/v1/promotions/:slug/items
func (h *PromotionHandler) GetItems(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, promotion.ToHTTPStatus(err), promotion.ToErrorCode(err), "Promotion not found")
		return
	}

	items, err := h.items.GetAllByPromotionID(c.Request.Context(), p.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch promotion items")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// Search - GET /api/v1/search/promotions?q=tazos
// A missing or empty q is a client error at the HTTP boundary; the store
// itself treats an empty query as "match everything".
func (h *PromotionHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter 'q' is required")
		return
	}

	promos, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to search promotions")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, promos, &response.Meta{Total: len(promos)})
}

// Update - PUT /api/v1/promotions/:id
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req promotion.UpdatePromotionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, promotion.ToHTTPStatus(err), promotion.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/promotions/:id
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, promotion.ToHTTPStatus(err), promotion.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

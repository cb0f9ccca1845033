package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promospedia/internal/domains/brand"
	"promospedia/internal/domains/promotion"
	"promospedia/internal/shared/response"
)

type BrandHandler struct {
	service    brand.Service
	promotions promotion.Service
}

func NewBrandHandler(svc brand.Service, promotions promotion.Service) *BrandHandler {
	return &BrandHandler{
		service:    svc,
		promotions: promotions,
	}
}

// Create - POST /api/v1/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var req brand.CreateBrandRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, brand.ToHTTPStatus(err), brand.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetAll - GET /api/v1/brands
func (h *BrandHandler) GetAll(c *gin.Context) {
	brands, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch brands")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, brands, &response.Meta{Total: len(brands)})
}

// GetBySlug - GET /api/v1/brands/:slug
func (h *BrandHandler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, brand.ToHTTPStatus(err), brand.ToErrorCode(err), "Brand not found")
		return
	}

	response.Success(c, http.StatusOK, b)
}

// GetPromotions - GET /api/v1/brands/:slug/promotions
// Resolves the brand slug first so an unknown brand is a 404, not an
// empty list.
func (h *BrandHandler) GetPromotions(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, brand.ToHTTPStatus(err), brand.ToErrorCode(err), "Brand not found")
		return
	}

	promos, err := h.promotions.GetAllByBrandID(c.Request.Context(), b.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch promotions")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, promos, &response.Meta{Total: len(promos)})
}

// Update - PUT /api/v1/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req brand.UpdateBrandRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, brand.ToHTTPStatus(err), brand.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, brand.ToHTTPStatus(err), brand.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

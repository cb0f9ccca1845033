package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promospedia/internal/domains/item"
	"promospedia/internal/shared/response"
)

type ItemHandler struct {
	service item.Service
}

func NewItemHandler(svc item.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

// Create - POST /api/v1/items
func (h *ItemHandler) Create(c *gin.Context) {
	var req item.CreateItemRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, item.ToHTTPStatus(err), item.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID - GET /api/v1/items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	i, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, item.ToHTTPStatus(err), item.ToErrorCode(err), "Item not found")
		return
	}

	response.Success(c, http.StatusOK, i)
}

// Search - GET /api/v1/search/items?q=espon
func (h *ItemHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter 'q' is required")
		return
	}

	items, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to search items")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// Update - PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req item.UpdateItemRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, item.ToHTTPStatus(err), item.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, item.ToHTTPStatus(err), item.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

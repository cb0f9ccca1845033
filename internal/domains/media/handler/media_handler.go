package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"promospedia/internal/infrastructure/storage"
	"promospedia/internal/shared/response"
)

// MediaHandler is the upload side of the object storage gateway. It stores
// the original plus resized variants and hands back URLs; callers attach
// them to promotions/items through the plain update endpoints.
type MediaHandler struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewMediaHandler(s *storage.MinIOStorage, p *storage.ImageProcessor) *MediaHandler {
	return &MediaHandler{
		storage:   s,
		processor: p,
	}
}

type uploadResponse struct {
	URL      string            `json:"url"`
	Variants map[string]string `json:"variants"`
}

// Upload - POST /api/v1/media/images (multipart field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Multipart field 'file' is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.processor.MaxSize+1))
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}

	if err := h.processor.ValidateImage(data); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	prefix := fmt.Sprintf("uploads/%s", uuid.NewString())

	contentType := fileHeader.Header.Get("Content-Type")
	originalURL, err := h.storage.Upload(ctx, prefix+"/original", data, contentType)
	if err != nil {
		log.Error().Err(err).Msg("original upload failed")
		response.InternalServerError(c, "Failed to store image")
		return
	}

	variantURLs := make(map[string]string, len(variants))
	for name, payload := range variants {
		url, err := h.storage.Upload(ctx, fmt.Sprintf("%s/%s.jpg", prefix, name), payload, "image/jpeg")
		if err != nil {
			log.Error().Err(err).Str("variant", name).Msg("variant upload failed")
			// Roll back the partial set so no orphaned objects linger.
			if cleanupErr := h.storage.DeleteByPrefix(ctx, prefix); cleanupErr != nil {
				log.Error().Err(cleanupErr).Str("prefix", prefix).Msg("upload cleanup failed")
			}
			response.InternalServerError(c, "Failed to store image")
			return
		}
		variantURLs[name] = url
	}

	response.Success(c, http.StatusCreated, uploadResponse{
		URL:      originalURL,
		Variants: variantURLs,
	})
}

package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promospedia/internal/infrastructure/export"
	"promospedia/internal/shared/response"
)

type ExportHandler struct {
	exporter *export.CatalogExporter
}

func NewExportHandler(exporter *export.CatalogExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Catalog - GET /api/v1/export/catalog
// Streams the whole catalog as an xlsx workbook.
func (h *ExportHandler) Catalog(c *gin.Context) {
	f, err := h.exporter.BuildWorkbook(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("catalog export failed")
		response.InternalServerError(c, "Failed to build catalog export")
		return
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		log.Error().Err(err).Msg("catalog export serialization failed")
		response.InternalServerError(c, "Failed to build catalog export")
		return
	}

	filename := fmt.Sprintf("promospedia-catalog-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

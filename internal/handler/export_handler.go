package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// ExportHandler serves downloadable reports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download godoc
// @Summary Export a resource list as a report
// @Tags Export
// @Produce json
// @Param resource path string true "Resource name"
// @Param format query string true "Report format (csv, json, pdf)"
// @Param scope query string false "Export scope (current, all)"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /api/export/{resource} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	result, err := h.exports.Export(
		c.Request.Context(),
		tokenFromContext(c),
		c.Param("resource"),
		c.Query("format"),
		c.Query("scope"),
		parseListQuery(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Body)
}

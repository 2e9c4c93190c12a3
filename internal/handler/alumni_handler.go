package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// AlumniHandler proxies alumni verification calls.
type AlumniHandler struct {
	alumni *service.AlumniService
}

// NewAlumniHandler constructs AlumniHandler.
func NewAlumniHandler(alumni *service.AlumniService) *AlumniHandler {
	return &AlumniHandler{alumni: alumni}
}

// List godoc
// @Summary List alumni records
// @Tags Alumni
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search text"
// @Param batch query string false "Batch filter"
// @Param department query string false "Department filter"
// @Param verified query bool false "Verification state"
// @Success 200 {object} response.Envelope
// @Router /api/alumni [get]
func (h *AlumniHandler) List(c *gin.Context) {
	res, err := h.alumni.List(c.Request.Context(), tokenFromContext(c), parseListQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// SetVerified godoc
// @Summary Verify or revoke an alumni record
// @Tags Alumni
// @Accept json
// @Produce json
// @Param id path string true "Alumni ID"
// @Param payload body models.AlumniVerifyPayload true "Verification payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/alumni/{id} [put]
func (h *AlumniHandler) SetVerified(c *gin.Context) {
	var payload models.AlumniVerifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Verified must be a boolean value."))
		return
	}
	res, err := h.alumni.SetVerified(c.Request.Context(), tokenFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Delete godoc
// @Summary Delete an alumni record
// @Tags Alumni
// @Produce json
// @Param id path string true "Alumni ID"
// @Success 200 {object} response.Envelope
// @Router /api/alumni/{id} [delete]
func (h *AlumniHandler) Delete(c *gin.Context) {
	res, err := h.alumni.Delete(c.Request.Context(), tokenFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

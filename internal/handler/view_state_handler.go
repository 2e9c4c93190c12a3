package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/listing"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// ViewStateHandler manages per-session filter state for the list views.
type ViewStateHandler struct {
	views *service.ViewStateService
}

// NewViewStateHandler constructs ViewStateHandler.
func NewViewStateHandler(views *service.ViewStateService) *ViewStateHandler {
	return &ViewStateHandler{views: views}
}

// Get godoc
// @Summary Read the filter state for a resource
// @Tags Views
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} response.Envelope
// @Router /api/views/{resource}/filters [get]
func (h *ViewStateHandler) Get(c *gin.Context) {
	state, err := h.views.Get(c.Request.Context(), tokenFromContext(c), c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// Stage godoc
// @Summary Stage draft filter values
// @Tags Views
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param payload body listing.Values true "Draft values"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/views/{resource}/filters [put]
func (h *ViewStateHandler) Stage(c *gin.Context) {
	var values listing.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid filter payload"))
		return
	}

	token := tokenFromContext(c)
	resource := c.Param("resource")

	// Immediate-class names commit through their own debounce window
	// instead of the draft.
	for _, name := range []string{"search", "page", "limit"} {
		value, ok := values[name]
		if !ok {
			continue
		}
		delete(values, name)
		if err := h.views.CommitImmediate(token, resource, name, value); err != nil {
			response.Error(c, err)
			return
		}
	}

	state, err := h.views.Stage(c.Request.Context(), token, resource, values)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// Apply godoc
// @Summary Commit the draft filters
// @Tags Views
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} response.Envelope
// @Router /api/views/{resource}/filters/apply [post]
func (h *ViewStateHandler) Apply(c *gin.Context) {
	state, changed, err := h.views.Apply(c.Request.Context(), tokenFromContext(c), c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil, map[string]interface{}{"changed": changed})
}

// Clear godoc
// @Summary Reset filters to defaults
// @Tags Views
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} response.Envelope
// @Router /api/views/{resource}/filters/clear [post]
func (h *ViewStateHandler) Clear(c *gin.Context) {
	state, changed, err := h.views.Clear(c.Request.Context(), tokenFromContext(c), c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil, map[string]interface{}{"changed": changed})
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/middleware"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// DashboardHandler wires the dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Admin dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	res, cacheHit, err := h.service.Summary(c.Request.Context(), tokenFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !res.OK() {
		response.Relay(c, res.Status, res.ContentType, res.Body)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, json.RawMessage(res.Body), nil, meta)
}

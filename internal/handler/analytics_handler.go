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

// AnalyticsHandler serves the per-resource analytics aggregates.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// ForResource returns a handler bound to one analytics resource.
//
// @Summary Resource analytics aggregates
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/{resource}-analytics [get]
func (h *AnalyticsHandler) ForResource(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.service == nil {
			response.Error(c, appErrors.ErrInternal)
			return
		}
		start := time.Now()
		res, cacheHit, err := h.service.Fetch(c.Request.Context(), tokenFromContext(c), resource)
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
}

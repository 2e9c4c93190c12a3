package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// EventHandler proxies event management calls.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search text"
// @Param type query string false "Event type"
// @Param startDate query string false "Start of date window"
// @Param endDate query string false "End of date window"
// @Success 200 {object} response.Envelope
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	res, err := h.events.List(c.Request.Context(), tokenFromContext(c), parseListQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.EventPayload true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var payload models.EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event payload"))
		return
	}
	res, err := h.events.Create(c.Request.Context(), tokenFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body models.EventPayload true "Event payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var payload models.EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event payload"))
		return
	}
	res, err := h.events.Update(c.Request.Context(), tokenFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	res, err := h.events.Delete(c.Request.Context(), tokenFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

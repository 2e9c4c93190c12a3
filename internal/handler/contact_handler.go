package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// ContactHandler proxies contact-query calls.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// List godoc
// @Summary List contact queries
// @Tags Contacts
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search text"
// @Param resolved query bool false "Resolution state"
// @Success 200 {object} response.Envelope
// @Router /api/contactus [get]
func (h *ContactHandler) List(c *gin.Context) {
	res, err := h.contacts.List(c.Request.Context(), tokenFromContext(c), parseListQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Respond godoc
// @Summary Respond to a contact query
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body models.ContactResponsePayload true "Response payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/contactus [post]
func (h *ContactHandler) Respond(c *gin.Context) {
	var payload models.ContactResponsePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing required fields (id, subject, message)"))
		return
	}
	res, err := h.contacts.Respond(c.Request.Context(), tokenFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// ReferralHandler proxies referral management calls.
type ReferralHandler struct {
	referrals *service.ReferralService
}

// NewReferralHandler constructs ReferralHandler.
func NewReferralHandler(referrals *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referrals: referrals}
}

// List godoc
// @Summary List referrals
// @Tags Referrals
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Search text"
// @Param minReferrals query int false "Minimum referral count"
// @Param maxReferrals query int false "Maximum referral count"
// @Success 200 {object} response.Envelope
// @Router /api/referrals [get]
func (h *ReferralHandler) List(c *gin.Context) {
	res, err := h.referrals.List(c.Request.Context(), tokenFromContext(c), parseListQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Create godoc
// @Summary Create a referral
// @Tags Referrals
// @Accept json
// @Produce json
// @Param payload body models.ReferralPayload true "Referral payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/referrals [post]
func (h *ReferralHandler) Create(c *gin.Context) {
	var payload models.ReferralPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing required fields"))
		return
	}
	res, err := h.referrals.Create(c.Request.Context(), tokenFromContext(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Update godoc
// @Summary Update a referral
// @Tags Referrals
// @Accept json
// @Produce json
// @Param id path string true "Referral ID"
// @Param payload body models.ReferralPayload true "Referral payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/referrals/{id} [put]
func (h *ReferralHandler) Update(c *gin.Context) {
	var payload models.ReferralPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid referral payload"))
		return
	}
	res, err := h.referrals.Update(c.Request.Context(), tokenFromContext(c), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

// Delete godoc
// @Summary Delete a referral
// @Tags Referrals
// @Produce json
// @Param id path string true "Referral ID"
// @Success 200 {object} response.Envelope
// @Router /api/referrals/{id} [delete]
func (h *ReferralHandler) Delete(c *gin.Context) {
	res, err := h.referrals.Delete(c.Request.Context(), tokenFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, res.Status, res.ContentType, res.Body)
}

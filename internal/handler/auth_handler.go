package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/service"
	"github.com/alumnet/admin-gateway/pkg/config"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
	"github.com/alumnet/admin-gateway/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	session config.SessionConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: svc, session: session}
}

// Login godoc
// @Summary Authenticate an admin
// @Description Relay credentials to the backend; establish a session only for admins
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Identifier and password are required."))
		return
	}

	outcome, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if outcome.Session != nil {
		h.setSessionCookie(c, outcome.Session.Token, int(h.session.TTL.Seconds()))
	}
	response.Relay(c, outcome.Response.Status, outcome.Response.ContentType, outcome.Response.Body)
}

// Logout godoc
// @Summary End the current session
// @Description Best-effort backend logout; the local session always clears
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := tokenFromContext(c)
	if token == "" {
		token, _ = c.Cookie(h.session.CookieName)
	}
	h.service.Logout(c.Request.Context(), token)
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out successfully.")
}

// Me godoc
// @Summary Current session identity
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := sessionFromContext(c)
	if sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, sess.User, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, value, maxAge, "/", "", h.session.CookieSecure, true)
}

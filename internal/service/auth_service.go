package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/session"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// AuthService relays credential checks upstream and owns the session
// lifecycle. The backend is the authority on credentials; the gateway only
// gates on the admin role and keeps the session slot.
type AuthService struct {
	client   *upstream.Client
	sessions *session.Store
	logger   *zap.Logger
}

// NewAuthService constructs the service.
func NewAuthService(client *upstream.Client, sessions *session.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{client: client, sessions: sessions, logger: logger}
}

// LoginOutcome carries everything the handler needs to finish a login:
// the relayed upstream response plus the established session, when one was
// created.
type LoginOutcome struct {
	Response *upstream.Response
	Session  *models.Session
}

// Login relays credentials upstream. On success the user must hold the
// admin role or no session is stored and the caller receives
// AUTHORIZATION_DENIED even though the backend call succeeded.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*LoginOutcome, error) {
	if req.Identifier == "" || req.Password == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Identifier and password are required.")
	}

	res, err := s.client.Post(ctx, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &LoginOutcome{Response: res}, nil
	}

	result, err := decodeLoginResult(res.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "unexpected login response from upstream")
	}

	if result.User.Role != "admin" {
		s.logger.Warn("non_admin_login_rejected", zap.String("identifier", req.Identifier))
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You are not authorized to access the admin dashboard.")
	}

	sess := models.Session{Token: result.Token, User: result.User, IsLoggedIn: true}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to establish session")
	}

	return &LoginOutcome{Response: res, Session: &sess}, nil
}

// Logout tears the session down. The upstream call is best-effort: the
// local session is cleared regardless of its outcome.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token != "" {
		if res, err := s.client.Post(ctx, "/auth/logout", token, nil); err != nil {
			s.logger.Warn("upstream_logout_failed", zap.Error(err))
		} else if !res.OK() {
			s.logger.Warn("upstream_logout_rejected", zap.Int("status", res.Status))
		}
	}

	if err := s.sessions.Clear(ctx, token); err != nil {
		s.logger.Warn("session_clear_failed", zap.Error(err))
	}
}

// Me returns the session identity for a token.
func (s *AuthService) Me(ctx context.Context, token string) (*models.Session, error) {
	return s.sessions.Get(ctx, token)
}

// decodeLoginResult accepts both `{token, user}` and the `{data: {...}}`
// wrapper shape the backend has used across versions.
func decodeLoginResult(body []byte) (*models.LoginResult, error) {
	var direct models.LoginResult
	if err := json.Unmarshal(body, &direct); err == nil && direct.Token != "" {
		return &direct, nil
	}

	var wrapped struct {
		Data models.LoginResult `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}
	return &wrapped.Data, nil
}

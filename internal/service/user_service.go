package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// UserService proxies platform-user reads and admin updates. Admin edits
// go upstream as PATCH against the admin user endpoint.
type UserService struct {
	client      *upstream.Client
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(client *upstream.Client, invalidator CacheInvalidator, logger *zap.Logger) *UserService {
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{client: client, invalidator: invalidator, logger: logger}
}

// List forwards a filtered user listing.
func (s *UserService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/users", token, q.Values())
}

// Update forwards the admin-editable field set for a user.
func (s *UserService) Update(ctx context.Context, token, id string, p models.AdminUserUpdate) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "User ID is required")
	}
	res, err := s.client.Patch(ctx, "/users/admin/"+id, token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "users")
	}
	return res, err
}

// Delete forwards a user removal.
func (s *UserService) Delete(ctx context.Context, token, id string) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "User ID is required")
	}
	res, err := s.client.Delete(ctx, "/users/"+id, token)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "users")
	}
	return res, err
}

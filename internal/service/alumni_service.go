package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// AlumniService proxies alumni-profile reads, verification toggles and
// deletes. Setting verified=false is the non-destructive "revoke access"
// alternative to deleting a verified record.
type AlumniService struct {
	client      *upstream.Client
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewAlumniService constructs the service.
func NewAlumniService(client *upstream.Client, invalidator CacheInvalidator, logger *zap.Logger) *AlumniService {
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlumniService{client: client, invalidator: invalidator, logger: logger}
}

// List forwards a filtered alumni listing.
func (s *AlumniService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/alumni-details", token, q.Values())
}

// SetVerified toggles the verified flag; forwarded as the backend's
// PATCH verify endpoint.
func (s *AlumniService) SetVerified(ctx context.Context, token, id string, p models.AlumniVerifyPayload) (*upstream.Response, error) {
	if p.Verified == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Verified must be a boolean value.")
	}
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Alumni ID is required")
	}
	path := fmt.Sprintf("/alumni-details/%s/verify/%t", id, *p.Verified)
	res, err := s.client.Patch(ctx, path, token, struct{}{})
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "alumni")
	}
	return res, err
}

// Delete forwards a hard delete of an alumni record.
func (s *AlumniService) Delete(ctx context.Context, token, id string) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Alumni ID is required")
	}
	res, err := s.client.Delete(ctx, "/alumni-details/"+id, token)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "alumni")
	}
	return res, err
}

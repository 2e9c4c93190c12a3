package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// analyticsResources maps the public resource names onto upstream
// analytics paths.
var analyticsResources = map[string]string{
	"alumni":    "/admin/alumni-analytics",
	"events":    "/admin/events-analytics",
	"jobs":      "/admin/jobs-analytics",
	"referrals": "/admin/referrals-analytics",
	"users":     "/admin/users-analytics",
	"contacts":  "/admin/contacts-analytics",
}

// AnalyticsService serves the per-resource analytics aggregates with
// read-through caching.
type AnalyticsService struct {
	client *upstream.Client
	cache  *AggregateCache
	logger *zap.Logger
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(client *upstream.Client, cache *AggregateCache, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{client: client, cache: cache, logger: logger}
}

// Fetch returns the analytics body for a resource and whether it came from
// cache. Unknown resources fail before any upstream call.
func (s *AnalyticsService) Fetch(ctx context.Context, token, resource string) (*upstream.Response, bool, error) {
	path, ok := analyticsResources[resource]
	if !ok {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "unknown analytics resource")
	}

	if body, hit := s.cache.GetAnalytics(ctx, resource); hit {
		return &upstream.Response{Status: 200, ContentType: "application/json", Body: body}, true, nil
	}

	res, err := s.client.Get(ctx, path, token, nil)
	if err != nil {
		return nil, false, err
	}
	if res.OK() {
		s.cache.SetAnalytics(ctx, resource, res.Body)
	}
	return res, false, nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/upstream"
)

// DashboardService serves the admin dashboard summary, caching successful
// upstream bodies between mutations.
type DashboardService struct {
	client *upstream.Client
	cache  *AggregateCache
	logger *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(client *upstream.Client, cache *AggregateCache, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{client: client, cache: cache, logger: logger}
}

// Summary returns the dashboard body and whether it came from cache.
func (s *DashboardService) Summary(ctx context.Context, token string) (*upstream.Response, bool, error) {
	if body, ok := s.cache.GetDashboard(ctx); ok {
		return &upstream.Response{Status: 200, ContentType: "application/json", Body: body}, true, nil
	}

	res, err := s.client.Get(ctx, "/admin/dashboard", token, nil)
	if err != nil {
		return nil, false, err
	}
	if res.OK() {
		s.cache.SetDashboard(ctx, res.Body)
	}
	return res, false, nil
}

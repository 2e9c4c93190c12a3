package service

import "context"

// CacheInvalidator drops cached aggregate reads after a successful
// mutation so counts and rows refresh together.
type CacheInvalidator interface {
	InvalidateDashboard(ctx context.Context)
	InvalidateAnalytics(ctx context.Context, resource string)
}

// nopInvalidator is used when caching is not wired (tests).
type nopInvalidator struct{}

func (nopInvalidator) InvalidateDashboard(context.Context)          {}
func (nopInvalidator) InvalidateAnalytics(context.Context, string)  {}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func TestDashboardServiceCachesSummary(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/admin/dashboard", r.URL.Path)
		w.Write([]byte(`{"totalAlumni":120}`)) //nolint:errcheck
	}))
	defer srv.Close()

	cache := NewAggregateCache(newFakeRedis(), time.Minute, time.Minute, nil, nil)
	svc := NewDashboardService(newTestUpstream(t, srv), cache, nil)

	res, hit, err := svc.Summary(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, http.StatusOK, res.Status)

	res, hit, err = svc.Summary(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.JSONEq(t, `{"totalAlumni":120}`, string(res.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDashboardServiceDoesNotCacheFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cache := NewAggregateCache(newFakeRedis(), time.Minute, time.Minute, nil, nil)
	svc := NewDashboardService(newTestUpstream(t, srv), cache, nil)

	_, _, err := svc.Summary(context.Background(), "tok")
	require.NoError(t, err)
	_, hit, err := svc.Summary(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAnalyticsServiceFetchAndInvalidate(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/admin/events-analytics", r.URL.Path)
		w.Write([]byte(`{"monthly":[]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	cache := NewAggregateCache(newFakeRedis(), time.Minute, time.Minute, nil, nil)
	svc := NewAnalyticsService(newTestUpstream(t, srv), cache, nil)

	_, hit, err := svc.Fetch(context.Background(), "tok", "events")
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = svc.Fetch(context.Background(), "tok", "events")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// A mutation on the resource drops the entry; the next read refetches.
	cache.InvalidateAnalytics(context.Background(), "events")
	_, hit, err = svc.Fetch(context.Background(), "tok", "events")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAnalyticsServiceRejectsUnknownResource(t *testing.T) {
	svc := NewAnalyticsService(offlineUpstream(), nil, nil)

	_, _, err := svc.Fetch(context.Background(), "tok", "payments")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

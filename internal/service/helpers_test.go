package service

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alumnet/admin-gateway/internal/upstream"
	"github.com/alumnet/admin-gateway/pkg/config"
)

// fakeRedis is an in-memory stand-in for the redis commands the services
// use.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value, ok := f.data[key]; ok {
		return redis.NewStringResult(value, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedis) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// recordingInvalidator counts cache invalidations.
type recordingInvalidator struct {
	mu        sync.Mutex
	dashboard int
	analytics []string
}

func (r *recordingInvalidator) InvalidateDashboard(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboard++
}

func (r *recordingInvalidator) InvalidateAnalytics(_ context.Context, resource string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analytics = append(r.analytics, resource)
}

func newTestUpstream(t *testing.T, srv *httptest.Server) *upstream.Client {
	t.Helper()
	return upstream.New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
}

// offlineUpstream never reaches a backend; use it for tests that must fail
// validation before any call fires.
func offlineUpstream() *upstream.Client {
	return upstream.New(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, nil)
}

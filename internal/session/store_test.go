package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/models"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string)}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.data[key]; ok {
		return redis.NewStringResult(value, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *memoryRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			delete(m.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func adminSession(token string) models.Session {
	return models.Session{
		Token: token,
		User: models.SessionUser{
			ID:           "u-1",
			Name:         "Asha Rao",
			CollegeEmail: "asha@college.example.com",
			Role:         "admin",
		},
	}
}

func TestStoreSaveAndGetRoundTrip(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, adminSession("tok-1")))

	sess, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", sess.User.ID)
	assert.Equal(t, "admin", sess.User.Role)
	assert.True(t, sess.IsLoggedIn)
}

func TestStoreSaveRejectsIncompleteSessions(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "")
	ctx := context.Background()

	err := store.Save(ctx, models.Session{Token: "tok-1"})
	assert.ErrorIs(t, err, ErrIncomplete)

	sess := adminSession("")
	err = store.Save(ctx, sess)
	assert.ErrorIs(t, err, ErrIncomplete)

	// Nothing is written on a rejected save.
	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestStoreGetMissingToken(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "")

	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = store.Get(context.Background(), "never-saved")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, adminSession("tok-1")))
	require.NoError(t, store.Clear(ctx, "tok-1"))

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	// Clearing an absent slot is fine.
	assert.NoError(t, store.Clear(ctx, "tok-1"))
	assert.NoError(t, store.Clear(ctx, ""))
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestStoreTokenExpired(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "shared-secret")

	live := signedToken(t, "shared-secret", time.Now().Add(time.Hour))
	assert.False(t, store.TokenExpired(live))

	expired := signedToken(t, "shared-secret", time.Now().Add(-time.Hour))
	assert.True(t, store.TokenExpired(expired))

	// Garbage that is not a JWT is left for the backend to judge.
	assert.False(t, store.TokenExpired("not-a-jwt"))
}

func TestStoreTokenExpiredWithoutSecret(t *testing.T) {
	store := NewStore(newMemoryRedis(), time.Hour, "")

	expired := signedToken(t, "whatever", time.Now().Add(-time.Hour))
	assert.False(t, store.TokenExpired(expired))
}

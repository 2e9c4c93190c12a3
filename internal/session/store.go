package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/alumnet/admin-gateway/internal/models"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

const keyPrefix = "session:"

// ErrIncomplete is returned when a session write would violate the
// all-or-nothing invariant: token and user must both be present.
var ErrIncomplete = errors.New("session requires both token and user")

type redisAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store persists admin sessions in Redis, keyed by the upstream bearer
// token. It is injected explicitly wherever session access is needed;
// there is no package-level singleton.
type Store struct {
	rdb       redisAPI
	ttl       time.Duration
	jwtSecret []byte
}

// NewStore constructs a session store.
func NewStore(rdb redisAPI, ttl time.Duration, jwtSecret string) *Store {
	return &Store{rdb: rdb, ttl: ttl, jwtSecret: []byte(jwtSecret)}
}

// Save writes the session slot. Token and user identity are all-or-nothing.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	if sess.Token == "" || sess.User.ID == "" {
		return ErrIncomplete
	}
	sess.IsLoggedIn = true

	encoded, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+sess.Token, encoded, s.ttl).Err(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Get loads the session for a token. A missing or expired slot yields
// ErrUnauthorized so callers can answer 401 directly.
func (s *Store) Get(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, appErrors.ErrUnauthorized
	}

	raw, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Token == "" || sess.User.ID == "" {
		return nil, appErrors.ErrUnauthorized
	}
	sess.IsLoggedIn = true
	return &sess, nil
}

// Clear removes the session slot. Clearing an absent slot is not an error,
// so logout stays effective even when the session already expired.
func (s *Store) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// TokenExpired checks the exp claim of the upstream-issued token using the
// secret shared with the backend. Tokens without an exp claim pass; the
// upstream remains the authority on token validity either way.
func (s *Store) TokenExpired(token string) bool {
	if len(s.jwtSecret) == 0 {
		return false
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return errors.Is(err, jwt.ErrTokenExpired)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

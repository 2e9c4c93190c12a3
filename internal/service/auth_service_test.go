package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/session"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func newTestSessions(rdb *fakeRedis) *session.Store {
	return session.NewStore(rdb, time.Hour, "")
}

func TestAuthServiceLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(offlineUpstream(), newTestSessions(newFakeRedis()), nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "admin"})
	require.Error(t, err)
	assert.Equal(t, "Identifier and password are required.", appErrors.FromError(err).Message)
}

func TestAuthServiceLoginRejectsNonAdmins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"up-token","user":{"id":"u-1","name":"Asha","role":"alumni"}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	svc := NewAuthService(newTestUpstream(t, srv), newTestSessions(rdb), nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "asha", Password: "pw"})
	require.Error(t, err)

	typed := appErrors.FromError(err)
	assert.Equal(t, "AUTHORIZATION_DENIED", typed.Code)
	assert.Equal(t, http.StatusForbidden, typed.Status)
	assert.Equal(t, "You are not authorized to access the admin dashboard.", typed.Message)

	// The backend accepted the credentials but no session may exist.
	assert.False(t, rdb.has("session:up-token"))
}

func TestAuthServiceLoginEstablishesAdminSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"up-token","user":{"id":"u-1","name":"Asha","role":"admin"}}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	svc := NewAuthService(newTestUpstream(t, srv), newTestSessions(rdb), nil)

	outcome, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "asha", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, outcome.Session)
	assert.Equal(t, "up-token", outcome.Session.Token)
	assert.True(t, rdb.has("session:up-token"))
}

func TestAuthServiceLoginRelaysUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	svc := NewAuthService(newTestUpstream(t, srv), newTestSessions(rdb), nil)

	outcome, err := svc.Login(context.Background(), models.LoginRequest{Identifier: "asha", Password: "bad"})
	require.NoError(t, err)
	assert.Nil(t, outcome.Session)
	assert.Equal(t, http.StatusUnauthorized, outcome.Response.Status)
	assert.Empty(t, rdb.data)
}

func TestAuthServiceLogoutClearsSessionDespiteUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	sessions := newTestSessions(rdb)
	require.NoError(t, sessions.Save(context.Background(), models.Session{
		Token: "tok-1",
		User:  models.SessionUser{ID: "u-1", Role: "admin"},
	}))

	svc := NewAuthService(newTestUpstream(t, srv), sessions, nil)
	svc.Logout(context.Background(), "tok-1")

	assert.False(t, rdb.has("session:tok-1"))
}

func TestAuthServiceMe(t *testing.T) {
	rdb := newFakeRedis()
	sessions := newTestSessions(rdb)
	require.NoError(t, sessions.Save(context.Background(), models.Session{
		Token: "tok-1",
		User:  models.SessionUser{ID: "u-1", Name: "Asha", Role: "admin"},
	}))

	svc := NewAuthService(offlineUpstream(), sessions, nil)

	sess, err := svc.Me(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", sess.User.Name)

	_, err = svc.Me(context.Background(), "absent")
	assert.Equal(t, appErrors.ErrUnauthorized, appErrors.FromError(err))
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/models"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func TestAlumniServiceSetVerifiedRequiresBoolean(t *testing.T) {
	svc := NewAlumniService(offlineUpstream(), nil, nil)

	_, err := svc.SetVerified(context.Background(), "tok", "al-1", models.AlumniVerifyPayload{})
	require.Error(t, err)
	assert.Equal(t, "Verified must be a boolean value.", appErrors.FromError(err).Message)
}

func TestAlumniServiceVerifyForwardsAsPatch(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer srv.Close()

	inv := &recordingInvalidator{}
	svc := NewAlumniService(newTestUpstream(t, srv), inv, nil)

	verified := false
	_, err := svc.SetVerified(context.Background(), "tok", "al-7", models.AlumniVerifyPayload{Verified: &verified})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/alumni-details/al-7/verify/false", gotPath)
	assert.Equal(t, []string{"alumni"}, inv.analytics)
}

func TestAlumniServiceDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/alumni-details/al-3", r.URL.Path)
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer srv.Close()

	svc := NewAlumniService(newTestUpstream(t, srv), nil, nil)
	_, err := svc.Delete(context.Background(), "tok", "al-3")
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), "tok", "")
	require.Error(t, err)
	assert.Equal(t, "Alumni ID is required", appErrors.FromError(err).Message)
}

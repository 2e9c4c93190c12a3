package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/models"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func TestUserServiceUpdateForwardsAsAdminPatch(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody) //nolint:errcheck
		w.Write([]byte(`{}`))         //nolint:errcheck
	}))
	defer srv.Close()

	inv := &recordingInvalidator{}
	svc := NewUserService(newTestUpstream(t, srv), inv, nil)

	role := "alumni"
	_, err := svc.Update(context.Background(), "tok", "u-2", models.AdminUserUpdate{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/users/admin/u-2", gotPath)
	assert.Equal(t, "alumni", gotBody["role"])
	_, batchSent := gotBody["batch"]
	assert.False(t, batchSent)
	assert.Equal(t, []string{"users"}, inv.analytics)
}

func TestUserServiceDeleteRequiresID(t *testing.T) {
	svc := NewUserService(offlineUpstream(), nil, nil)

	_, err := svc.Delete(context.Background(), "tok", "")
	require.Error(t, err)
	assert.Equal(t, "User ID is required", appErrors.FromError(err).Message)
}

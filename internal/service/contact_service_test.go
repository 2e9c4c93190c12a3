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

func TestContactServiceRespondRequiresAllFields(t *testing.T) {
	svc := NewContactService(offlineUpstream(), nil, nil, nil)

	for _, payload := range []models.ContactResponsePayload{
		{Subject: "Re: query", Message: "answered"},
		{ID: "q-1", Message: "answered"},
		{ID: "q-1", Subject: "Re: query"},
	} {
		_, err := svc.Respond(context.Background(), "tok", payload)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields (id, subject, message)", appErrors.FromError(err).Message)
	}
}

func TestContactServiceRespondForwardsAndInvalidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contactus/respond", r.URL.Path)
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer srv.Close()

	inv := &recordingInvalidator{}
	svc := NewContactService(newTestUpstream(t, srv), nil, inv, nil)

	payload := models.ContactResponsePayload{ID: "q-1", Subject: "Re: query", Message: "answered"}
	res, err := svc.Respond(context.Background(), "tok", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, []string{"contacts"}, inv.analytics)
}

package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

type contactResponseRequired struct {
	ID      string `validate:"required"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// ContactService proxies contact-query triage: listing queries and sending
// admin responses.
type ContactService struct {
	client      *upstream.Client
	validator   *validator.Validate
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewContactService constructs the service.
func NewContactService(client *upstream.Client, validate *validator.Validate, invalidator CacheInvalidator, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{client: client, validator: validate, invalidator: invalidator, logger: logger}
}

// List forwards a filtered contact-query listing.
func (s *ContactService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/contactus", token, q.Values())
}

// Respond validates and forwards an admin reply to a query.
func (s *ContactService) Respond(ctx context.Context, token string, p models.ContactResponsePayload) (*upstream.Response, error) {
	required := contactResponseRequired{ID: p.ID, Subject: p.Subject, Message: p.Message}
	if err := s.validator.Struct(required); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing required fields (id, subject, message)")
	}
	res, err := s.client.Post(ctx, "/contactus/respond", token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "contacts")
	}
	return res, err
}

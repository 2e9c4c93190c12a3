package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// ReferralService proxies referral-offer reads and mutations.
type ReferralService struct {
	client      *upstream.Client
	invalidator CacheInvalidator
	logger      *zap.Logger
	now         func() time.Time
}

// NewReferralService constructs the service.
func NewReferralService(client *upstream.Client, invalidator CacheInvalidator, logger *zap.Logger) *ReferralService {
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferralService{client: client, invalidator: invalidator, logger: logger, now: time.Now}
}

// List forwards a filtered referral listing.
func (s *ReferralService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/referrals", token, q.Values())
}

// Create validates and forwards a new referral offer.
func (s *ReferralService) Create(ctx context.Context, token string, p models.ReferralPayload) (*upstream.Response, error) {
	if err := s.validateReferral(p); err != nil {
		return nil, err
	}
	res, err := s.client.Post(ctx, "/referrals", token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "referrals")
	}
	return res, err
}

// Update validates and forwards a referral edit.
func (s *ReferralService) Update(ctx context.Context, token, id string, p models.ReferralPayload) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Referral ID is required")
	}
	if err := s.validateReferral(p); err != nil {
		return nil, err
	}
	res, err := s.client.Put(ctx, "/referrals/"+id, token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "referrals")
	}
	return res, err
}

// Delete forwards a referral removal.
func (s *ReferralService) Delete(ctx context.Context, token, id string) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Referral ID is required")
	}
	res, err := s.client.Delete(ctx, "/referrals/"+id, token)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "referrals")
	}
	return res, err
}

func (s *ReferralService) validateReferral(p models.ReferralPayload) error {
	invalid := func(message string) error {
		return appErrors.Clone(appErrors.ErrValidation, message)
	}

	d := p.JobDetails
	if d.Title == "" || d.Description == "" || d.Company == "" || d.Role == "" || d.Link == "" ||
		p.LastApplyDate == "" || p.NumberOfReferrals == nil {
		return invalid("Missing required fields")
	}

	if *p.NumberOfReferrals < 0 {
		return invalid("Number of referrals must be a non-negative number")
	}

	if !validURL(d.Link) {
		return invalid("Please provide a valid URL for the job link")
	}

	applyDate, ok := parseDate(p.LastApplyDate)
	if !ok {
		return invalid("Invalid last apply date provided.")
	}
	if !applyDate.After(s.now()) {
		return invalid("Last apply date must be in the future")
	}

	return nil
}

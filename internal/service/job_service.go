package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// jobRequired mirrors the required scalar fields of a job posting; slice
// and nested checks keep their own messages below.
type jobRequired struct {
	JobName       string `validate:"required"`
	Company       string `validate:"required"`
	Role          string `validate:"required"`
	Description   string `validate:"required"`
	Type          string `validate:"required"`
	Stipend       string `validate:"required"`
	Duration      string `validate:"required"`
	WorkType      string `validate:"required"`
	LastApplyDate string `validate:"required"`
}

// JobService proxies job-posting reads and mutations.
type JobService struct {
	client      *upstream.Client
	validator   *validator.Validate
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewJobService constructs the service.
func NewJobService(client *upstream.Client, validate *validator.Validate, invalidator CacheInvalidator, logger *zap.Logger) *JobService {
	if validate == nil {
		validate = validator.New()
	}
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{client: client, validator: validate, invalidator: invalidator, logger: logger}
}

// List forwards a filtered job listing.
func (s *JobService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/jobs", token, q.Values())
}

// Create validates and forwards a new job posting.
func (s *JobService) Create(ctx context.Context, token string, p models.JobPayload) (*upstream.Response, error) {
	if err := s.validateJob(p, true); err != nil {
		return nil, err
	}
	res, err := s.client.Post(ctx, "/jobs", token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "jobs")
	}
	return res, err
}

// Update validates the provided fields and forwards a job edit.
func (s *JobService) Update(ctx context.Context, token, id string, p models.JobPayload) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Job ID is required")
	}
	if err := s.validateJob(p, false); err != nil {
		return nil, err
	}
	res, err := s.client.Put(ctx, "/jobs/"+id, token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "jobs")
	}
	return res, err
}

// Delete forwards a job removal.
func (s *JobService) Delete(ctx context.Context, token, id string) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Job ID is required")
	}
	res, err := s.client.Delete(ctx, "/jobs/"+id, token)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "jobs")
	}
	return res, err
}

func (s *JobService) validateJob(p models.JobPayload, create bool) error {
	invalid := func(message string) error {
		return appErrors.Clone(appErrors.ErrValidation, message)
	}

	if create {
		required := jobRequired{
			JobName:       p.JobName,
			Company:       p.Company,
			Role:          p.Role,
			Description:   p.Description,
			Type:          p.Type,
			Stipend:       p.Stipend,
			Duration:      p.Duration,
			WorkType:      p.WorkType,
			LastApplyDate: p.LastApplyDate,
		}
		if err := s.validator.Struct(required); err != nil {
			return invalid("Missing required fields")
		}
	}

	if p.Type != "" && !contains(models.JobTypes, p.Type) {
		return invalid("Type must be either 'fulltime', 'parttime', 'internship', or 'others'")
	}
	if p.WorkType != "" && !contains(models.JobWorkTypes, p.WorkType) {
		return invalid("WorkType must be either 'onsite', 'remote', or 'hybrid'")
	}

	if create || p.Links != nil {
		if len(p.Links) == 0 {
			return invalid("Links must be a non-empty array")
		}
		for _, link := range p.Links {
			if !validURL(link) {
				return invalid("Please provide valid URLs for all links")
			}
		}
	}

	if create {
		if len(p.Eligibility.Requirements) == 0 {
			return invalid("Eligibility requirements must be a non-empty array")
		}
		if len(p.Eligibility.Batch) == 0 {
			return invalid("Eligibility batch must be a non-empty array")
		}
		if _, ok := parseDate(p.LastApplyDate); !ok {
			return invalid("Invalid last apply date provided.")
		}
	} else if p.LastApplyDate != "" {
		if _, ok := parseDate(p.LastApplyDate); !ok {
			return invalid("Invalid last apply date provided.")
		}
	}

	return nil
}

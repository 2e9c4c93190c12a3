package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// EventService proxies event reads and mutations, validating payloads
// before anything leaves for the backend.
type EventService struct {
	client      *upstream.Client
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(client *upstream.Client, invalidator CacheInvalidator, logger *zap.Logger) *EventService {
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{client: client, invalidator: invalidator, logger: logger}
}

// List forwards a filtered event listing.
func (s *EventService) List(ctx context.Context, token string, q models.ListQuery) (*upstream.Response, error) {
	return s.client.Get(ctx, "/events", token, q.Values())
}

// Create validates and forwards a new event. Validation failures carry the
// exact user-facing messages and happen before any upstream call fires.
func (s *EventService) Create(ctx context.Context, token string, p models.EventPayload) (*upstream.Response, error) {
	if err := validateEvent(p, true); err != nil {
		return nil, err
	}
	res, err := s.client.Post(ctx, "/events", token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "events")
	}
	return res, err
}

// Update validates and forwards an event edit. Link and image checks apply
// only when the fields are present.
func (s *EventService) Update(ctx context.Context, token, id string, p models.EventPayload) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Event ID is required")
	}
	if err := validateEvent(p, false); err != nil {
		return nil, err
	}
	res, err := s.client.Put(ctx, "/events/"+id, token, p)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "events")
	}
	return res, err
}

// Delete forwards an event removal.
func (s *EventService) Delete(ctx context.Context, token, id string) (*upstream.Response, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Event ID is required")
	}
	res, err := s.client.Delete(ctx, "/events/"+id, token)
	if err == nil && res.OK() {
		s.invalidator.InvalidateDashboard(ctx)
		s.invalidator.InvalidateAnalytics(ctx, "events")
	}
	return res, err
}

func validateEvent(p models.EventPayload, create bool) error {
	invalid := func(message string) error {
		return appErrors.Clone(appErrors.ErrValidation, message)
	}

	var start, end time.Time
	var startOK, endOK bool
	if create || p.DateTime != "" {
		if p.DateTime == "" {
			return invalid("Invalid Start Date provided.")
		}
		start, startOK = parseDate(p.DateTime)
		if !startOK {
			return invalid("Invalid Start Date provided.")
		}
	}
	if p.EndDateTime != "" {
		end, endOK = parseDate(p.EndDateTime)
		if !endOK {
			return invalid("Invalid End Date provided.")
		}
	}
	if startOK && endOK && start.After(end) {
		return invalid("Start date cannot be after end date.")
	}

	if create {
		if len(p.Links) == 0 {
			return invalid("Please provide valid URLs for all links")
		}
	}
	for _, link := range p.Links {
		if !validURL(link) {
			return invalid("Please provide valid URLs for all links")
		}
	}
	if create && p.ImageURL == "" {
		return invalid("Please provide a valid URL for the image")
	}
	if p.ImageURL != "" && !validURL(p.ImageURL) {
		return invalid("Please provide a valid URL for the image")
	}

	if create || p.Type != "" {
		if !contains(models.EventTypes, p.Type) {
			return invalid("Invalid event type provided.")
		}
	}

	if create {
		if p.Content == "" {
			return invalid("Content is required.")
		}
		if p.Name == "" || p.Venue == "" {
			return invalid("Name and Venue are required.")
		}
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/listing"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// filterDefaults is the shared per-resource default filter schema. Every
// resource gets the same treatment: a Clear affordance is always offered
// and resets to these values.
var filterDefaults = map[string]listing.Values{
	"alumni":    {"page": "1", "limit": "10"},
	"users":     {"page": "1", "limit": "10"},
	"events":    {"page": "1", "limit": "10"},
	"jobs":      {"page": "1", "limit": "10", "dateField": "createdAt"},
	"referrals": {"page": "1", "limit": "10", "dateField": "createdAt"},
	"contacts":  {"page": "1", "limit": "10"},
}

// immediateFilters commit through the debounce path instead of the Apply
// gate; everything else stages as draft.
var immediateFilters = map[string]time.Duration{
	"search": listing.SearchDebounce,
	"page":   listing.PageDebounce,
	"limit":  listing.PageDebounce,
}

// ViewState is the filter state returned to clients.
type ViewState struct {
	Draft    listing.Values `json:"draft"`
	Applied  listing.Values `json:"applied"`
	Dirty    bool           `json:"dirty"`
	CanClear bool           `json:"canClear"`
}

type storedViewState struct {
	Draft   listing.Values `json:"draft"`
	Applied listing.Values `json:"applied"`
}

// ViewStateService keeps each session's per-resource draft/applied filter
// sets in Redis so the dashboard can show dirty indicators and re-issue
// the last applied query after a reload.
type ViewStateService struct {
	rdb    cacheAPI
	ttl    time.Duration
	logger *zap.Logger

	mu         sync.Mutex
	debouncers map[string]*listing.Debouncer
}

// NewViewStateService constructs the service. rdb must be non-nil: the
// filter state lives in Redis, so unlike the aggregate cache there is no
// degraded mode without it.
func NewViewStateService(rdb cacheAPI, ttl time.Duration, logger *zap.Logger) *ViewStateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewStateService{
		rdb:        rdb,
		ttl:        ttl,
		logger:     logger,
		debouncers: make(map[string]*listing.Debouncer),
	}
}

func viewStateKey(token, resource string) string {
	return fmt.Sprintf("viewstate:%s:%s", token, resource)
}

func defaultsFor(resource string) (listing.Values, error) {
	defaults, ok := filterDefaults[resource]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown resource")
	}
	return defaults, nil
}

func (s *ViewStateService) load(ctx context.Context, token, resource string) (*listing.FilterSet, error) {
	defaults, err := defaultsFor(resource)
	if err != nil {
		return nil, err
	}

	set := listing.NewFilterSet(defaults)
	raw, err := s.rdb.Get(ctx, viewStateKey(token, resource)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return set, nil
		}
		return nil, fmt.Errorf("load view state: %w", err)
	}

	var stored storedViewState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("view_state_decode_failed", zap.String("resource", resource), zap.Error(err))
		return set, nil
	}
	if stored.Applied != nil {
		set.StageAll(stored.Applied)
		set.Apply()
	}
	if stored.Draft != nil {
		set.StageAll(stored.Draft)
	}
	return set, nil
}

func (s *ViewStateService) persist(ctx context.Context, token, resource string, set *listing.FilterSet) error {
	encoded, err := json.Marshal(storedViewState{Draft: set.Draft(), Applied: set.Applied()})
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}
	if err := s.rdb.Set(ctx, viewStateKey(token, resource), encoded, s.ttl).Err(); err != nil {
		return fmt.Errorf("persist view state: %w", err)
	}
	return nil
}

func snapshot(set *listing.FilterSet) *ViewState {
	return &ViewState{
		Draft:    set.Draft(),
		Applied:  set.Applied(),
		Dirty:    set.Dirty(),
		CanClear: set.CanClear(),
	}
}

// Get returns the current view state for a session and resource.
func (s *ViewStateService) Get(ctx context.Context, token, resource string) (*ViewState, error) {
	set, err := s.load(ctx, token, resource)
	if err != nil {
		return nil, err
	}
	return snapshot(set), nil
}

// Stage replaces the draft filter values without committing them.
// Immediate-class names (search, page, limit) are not staged here; they
// commit through CommitImmediate.
func (s *ViewStateService) Stage(ctx context.Context, token, resource string, values listing.Values) (*ViewState, error) {
	set, err := s.load(ctx, token, resource)
	if err != nil {
		return nil, err
	}
	for name, value := range values {
		if _, immediate := immediateFilters[name]; immediate {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%q is an immediate filter; it commits on its own debounce", name))
		}
		set.Stage(name, value)
	}
	if err := s.persist(ctx, token, resource, set); err != nil {
		return nil, err
	}
	return snapshot(set), nil
}

// Apply commits the draft into the applied set. Applying an unchanged
// draft leaves the applied state identical.
func (s *ViewStateService) Apply(ctx context.Context, token, resource string) (*ViewState, bool, error) {
	set, err := s.load(ctx, token, resource)
	if err != nil {
		return nil, false, err
	}
	_, changed := set.Apply()
	if err := s.persist(ctx, token, resource, set); err != nil {
		return nil, false, err
	}
	return snapshot(set), changed, nil
}

// Clear resets both copies to the resource defaults.
func (s *ViewStateService) Clear(ctx context.Context, token, resource string) (*ViewState, bool, error) {
	set, err := s.load(ctx, token, resource)
	if err != nil {
		return nil, false, err
	}
	changed := set.Clear()
	if err := s.persist(ctx, token, resource, set); err != nil {
		return nil, false, err
	}
	return snapshot(set), changed, nil
}

// CommitImmediate schedules a debounced commit for an immediate-class
// filter. Within one debounce window only the last edit is committed;
// earlier edits are superseded, not queued.
func (s *ViewStateService) CommitImmediate(token, resource, name, value string) error {
	delay, ok := immediateFilters[name]
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%q is not an immediate filter", name))
	}
	if _, err := defaultsFor(resource); err != nil {
		return err
	}
	value, err := normalizeImmediate(name, value)
	if err != nil {
		return err
	}

	key := debounceKey(token, resource, name)
	s.debouncerFor(key, delay).Trigger(func() {
		// The debouncer served its burst once the commit runs; dropping it
		// keeps the map from accumulating entries for dead sessions.
		defer s.releaseDebouncer(key)

		// The originating request is long gone by the time the quiet
		// window elapses.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		set, err := s.load(ctx, token, resource)
		if err != nil {
			s.logger.Warn("immediate_commit_load_failed", zap.String("resource", resource), zap.Error(err))
			return
		}
		set.Commit(name, value)
		if err := s.persist(ctx, token, resource, set); err != nil {
			s.logger.Warn("immediate_commit_persist_failed", zap.String("resource", resource), zap.Error(err))
		}
	})
	return nil
}

// normalizeImmediate clamps page and limit into their valid ranges before
// they enter the persisted state. Search text passes through untouched.
func normalizeImmediate(name, value string) (string, error) {
	switch name {
	case "page":
		page, err := strconv.Atoi(value)
		if err != nil {
			return "", appErrors.Clone(appErrors.ErrValidation, "page must be a number")
		}
		if page < 1 {
			page = 1
		}
		return strconv.Itoa(page), nil
	case "limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return "", appErrors.Clone(appErrors.ErrValidation, "limit must be a number")
		}
		return strconv.Itoa(listing.ClampPerPage(limit)), nil
	}
	return value, nil
}

// FlushImmediate forces any pending debounced commit to run now.
func (s *ViewStateService) FlushImmediate(token, resource, name string) {
	s.mu.Lock()
	d, ok := s.debouncers[debounceKey(token, resource, name)]
	s.mu.Unlock()
	if ok {
		d.Flush()
	}
}

func debounceKey(token, resource, name string) string {
	return token + ":" + resource + ":" + name
}

func (s *ViewStateService) debouncerFor(key string, delay time.Duration) *listing.Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.debouncers[key]; ok {
		return d
	}
	d := listing.NewDebouncer(delay)
	s.debouncers[key] = d
	return d
}

func (s *ViewStateService) releaseDebouncer(key string) {
	s.mu.Lock()
	delete(s.debouncers, key)
	s.mu.Unlock()
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/listing"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

func newTestViewState() *ViewStateService {
	return NewViewStateService(newFakeRedis(), time.Hour, nil)
}

func TestViewStateStartsAtDefaults(t *testing.T) {
	svc := newTestViewState()

	state, err := svc.Get(context.Background(), "tok", "alumni")
	require.NoError(t, err)
	assert.Equal(t, "1", state.Applied["page"])
	assert.Equal(t, "10", state.Applied["limit"])
	assert.False(t, state.Dirty)
	assert.False(t, state.CanClear)
}

func TestViewStateRejectsUnknownResource(t *testing.T) {
	svc := newTestViewState()

	_, err := svc.Get(context.Background(), "tok", "payments")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestViewStateStageApplyClearCycle(t *testing.T) {
	svc := newTestViewState()
	ctx := context.Background()

	state, err := svc.Stage(ctx, "tok", "alumni", listing.Values{"batch": "2021"})
	require.NoError(t, err)
	assert.True(t, state.Dirty)
	assert.NotContains(t, state.Applied, "batch")

	state, changed, err := svc.Apply(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2021", state.Applied["batch"])
	assert.False(t, state.Dirty)

	// Re-applying an identical draft changes nothing.
	_, changed, err = svc.Apply(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.False(t, changed)

	state, changed, err = svc.Clear(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotContains(t, state.Applied, "batch")
	assert.False(t, state.CanClear)
}

func TestViewStateSurvivesReload(t *testing.T) {
	rdb := newFakeRedis()
	svc := NewViewStateService(rdb, time.Hour, nil)
	ctx := context.Background()

	_, err := svc.Stage(ctx, "tok", "jobs", listing.Values{"workType": "remote"})
	require.NoError(t, err)
	_, _, err = svc.Apply(ctx, "tok", "jobs")
	require.NoError(t, err)

	// A second service instance over the same store sees the state.
	other := NewViewStateService(rdb, time.Hour, nil)
	state, err := other.Get(ctx, "tok", "jobs")
	require.NoError(t, err)
	assert.Equal(t, "remote", state.Applied["workType"])
}

func TestViewStateStageRejectsImmediateFilters(t *testing.T) {
	svc := newTestViewState()

	_, err := svc.Stage(context.Background(), "tok", "alumni", listing.Values{"search": "kumar"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestViewStateImmediateCommitDebounces(t *testing.T) {
	svc := newTestViewState()
	ctx := context.Background()

	require.NoError(t, svc.CommitImmediate("tok", "alumni", "search", "k"))
	require.NoError(t, svc.CommitImmediate("tok", "alumni", "search", "ku"))
	require.NoError(t, svc.CommitImmediate("tok", "alumni", "search", "kumar"))

	// Nothing lands until the quiet window elapses or a flush forces it.
	state, err := svc.Get(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.NotContains(t, state.Applied, "search")

	svc.FlushImmediate("tok", "alumni", "search")

	state, err = svc.Get(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.Equal(t, "kumar", state.Applied["search"])
	assert.Equal(t, "kumar", state.Draft["search"])
	assert.False(t, state.Dirty)
}

func TestViewStateImmediateCommitClampsPageAndLimit(t *testing.T) {
	svc := newTestViewState()
	ctx := context.Background()

	require.NoError(t, svc.CommitImmediate("tok", "alumni", "limit", "500"))
	svc.FlushImmediate("tok", "alumni", "limit")
	require.NoError(t, svc.CommitImmediate("tok", "alumni", "page", "0"))
	svc.FlushImmediate("tok", "alumni", "page")

	state, err := svc.Get(ctx, "tok", "alumni")
	require.NoError(t, err)
	assert.Equal(t, "100", state.Applied["limit"])
	assert.Equal(t, "1", state.Applied["page"])
}

func TestViewStateImmediateCommitRejectsNonNumericPaging(t *testing.T) {
	svc := newTestViewState()

	for _, name := range []string{"page", "limit"} {
		err := svc.CommitImmediate("tok", "alumni", name, "ten")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestViewStateReleasesDebouncersAfterCommit(t *testing.T) {
	svc := newTestViewState()

	for _, resource := range []string{"alumni", "jobs", "events"} {
		require.NoError(t, svc.CommitImmediate("tok", resource, "search", "kumar"))
	}
	for _, resource := range []string{"alumni", "jobs", "events"} {
		svc.FlushImmediate("tok", resource, "search")
	}

	svc.mu.Lock()
	remaining := len(svc.debouncers)
	svc.mu.Unlock()
	assert.Zero(t, remaining)
}

func TestViewStateImmediateCommitRejectsDraftFilters(t *testing.T) {
	svc := newTestViewState()

	err := svc.CommitImmediate("tok", "alumni", "batch", "2021")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

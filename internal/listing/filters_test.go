package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFilterSet() *FilterSet {
	return NewFilterSet(Values{"page": "1", "limit": "10"})
}

func TestFilterSetDirtyGate(t *testing.T) {
	set := newTestFilterSet()
	assert.False(t, set.Dirty())

	set.Stage("batch", "2021")
	assert.True(t, set.Dirty())

	applied, changed := set.Apply()
	assert.True(t, changed)
	assert.Equal(t, "2021", applied["batch"])
	assert.False(t, set.Dirty())
}

func TestFilterSetApplyUnchangedDraft(t *testing.T) {
	set := newTestFilterSet()
	set.Stage("department", "CSE")
	set.Apply()

	before := set.Applied()
	applied, changed := set.Apply()
	assert.False(t, changed)
	assert.True(t, applied.Equal(before))
}

func TestFilterSetStagingSameValueIsNotDirty(t *testing.T) {
	set := newTestFilterSet()
	set.Stage("verified", "true")
	set.Apply()

	set.Stage("verified", "true")
	assert.False(t, set.Dirty())
}

func TestFilterSetCommitBypassesApplyGate(t *testing.T) {
	set := newTestFilterSet()
	set.Commit("search", "kumar")

	assert.False(t, set.Dirty())
	assert.Equal(t, "kumar", set.Applied()["search"])
	assert.Equal(t, "kumar", set.Draft()["search"])
}

func TestFilterSetClear(t *testing.T) {
	set := newTestFilterSet()
	assert.False(t, set.CanClear())
	assert.False(t, set.Clear())

	set.Stage("batch", "2020")
	set.Apply()
	assert.True(t, set.CanClear())

	assert.True(t, set.Clear())
	assert.False(t, set.Dirty())
	assert.Equal(t, "1", set.Applied()["page"])
	_, ok := set.Applied()["batch"]
	assert.False(t, ok)
}

func TestFilterSetStageEmptyRemoves(t *testing.T) {
	set := newTestFilterSet()
	set.Stage("batch", "2020")
	set.Stage("batch", "")
	assert.False(t, set.Dirty())
}

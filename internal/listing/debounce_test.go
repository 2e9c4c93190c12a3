package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerBurstCommitsOnceWithLastValue(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var committed []string
	commit := func(value string) func() {
		return func() {
			mu.Lock()
			committed = append(committed, value)
			mu.Unlock()
		}
	}

	d.Trigger(commit("k"))
	d.Trigger(commit("ku"))
	d.Trigger(commit("kumar"))

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"kumar"}, committed)
}

func TestDebouncerFlushRunsPendingNow(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.Stop()

	done := make(chan struct{})
	d.Trigger(func() { close(done) })
	d.Flush()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pending commit did not run on flush")
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := false
	d.Trigger(func() { fired = true })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired)
}

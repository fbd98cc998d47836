package core

import (
	"sync"
	"sync/atomic"

	"github.com/dustin/go-broadcast"
	"github.com/encodeous/bestpath/perf"
	"github.com/encodeous/bestpath/state"
)

// DecisionTrace fans decisions out to any number of subscribers, in the order they were made.
// Publish never blocks, a decision is dropped once the trace buffer is full.
type DecisionTrace struct {
	broadcast.Broadcaster
	// mu orders Register and Unregister against Close
	mu     sync.Mutex
	closed atomic.Bool
}

func NewDecisionTrace() *DecisionTrace {
	return &DecisionTrace{
		Broadcaster: broadcast.NewBroadcaster(state.TraceBufferLen),
	}
}

// Publish reports whether d was queued for the subscribers
func (t *DecisionTrace) Publish(d state.Decision) bool {
	if t.closed.Load() {
		return false
	}
	if !t.TrySubmit(d) {
		perf.TraceDroppedPerSecond.Add(1)
		return false
	}
	return true
}

func (t *DecisionTrace) Register(ch chan<- any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed.Load() {
		return
	}
	t.Broadcaster.Register(ch)
}

func (t *DecisionTrace) Unregister(ch chan<- any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed.Load() {
		return
	}
	t.Broadcaster.Unregister(ch)
}

func (t *DecisionTrace) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed.Swap(true) {
		return nil
	}
	return t.Broadcaster.Close()
}

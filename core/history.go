package core

import (
	"slices"
	"time"

	"github.com/encodeous/bestpath/state"
	"github.com/jellydator/ttlcache/v3"
)

// DecisionHistory keeps the most recent decisions per destination. Entries expire ttl after the last decision.
// There is no janitor goroutine, expired entries are swept on Record.
type DecisionHistory struct {
	cache *ttlcache.Cache[state.Destination, []state.Decision]
}

func NewDecisionHistory(ttl time.Duration) *DecisionHistory {
	return &DecisionHistory{
		cache: ttlcache.New[state.Destination, []state.Decision](
			ttlcache.WithTTL[state.Destination, []state.Decision](ttl),
			ttlcache.WithDisableTouchOnHit[state.Destination, []state.Decision](),
		),
	}
}

// Record must not be called concurrently for the same destination
func (h *DecisionHistory) Record(d state.Decision) {
	h.cache.DeleteExpired()
	var past []state.Decision
	if item := h.cache.Get(d.Destination); item != nil {
		past = item.Value()
	}
	if len(past) >= state.DecisionHistoryLen {
		past = past[len(past)-state.DecisionHistoryLen+1:]
	}
	next := make([]state.Decision, 0, len(past)+1)
	next = append(next, past...)
	next = append(next, d)
	h.cache.Set(d.Destination, next, ttlcache.DefaultTTL)
}

// Get returns a copy of the retained decisions for dst, oldest first
func (h *DecisionHistory) Get(dst state.Destination) []state.Decision {
	item := h.cache.Get(dst)
	if item == nil {
		return nil
	}
	return slices.Clone(item.Value())
}

// Len returns the number of destinations with unexpired history
func (h *DecisionHistory) Len() int {
	h.cache.DeleteExpired()
	return h.cache.Len()
}

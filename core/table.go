package core

import (
	"sync"

	"github.com/encodeous/bestpath/state"
)

// Table holds the single best route for every destination known to one router.
// It is safe for concurrent use; Receive is atomic with respect to other calls.
type Table struct {
	self   state.AsId
	mu     sync.Mutex
	routes map[state.Destination]state.Route
	order  []state.Destination // first installation order
}

func NewTable(self state.AsId) *Table {
	return &Table{
		self:   self,
		routes: make(map[state.Destination]state.Route),
	}
}

// Self returns the AS of the router that owns the table
func (t *Table) Self() state.AsId {
	return t.self
}

// Receive offers a route received from a neighbour. Our own AS is prepended to the received path
// before it is compared against the installed route.
func (t *Table) Receive(dst state.Destination, received state.AsPath, localPref uint32) state.Decision {
	candidate := state.Route{
		Path:      received.Prepend(t.self),
		LocalPref: localPref,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.routes[dst]
	if !ok {
		t.routes[dst] = candidate
		t.order = append(t.order, dst)
		return state.Decision{
			Kind:        state.Installed,
			Destination: dst,
			Candidate:   candidate.Clone(),
		}
	}

	incumbent := current.Clone()
	if Prefer(current, candidate) {
		t.routes[dst] = candidate
		return state.Decision{
			Kind:        state.Updated,
			Destination: dst,
			Candidate:   candidate.Clone(),
			Incumbent:   &incumbent,
		}
	}
	return state.Decision{
		Kind:        state.Rejected,
		Destination: dst,
		Candidate:   candidate.Clone(),
		Incumbent:   &incumbent,
	}
}

// Get returns a copy of the installed route for dst
func (t *Table) Get(dst state.Destination) (state.Route, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	route, ok := t.routes[dst]
	if !ok {
		return state.Route{}, false
	}
	return route.Clone(), true
}

func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.routes)
}

// Snapshot returns a copy of every installed route, in the order destinations were first installed.
func (t *Table) Snapshot() []state.TableEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := make([]state.TableEntry, 0, len(t.order))
	for _, dst := range t.order {
		entries = append(entries, state.TableEntry{
			Destination: dst,
			Route:       t.routes[dst].Clone(),
		})
	}
	return entries
}

package core

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/encodeous/bestpath/perf"
	"github.com/encodeous/bestpath/state"
)

// Router is a single BGP speaker. It owns exactly one Table and runs every received
// advertisement through import policy, validation and best path selection.
type Router struct {
	Name    string
	table   *Table
	policy  *ImportPolicy
	filter  *Filter
	trace   *DecisionTrace
	history *DecisionHistory
	log     *slog.Logger

	// mu serializes Receive so that Seq, history and trace order match table mutation order
	mu        sync.Mutex
	seq       uint64
	closeOnce sync.Once
}

func NewRouter(cfg state.RouterCfg, log *slog.Logger) (*Router, error) {
	err := state.RouterConfigValidator(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid router config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	r := &Router{
		Name:    cfg.Name,
		table:   NewTable(cfg.As),
		policy:  NewImportPolicy(cfg),
		filter:  NewFilter(cfg.As, cfg.Validation),
		trace:   NewDecisionTrace(),
		history: NewDecisionHistory(state.DecisionHistoryTTL),
		log:     log.With("router", cfg.Name, "as", uint32(cfg.As)),
	}
	if cfg.Validation.Enabled() {
		r.log.Debug("advertisement validation enabled", "validation", cfg.Validation)
	}
	return r, nil
}

func (r *Router) As() state.AsId {
	return r.table.Self()
}

// Receive processes one advertisement to completion and returns the decision
func (r *Router) Receive(adv state.Advertisement) state.Decision {
	start := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	lp := r.policy.LocalPref(adv)

	var d state.Decision
	if reason := r.filter.Check(adv); reason != "" {
		d = state.Decision{
			Kind:        state.RejectedInvalid,
			Destination: adv.Destination,
			Candidate: state.Route{
				Path:      adv.Path.Prepend(r.As()),
				LocalPref: lp,
			},
			Reason: reason,
		}
		if cur, ok := r.table.Get(adv.Destination); ok {
			d.Incumbent = &cur
		}
	} else {
		d = r.table.Receive(adv.Destination, adv.Path, lp)
	}

	r.seq++
	d.Seq = r.seq

	r.logDecision(adv, d)
	r.count(d, time.Since(start))
	r.history.Record(d)
	r.trace.Publish(d)
	return d
}

func (r *Router) logDecision(adv state.Advertisement, d state.Decision) {
	args := []any{"seq", d.Seq, "dst", d.Destination, "path", d.Candidate.Path.String(), "lp", d.Candidate.LocalPref}
	if adv.From != "" {
		args = append(args, "from", adv.From)
	}
	if d.Incumbent != nil {
		args = append(args, "incumbent", d.Incumbent.String())
	}
	switch d.Kind {
	case state.Installed:
		r.log.Debug("route installed", args...)
	case state.Updated:
		r.log.Info("route updated", args...)
	case state.Rejected:
		r.log.Debug("route rejected", args...)
	case state.RejectedInvalid:
		r.log.Warn("invalid advertisement", append(args, "reason", d.Reason)...)
	}
}

func (r *Router) count(d state.Decision, elapsed time.Duration) {
	perf.ReceiveLatency.Add(float64(elapsed.Microseconds()))
	switch d.Kind {
	case state.Installed:
		perf.InstalledPerSecond.Add(1)
	case state.Updated:
		perf.UpdatedPerSecond.Add(1)
	case state.Rejected:
		perf.RejectedPerSecond.Add(1)
	case state.RejectedInvalid:
		perf.InvalidPerSecond.Add(1)
	}
}

// Snapshot returns the installed routes in first installation order
func (r *Router) Snapshot() []state.TableEntry {
	return r.table.Snapshot()
}

// Route returns the installed route for dst
func (r *Router) Route(dst state.Destination) (state.Route, bool) {
	return r.table.Get(dst)
}

// History returns recent decisions for dst, oldest first
func (r *Router) History(dst state.Destination) []state.Decision {
	return r.history.Get(dst)
}

// Subscribe registers ch to receive subsequent decisions in order. Receive never waits on subscribers: while a
// slow subscriber holds up the trace, decisions beyond the trace buffer are dropped for everyone.
func (r *Router) Subscribe(ch chan<- any) {
	r.trace.Register(ch)
}

func (r *Router) Unsubscribe(ch chan<- any) {
	r.trace.Unregister(ch)
}

func (r *Router) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.trace.Close()
		r.log.Debug("router closed")
	})
	return err
}

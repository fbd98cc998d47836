package render

import (
	"fmt"
	"strings"

	"github.com/encodeous/bestpath/state"
)

// Decision renders a single decision as one console line
func Decision(name string, d state.Decision) string {
	switch d.Kind {
	case state.Installed:
		return fmt.Sprintf("[%s] installed new route for %s: %s (lp: %d)",
			name, d.Destination, d.Candidate.Path, d.Candidate.LocalPref)
	case state.Updated:
		return fmt.Sprintf("[%s] route UPDATED for %s: %s (lp: %d) (beat %s, lp: %d)",
			name, d.Destination, d.Candidate.Path, d.Candidate.LocalPref, d.Incumbent.Path, d.Incumbent.LocalPref)
	case state.Rejected:
		return fmt.Sprintf("[%s] route ignored for %s: %s (lp: %d) (kept %s, lp: %d)",
			name, d.Destination, d.Candidate.Path, d.Candidate.LocalPref, d.Incumbent.Path, d.Incumbent.LocalPref)
	case state.RejectedInvalid:
		return fmt.Sprintf("[%s] invalid route for %s: %s (lp: %d): %s",
			name, d.Destination, d.Candidate.Path, d.Candidate.LocalPref, d.Reason)
	}
	return fmt.Sprintf("[%s] %s", name, d)
}

// Table renders a routing table listing
func Table(name string, as state.AsId, entries []state.TableEntry) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("--- Route Table: %s (AS%d) ---\n", name, as))
	if len(entries) == 0 {
		sb.WriteString("  (empty table)\n")
		return sb.String()
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s -> path: %s (lp: %d)\n", e.Destination, e.Route.Path, e.Route.LocalPref))
	}
	return sb.String()
}

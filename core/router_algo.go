package core

// Best path selection, a reduced form of RFC 4271 section 9.1.2.2.

import (
	"github.com/encodeous/bestpath/state"
)

// Prefer reports whether candidate is strictly better than current.
//
// Rules are evaluated in order and the first decisive rule wins:
//  1. higher local preference
//  2. shorter installed AS path
//
// A full tie retains current. There are no further tie-breaks.
func Prefer(current, candidate state.Route) bool {
	// administrative policy overrides any path heuristic
	if candidate.LocalPref > current.LocalPref {
		return true
	}
	if candidate.LocalPref < current.LocalPref {
		return false
	}

	if len(candidate.Path) < len(current.Path) {
		return true
	}

	return false // keep the incumbent
}

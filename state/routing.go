package state

import (
	"fmt"
	"slices"
	"strings"
)

// AsId identifies a single autonomous system
type AsId uint32

// AsPath is the sequence of systems an advertisement has traversed, most recently added first.
type AsPath []AsId

// Prepend returns a new path with as at the front. The receiver is never aliased.
func (p AsPath) Prepend(as AsId) AsPath {
	np := make(AsPath, 0, len(p)+1)
	np = append(np, as)
	return append(np, p...)
}

func (p AsPath) Contains(as AsId) bool {
	return slices.Contains(p, as)
}

func (p AsPath) Clone() AsPath {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

func (p AsPath) String() string {
	sb := strings.Builder{}
	sb.WriteRune('[')
	for i, as := range p {
		if i != 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprintf("%d", as))
	}
	sb.WriteRune(']')
	return sb.String()
}

// Destination is an opaque key for a destination network, typically a prefix string
type Destination string

// Route is a path in its installed form: own AS prepended, local preference assigned.
type Route struct {
	Path      AsPath `yaml:"path"`
	LocalPref uint32 `yaml:"local_pref"`
}

func (r Route) Clone() Route {
	return Route{
		Path:      r.Path.Clone(),
		LocalPref: r.LocalPref,
	}
}

func (r Route) String() string {
	return fmt.Sprintf("(path: %s, lp: %d)", r.Path, r.LocalPref)
}

// Advertisement is a route offered by a neighbour, as received.
type Advertisement struct {
	Destination Destination `yaml:"destination"`
	Path        AsPath      `yaml:"path"`
	LocalPref   *uint32     `yaml:"local_pref,omitempty"` // nil lets the import policy decide
	From        string      `yaml:"from,omitempty"`       // display label of the advertising neighbour
}

// Neighbour returns the AS that handed us the advertisement, if the path is non-empty.
func (a Advertisement) Neighbour() (AsId, bool) {
	if len(a.Path) == 0 {
		return 0, false
	}
	return a.Path[0], true
}

type TableEntry struct {
	Destination Destination
	Route       Route
}

func (e TableEntry) String() string {
	return fmt.Sprintf("%s via %s", e.Destination, e.Route)
}

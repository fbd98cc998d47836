package state

import "fmt"

type DecisionKind int

const (
	// Installed means no route existed for the destination
	Installed DecisionKind = iota
	// Updated means the candidate displaced the previous best route
	Updated
	// Rejected means the previous best route was retained
	Rejected
	// RejectedInvalid means the advertisement failed validation and never reached selection
	RejectedInvalid
)

func (k DecisionKind) String() string {
	switch k {
	case Installed:
		return "INSTALLED"
	case Updated:
		return "UPDATED"
	case Rejected:
		return "REJECTED"
	case RejectedInvalid:
		return "REJECTED_INVALID"
	}
	return fmt.Sprintf("DecisionKind(%d)", int(k))
}

// Decision is the outcome of processing a single advertisement
type Decision struct {
	Seq         uint64
	Kind        DecisionKind
	Destination Destination
	Candidate   Route
	// Incumbent is the route the candidate was compared against, nil when none was installed
	Incumbent *Route
	// Reason is only set for RejectedInvalid
	Reason string
}

// Accepted reports whether the candidate is now the installed route
func (d Decision) Accepted() bool {
	return d.Kind == Installed || d.Kind == Updated
}

func (d Decision) String() string {
	if d.Incumbent == nil {
		return fmt.Sprintf("%s %s %s", d.Kind, d.Destination, d.Candidate)
	}
	return fmt.Sprintf("%s %s %s vs %s", d.Kind, d.Destination, d.Candidate, *d.Incumbent)
}

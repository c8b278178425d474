package quantile

import (
	"fmt"

	"github.com/mwiater/normdist/internal/dist"
)

// Direction is the direction of travel of a scan.
type Direction int

const (
	Down Direction = -1 // Down walks toward smaller x (right-tail search).
	Up   Direction = 1  // Up walks toward larger x (left-tail search).
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// SearchState is the transient state of one inversion call. It is
// returned with the result for inspection and inside SearchError when a
// search gives up; it is never reused between calls.
type SearchState struct {
	X          float64   // current trial value
	CDF        float64   // oracle CDF at X
	Step       float64   // resolution of the search
	Direction  Direction // direction of travel
	Target     float64   // probability the search stops at
	Start      float64   // value the search started from
	Iterations int       // oracle evaluations so far
}

// SearchError is returned when a search cannot finish. State.X holds the
// best value found before giving up.
type SearchError struct {
	Op    string
	State SearchState
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %v after %d iterations (x=%g, cdf=%g, target=%g, start=%g)",
		e.Op, e.Err, e.State.Iterations, e.State.X, e.State.CDF, e.State.Target, e.State.Start)
}

func (e *SearchError) Unwrap() error { return e.Err }

func nonTermination(op string, st SearchState) error {
	return &SearchError{Op: op, State: st, Err: dist.ErrNonTermination}
}

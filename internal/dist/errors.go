package dist

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds shared by every package in the module. Callers match them
// with errors.Is; the returned errors wrap them with the offending values.
var (
	// ErrDomain reports invalid distribution parameters (sigma <= 0, df <= 0)
	// or other arguments outside the domain of an operation.
	ErrDomain = errors.New("domain error")

	// ErrRange reports a probability outside the open interval (0, 1).
	ErrRange = errors.New("probability out of range")

	// ErrNonTermination reports a search that exhausted its iteration cap.
	ErrNonTermination = errors.New("search did not terminate")
)

// CheckProbability returns ErrRange unless 0 < p < 1.
func CheckProbability(p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return fmt.Errorf("%w: p=%v not in (0, 1)", ErrRange, p)
	}
	return nil
}

// CheckPositive returns ErrDomain unless v is finite and strictly positive.
func CheckPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s=%v must be > 0", ErrDomain, name, v)
	}
	return nil
}

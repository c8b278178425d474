package quantile

import (
	"math"

	"github.com/mwiater/normdist/internal/dist"
)

// RightStart returns a provisional upper bound for a right-tail search.
// Symmetric distributions start at 10; chi-squared starts five standard
// deviations above its mean, and never below 10.
func RightStart(o dist.Oracle, f float64) float64 {
	if o.Symmetric() {
		return 10
	}
	return math.Max(10, f+5*math.Sqrt(2*f))
}

// LeftStart returns a provisional lower bound for a left-tail search.
func LeftStart(o dist.Oracle) float64 {
	if lo := o.Lower(); !math.IsInf(lo, -1) {
		return lo
	}
	return -10
}

// TCritical returns the two-sided Student-t critical value for the given
// confidence level with f degrees of freedom, e.g. 2.228 for (10, 0.95).
func (s *Solver) TCritical(f, confidence float64) (float64, error) {
	o := dist.TOracle{}
	xs, err := s.TwoSidedSymmetric(o, f, confidence, RightStart(o, f))
	if err != nil {
		return 0, err
	}
	return xs[0], nil
}

// ChiSquaredCritical returns the chi-squared values cutting off
// (1-confidence)/2 in each tail as [right, left].
func (s *Solver) ChiSquaredCritical(f, confidence float64) ([2]float64, error) {
	if err := dist.CheckProbability(confidence); err != nil {
		return [2]float64{}, err
	}
	o := dist.ChiSquaredOracle{}
	p := 1 - (1-confidence)/2
	return s.TwoSidedIndependent(o, f, p, RightStart(o, f), LeftStart(o))
}

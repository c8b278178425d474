// Package quantile inverts a monotonic CDF oracle to recover critical
// values. Every search is bounded by Config.MaxIterations oracle
// evaluations.
package quantile

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/mwiater/normdist/internal/dist"
)

// Method selects how a search closes in on the target.
type Method int

const (
	// MethodBisection brackets the target and halves the bracket down to Step.
	MethodBisection Method = iota
	// MethodLinear scans in fixed Step increments from the start value.
	MethodLinear
)

func (m Method) String() string {
	switch m {
	case MethodBisection:
		return "bisection"
	case MethodLinear:
		return "linear"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a config string to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "bisection", "bisect", "":
		return MethodBisection, nil
	case "linear", "scan":
		return MethodLinear, nil
	}
	return 0, fmt.Errorf("%w: unknown search method %q", dist.ErrDomain, s)
}

const (
	DefaultStep          = 1e-4
	DefaultMaxIterations = 1_000_000
)

// Config holds the solver's tunables.
type Config struct {
	Step          float64
	MaxIterations int
	Method        Method
}

// DefaultConfig returns a bisection solver with 1e-4 resolution.
func DefaultConfig() Config {
	return Config{Step: DefaultStep, MaxIterations: DefaultMaxIterations, Method: MethodBisection}
}

// Validate reports dist.ErrDomain for a non-positive step or iteration cap.
func (c Config) Validate() error {
	if err := dist.CheckPositive("step", c.Step); err != nil {
		return err
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations=%d must be > 0", dist.ErrDomain, c.MaxIterations)
	}
	if c.Method != MethodBisection && c.Method != MethodLinear {
		return fmt.Errorf("%w: unknown method %v", dist.ErrDomain, c.Method)
	}
	return nil
}

// Solver inverts CDF oracles. It carries configuration only and is safe
// for concurrent use.
type Solver struct {
	cfg    Config
	logger *slog.Logger
}

// New returns a Solver for cfg. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Solver{cfg: cfg, logger: logger}, nil
}

// Default returns a Solver with DefaultConfig.
func Default() *Solver {
	s, _ := New(DefaultConfig(), nil)
	return s
}

// Config returns the solver's configuration.
func (s *Solver) Config() Config { return s.cfg }

// InvRight walks down from start while oracle.CDF(x, f) > p and returns
// the first x, at Step resolution, where the CDF has dropped to p or below.
// The result sits at most one Step below the exact quantile.
func (s *Solver) InvRight(o dist.Oracle, f, p, start float64) (float64, error) {
	if err := checkArgs(f, p, start); err != nil {
		return 0, err
	}
	st, err := s.search("inv right", o, f, p, start, Down)
	return st.X, err
}

// InvLeft walks up from start while oracle.CDF(x, f) < 1-p and returns the
// first x, at Step resolution, where the CDF has reached 1-p.
func (s *Solver) InvLeft(o dist.Oracle, f, p, start float64) (float64, error) {
	if err := checkArgs(f, p, start); err != nil {
		return 0, err
	}
	st, err := s.search("inv left", o, f, 1-p, start, Up)
	return st.X, err
}

// TwoSidedSymmetric runs a single right-tail search at (1+p)/2 and returns
// [x, -x]. It relies on the distribution being symmetric about zero and
// refuses oracles that are not.
func (s *Solver) TwoSidedSymmetric(o dist.Oracle, f, p, start float64) ([2]float64, error) {
	if !o.Symmetric() {
		return [2]float64{}, fmt.Errorf("%w: %s is not symmetric about zero; use TwoSidedIndependent", dist.ErrDomain, o.Name())
	}
	if err := checkArgs(f, p, start); err != nil {
		return [2]float64{}, err
	}
	st, err := s.search("two-sided symmetric", o, f, 1-(1-p)/2, start, Down)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{st.X, -st.X}, nil
}

// TwoSidedIndependent computes the right and left critical values with
// two separate searches and returns [right, left]. It is correct for
// asymmetric distributions such as chi-squared.
func (s *Solver) TwoSidedIndependent(o dist.Oracle, f, p, rightStart, leftStart float64) ([2]float64, error) {
	right, err := s.InvRight(o, f, p, rightStart)
	if err != nil {
		return [2]float64{}, err
	}
	left, err := s.InvLeft(o, f, p, leftStart)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{right, left}, nil
}

func checkArgs(f, p, start float64) error {
	if err := dist.CheckPositive("df", f); err != nil {
		return err
	}
	if err := dist.CheckProbability(p); err != nil {
		return err
	}
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return fmt.Errorf("%w: start=%v must be finite", dist.ErrDomain, start)
	}
	return nil
}

// searcher carries one inversion call. It lives for a single search.
type searcher struct {
	op     string
	oracle dist.Oracle
	df     float64
	max    int
	st     SearchState
}

// keepGoing is the continue predicate: cdf > target going down, cdf <
// target going up.
func (r *searcher) keepGoing(c float64) bool {
	if r.st.Direction == Down {
		return c > r.st.Target
	}
	return c < r.st.Target
}

func (r *searcher) clamp(x float64) float64 {
	return math.Max(x, r.oracle.Lower())
}

// eval evaluates the oracle at x, counting the call against the cap.
func (r *searcher) eval(x float64) (float64, error) {
	if r.st.Iterations >= r.max {
		return 0, r.fail()
	}
	r.st.Iterations++
	c := r.oracle.CDF(x, r.df)
	if math.IsNaN(c) {
		return 0, fmt.Errorf("%s: %w: %s CDF is NaN at x=%g (df=%g)", r.op, dist.ErrDomain, r.oracle.Name(), x, r.df)
	}
	return c, nil
}

func (r *searcher) move(x, c float64) {
	r.st.X, r.st.CDF = x, c
}

func (r *searcher) fail() error {
	return nonTermination(r.op, r.st)
}

// search finds the first x in direction dir where the continue predicate
// no longer holds. If start is already past the target, it is first moved
// back with a doubling stride until the predicate holds.
func (s *Solver) search(op string, o dist.Oracle, f, target, start float64, dir Direction) (SearchState, error) {
	r := &searcher{
		op:     op,
		oracle: o,
		df:     f,
		max:    s.cfg.MaxIterations,
		st: SearchState{
			X:         start,
			Step:      s.cfg.Step,
			Direction: dir,
			Target:    target,
			Start:     start,
		},
	}

	x := r.clamp(start)
	c, err := r.eval(x)
	if err != nil {
		return r.st, err
	}
	r.move(x, c)

	for stride := 1.0; !r.keepGoing(c); stride *= 2 {
		next := r.clamp(x - float64(dir)*stride)
		if next == x {
			// Pinned at the lower support bound with the predicate still false.
			return r.st, r.fail()
		}
		x = next
		if c, err = r.eval(x); err != nil {
			return r.st, err
		}
		r.move(x, c)
	}
	r.st.Start = x

	if s.cfg.Method == MethodLinear {
		err = r.scan()
	} else {
		err = r.bisect()
	}
	if err != nil {
		return r.st, err
	}
	s.logger.Debug("quantile search finished",
		"op", op, "oracle", o.Name(), "df", f, "target", target,
		"x", r.st.X, "cdf", r.st.CDF, "iterations", r.st.Iterations, "method", s.cfg.Method.String())
	return r.st, nil
}

// scan steps from Start one Step at a time. Positions are computed from
// Start to avoid accumulating rounding error.
func (r *searcher) scan() error {
	c := r.st.CDF
	for k := 1; r.keepGoing(c); k++ {
		x := r.clamp(r.st.Start + float64(r.st.Direction)*float64(k)*r.st.Step)
		var err error
		if c, err = r.eval(x); err != nil {
			return err
		}
		r.move(x, c)
	}
	return nil
}

// bisect finds a point past the target with a doubling stride, then halves
// the bracket until it is no wider than Step. It settles on the bracket end
// where the predicate is false, so like scan it overshoots the exact
// quantile by at most one Step.
func (r *searcher) bisect() error {
	inside := r.st.X
	var outside, outsideCDF float64
	for stride := 1.0; ; stride *= 2 {
		x := r.clamp(inside + float64(r.st.Direction)*stride)
		c, err := r.eval(x)
		if err != nil {
			return err
		}
		if !r.keepGoing(c) {
			outside, outsideCDF = x, c
			break
		}
		if x == inside {
			r.move(x, c)
			return r.fail()
		}
		inside = x
		r.move(x, c)
	}

	// X tracks the current answer so a capped search reports it.
	r.move(outside, outsideCDF)
	for math.Abs(outside-inside) > r.st.Step {
		mid := inside + (outside-inside)/2
		if mid == inside || mid == outside {
			// Step is below float resolution here; the bracket cannot shrink.
			break
		}
		c, err := r.eval(mid)
		if err != nil {
			return err
		}
		if r.keepGoing(c) {
			inside = mid
		} else {
			outside = mid
			r.move(mid, c)
		}
	}
	return nil
}

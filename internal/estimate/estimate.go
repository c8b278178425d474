// Package estimate draws random samples from a dataset column, builds
// confidence intervals from them, and checks the intervals against the
// column's true parameters.
package estimate

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"

	"github.com/mwiater/normdist/internal/dataset"
	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/quantile"
)

// Critical selects the multiplier used for a mean interval.
type Critical int

const (
	// CriticalZ uses the fixed normal multiplier Config.Z whatever the sample size.
	CriticalZ Critical = iota
	// CriticalT uses the two-sided Student-t value with n-1 degrees of freedom.
	CriticalT
)

func (c Critical) String() string {
	if c == CriticalT {
		return "t"
	}
	return "z"
}

// ParseCritical maps a config string to a Critical.
func ParseCritical(s string) (Critical, error) {
	switch s {
	case "z", "normal", "":
		return CriticalZ, nil
	case "t", "student":
		return CriticalT, nil
	}
	return 0, fmt.Errorf("%w: unknown critical value source %q", dist.ErrDomain, s)
}

// DefaultZ is the two-sided 95% normal critical value.
const DefaultZ = 1.96

// Config holds the estimator's settings.
type Config struct {
	Confidence float64
	// Z is the normal multiplier. Zero derives it from Confidence.
	Z        float64
	Critical Critical
	Seed     uint64
	// Report writes "[lower, upper] OK" or "... NG" for every estimate.
	Report bool
}

// DefaultConfig returns a 95% z-interval estimator with reporting on.
func DefaultConfig() Config {
	return Config{Confidence: 0.95, Z: DefaultZ, Critical: CriticalZ, Seed: 1, Report: true}
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithWriter sets where reports go. The default is io.Discard.
func WithWriter(w io.Writer) Option {
	return func(e *Estimator) { e.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) { e.logger = l }
}

// WithSolver sets the quantile solver used for t and chi-squared values.
func WithSolver(s *quantile.Solver) Option {
	return func(e *Estimator) { e.solver = s }
}

// Estimator builds intervals from random samples. Its random source is
// seeded from Config.Seed, so a sequence of calls is reproducible. It is
// not safe for concurrent use.
type Estimator struct {
	cfg    Config
	rng    *rand.Rand
	out    io.Writer
	logger *slog.Logger
	solver *quantile.Solver
}

// New validates cfg and returns an Estimator.
func New(cfg Config, opts ...Option) (*Estimator, error) {
	if err := dist.CheckProbability(cfg.Confidence); err != nil {
		return nil, fmt.Errorf("confidence: %w", err)
	}
	if math.IsNaN(cfg.Z) || math.IsInf(cfg.Z, 0) || cfg.Z < 0 {
		return nil, fmt.Errorf("%w: z=%v", dist.ErrDomain, cfg.Z)
	}
	e := &Estimator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5851f42d4c957f2d)),
		out: io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.solver == nil {
		e.solver = quantile.Default()
	}
	if e.cfg.Z == 0 {
		zs, err := e.solver.TwoSidedSymmetric(dist.NormalOracle{}, 1, cfg.Confidence, 10)
		if err != nil {
			return nil, fmt.Errorf("deriving z: %w", err)
		}
		e.cfg.Z = zs[0]
	}
	return e, nil
}

// Config returns the effective configuration, with Z resolved.
func (e *Estimator) Config() Config { return e.cfg }

// draw samples n rows of column without replacement.
func (e *Estimator) draw(ds *dataset.Dataset, column string, n int) (stats.Sample, error) {
	if ds == nil {
		return stats.Sample{}, fmt.Errorf("%w: nil dataset", dist.ErrDomain)
	}
	if n < 2 {
		return stats.Sample{}, fmt.Errorf("%w: sample size n=%d must be at least 2", dist.ErrDomain, n)
	}
	if _, err := ds.Column(column); err != nil {
		return stats.Sample{}, err
	}
	idx, err := dataset.SampleIndices(e.rng, ds.Len(), n)
	if err != nil {
		return stats.Sample{}, err
	}
	sub, err := ds.Select(idx)
	if err != nil {
		return stats.Sample{}, err
	}
	return sub.Column(column)
}

// Estimate samples n rows of column, builds [m - c*s/sqrt(n), m + c*s/sqrt(n)]
// and reports whether it covers the mean of the whole column.
func (e *Estimator) Estimate(ds *dataset.Dataset, column string, n int) (Result, error) {
	sample, err := e.draw(ds, column, n)
	if err != nil {
		return Result{}, err
	}
	m, v := sample.Mean(), sample.Variance()

	c := e.cfg.Z
	if e.cfg.Critical == CriticalT {
		if c, err = e.solver.TCritical(float64(n-1), e.cfg.Confidence); err != nil {
			return Result{}, fmt.Errorf("t critical value: %w", err)
		}
	}

	half := c * math.Sqrt(v) / math.Sqrt(float64(n))
	truth, err := ds.Mean(column)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Interval:       ConfidenceInterval{Lower: m - half, Upper: m + half, Level: e.cfg.Confidence},
		N:              n,
		SampleMean:     m,
		SampleVariance: v,
		Critical:       c,
		Truth:          truth,
	}
	res.Covered = res.Interval.Contains(truth)
	e.finish("mean", res)
	return res, nil
}

// EstimateVariance samples n rows of column and builds the chi-squared
// interval [(n-1)s^2/chi_right, (n-1)s^2/chi_left] for the variance,
// checked against the population variance of the whole column.
func (e *Estimator) EstimateVariance(ds *dataset.Dataset, column string, n int) (Result, error) {
	sample, err := e.draw(ds, column, n)
	if err != nil {
		return Result{}, err
	}
	m, v := sample.Mean(), sample.Variance()

	chi, err := e.solver.ChiSquaredCritical(float64(n-1), e.cfg.Confidence)
	if err != nil {
		return Result{}, fmt.Errorf("chi-squared critical values: %w", err)
	}
	ss := float64(n-1) * v
	truth, err := ds.PopulationVariance(column)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Interval:       ConfidenceInterval{Lower: ss / chi[0], Upper: ss / chi[1], Level: e.cfg.Confidence},
		N:              n,
		SampleMean:     m,
		SampleVariance: v,
		Critical:       chi[0],
		Truth:          truth,
	}
	res.Covered = res.Interval.Contains(truth)
	e.finish("variance", res)
	return res, nil
}

func (e *Estimator) finish(kind string, res Result) {
	if e.cfg.Report {
		fmt.Fprintf(e.out, "%s %s\n", res.Interval, res.Verdict())
	}
	e.logger.Debug("interval estimated",
		"kind", kind, "n", res.N, "lower", res.Interval.Lower, "upper", res.Interval.Upper,
		"truth", res.Truth, "covered", res.Covered)
}

package normal

import (
	"fmt"
	"math"

	"github.com/mwiater/normdist/internal/dist"
)

const (
	// DefaultRangeMultiple places the lower integration bound this many
	// standard deviations below the mean.
	DefaultRangeMultiple = 10.0
	// DefaultSteps is the number of trapezoids summed per CDF evaluation.
	DefaultSteps = 25000
)

// Params controls the numeric CDF.
type Params struct {
	RangeMultiple float64
	Steps         int
}

// DefaultParams returns the integration parameters used when no option is given.
func DefaultParams() Params {
	return Params{RangeMultiple: DefaultRangeMultiple, Steps: DefaultSteps}
}

// Validate reports dist.ErrDomain for a non-positive range or step count.
func (p Params) Validate() error {
	if err := dist.CheckPositive("range multiple", p.RangeMultiple); err != nil {
		return err
	}
	if p.Steps <= 0 {
		return fmt.Errorf("%w: steps=%d must be > 0", dist.ErrDomain, p.Steps)
	}
	return nil
}

// Option adjusts Params.
type Option func(*Params)

// WithRangeMultiple sets how many sigmas below the mean integration starts.
func WithRangeMultiple(m float64) Option {
	return func(p *Params) { p.RangeMultiple = m }
}

// WithSteps sets the number of trapezoids.
func WithSteps(n int) Option {
	return func(p *Params) { p.Steps = n }
}

// WithParams replaces all parameters at once.
func WithParams(params Params) Option {
	return func(p *Params) { *p = params }
}

func buildParams(opts []Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Bounds returns the integration interval [lo, x] used for the CDF at x.
// The half-width is max(sigma*rangeMultiple, 2|x-mu|), so the lower bound
// stays deep in the left tail however far x is from mu.
func Bounds(x, mu, sigma, rangeMultiple float64) (lo, hi float64) {
	length := math.Max(sigma*rangeMultiple, 2*math.Abs(x-mu))
	return mu - length, x
}

// Integrate applies the trapezoidal rule to f over [lo, hi] with n equal
// subintervals. It evaluates f exactly n+1 times.
func Integrate(f func(float64) float64, lo, hi float64, n int) float64 {
	h := (hi - lo) / float64(n)
	sum := 0.0
	prev := f(lo)
	for i := 1; i <= n; i++ {
		cur := f(lo + float64(i)*h)
		sum += (prev + cur) * h / 2.0
		prev = cur
	}
	return sum
}

// CDFNumeric approximates P(X <= x) for N(mu, sigma^2) by integrating the
// standardized density from Bounds(x, ...) up to x. Error shrinks roughly
// as O(h^2) in the step length h.
func CDFNumeric(x, mu, sigma float64, opts ...Option) float64 {
	p := buildParams(opts)
	lo, hi := Bounds(x, mu, sigma, p.RangeMultiple)
	return Integrate(func(cx float64) float64 {
		return PDFStandardized(cx, mu, sigma)
	}, lo, hi, p.Steps)
}

// CDFExact is the oracle CDF, kept as a comparator for CDFNumeric.
func CDFExact(x, mu, sigma float64) float64 {
	return dist.StdNormalCDF((x - mu) / sigma)
}

// CDF validates d and the options, then returns CDFNumeric.
func CDF(d dist.Distribution, x float64, opts ...Option) (float64, error) {
	if d.Kind != dist.KindNormal {
		return 0, fmt.Errorf("%w: CDF needs a normal distribution, got %s", dist.ErrDomain, d.Kind)
	}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: x=%v must be finite", dist.ErrDomain, x)
	}
	p := buildParams(opts)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return CDFNumeric(x, d.Mu, d.Sigma, WithParams(p)), nil
}

package quantile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/normdist/internal/dist"
)

// Published table values.
const (
	t10At95     = 1.812461 // t(10), P(T <= x) = 0.95
	t10At975    = 2.228139 // t(10), P(T <= x) = 0.975
	chi5At95    = 11.070498
	chi5At05    = 1.145476
	chi5At975   = 12.832502
	chi5At025   = 0.831212
	defaultStep = DefaultStep
)

func solvers(t *testing.T, step float64) map[string]*Solver {
	t.Helper()
	out := map[string]*Solver{}
	for _, m := range []Method{MethodBisection, MethodLinear} {
		s, err := New(Config{Step: step, MaxIterations: DefaultMaxIterations, Method: m}, nil)
		require.NoError(t, err)
		out[m.String()] = s
	}
	return out
}

func TestInvRight_T(t *testing.T) {
	for name, s := range solvers(t, 1e-3) {
		x, err := s.InvRight(dist.TOracle{}, 10, 0.95, 10)
		require.NoError(t, err, name)
		assert.LessOrEqual(t, x, t10At95+1e-6, name)
		assert.InDelta(t, t10At95, x, 2e-3, name)
		assert.LessOrEqual(t, dist.TOracle{}.CDF(x, 10), 0.95, name)
	}
}

func TestInvRight_T_DefaultStep(t *testing.T) {
	x, err := Default().InvRight(dist.TOracle{}, 10, 0.95, 10)
	require.NoError(t, err)
	assert.InDelta(t, t10At95, x, 2*defaultStep)
}

func TestInvLeft_T(t *testing.T) {
	for name, s := range solvers(t, 1e-3) {
		x, err := s.InvLeft(dist.TOracle{}, 10, 0.95, -10)
		require.NoError(t, err, name)
		assert.GreaterOrEqual(t, x, -t10At95-1e-6, name)
		assert.InDelta(t, -t10At95, x, 2e-3, name)
	}
}

func TestChiSquared_RightAndLeft(t *testing.T) {
	o := dist.ChiSquaredOracle{}
	for name, s := range solvers(t, 1e-3) {
		right, err := s.InvRight(o, 5, 0.95, RightStart(o, 5))
		require.NoError(t, err, name)
		assert.InDelta(t, chi5At95, right, 2e-3, name)

		left, err := s.InvLeft(o, 5, 0.95, LeftStart(o))
		require.NoError(t, err, name)
		assert.InDelta(t, chi5At05, left, 2e-3, name)

		// Asymmetric: the left value is not the mirror of the right one.
		assert.Greater(t, math.Abs(right+left), 1.0, name)
	}
}

func TestTwoSidedSymmetric_T(t *testing.T) {
	s := Default()
	xs, err := s.TwoSidedSymmetric(dist.TOracle{}, 10, 0.95, 10)
	require.NoError(t, err)
	assert.InDelta(t, t10At975, xs[0], 2*defaultStep)
	assert.Equal(t, -xs[0], xs[1])
}

func TestTwoSidedSymmetric_RefusesChiSquared(t *testing.T) {
	_, err := Default().TwoSidedSymmetric(dist.ChiSquaredOracle{}, 5, 0.95, 30)
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestTwoSided_StrategiesStayDistinct(t *testing.T) {
	s := Default()
	o := dist.ChiSquaredOracle{}
	xs, err := s.TwoSidedIndependent(o, 5, 0.95, RightStart(o, 5), LeftStart(o))
	require.NoError(t, err)
	assert.InDelta(t, chi5At95, xs[0], 2*defaultStep)
	assert.InDelta(t, chi5At05, xs[1], 2*defaultStep)
	assert.NotEqual(t, xs[0], -xs[1])

	// For t the independent form agrees with the symmetric one up to resolution.
	to := dist.TOracle{}
	ind, err := s.TwoSidedIndependent(to, 10, 0.95, 10, -10)
	require.NoError(t, err)
	assert.InDelta(t, ind[0], -ind[1], 2*defaultStep)
}

func TestCriticalHelpers(t *testing.T) {
	s := Default()
	tc, err := s.TCritical(10, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, t10At975, tc, 2*defaultStep)

	// Small df needs a start beyond the default of 10.
	tc, err = s.TCritical(1, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 12.7062, tc, 1e-3)

	chi, err := s.ChiSquaredCritical(5, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, chi5At975, chi[0], 2*defaultStep)
	assert.InDelta(t, chi5At025, chi[1], 2*defaultStep)
}

func TestStartAlreadyPastTarget(t *testing.T) {
	// Both starts sit on the wrong side of the target, so the search backs off first.
	for name, s := range solvers(t, 1e-3) {
		x, err := s.InvRight(dist.TOracle{}, 10, 0.95, 0)
		require.NoError(t, err, name)
		assert.InDelta(t, t10At95, x, 2e-3, name)

		x, err = s.InvLeft(dist.TOracle{}, 10, 0.95, 5)
		require.NoError(t, err, name)
		assert.InDelta(t, -t10At95, x, 2e-3, name)
	}
}

func TestValidation(t *testing.T) {
	s := Default()
	o := dist.TOracle{}
	for _, p := range []float64{0, 1, -0.5, 2, math.NaN()} {
		_, err := s.InvRight(o, 10, p, 10)
		assert.ErrorIs(t, err, dist.ErrRange, "p=%v", p)
		_, err = s.InvLeft(o, 10, p, -10)
		assert.ErrorIs(t, err, dist.ErrRange, "p=%v", p)
	}
	_, err := s.InvRight(o, 0, 0.95, 10)
	assert.ErrorIs(t, err, dist.ErrDomain)
	_, err = s.InvRight(o, 10, 0.95, math.Inf(1))
	assert.ErrorIs(t, err, dist.ErrDomain)

	_, err = New(Config{Step: 0, MaxIterations: 10}, nil)
	assert.ErrorIs(t, err, dist.ErrDomain)
	_, err = New(Config{Step: 1e-3, MaxIterations: 0}, nil)
	assert.ErrorIs(t, err, dist.ErrDomain)
	_, err = ParseMethod("newton")
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestIterationCap(t *testing.T) {
	s, err := New(Config{Step: 1e-4, MaxIterations: 5, Method: MethodLinear}, nil)
	require.NoError(t, err)

	_, err = s.InvRight(dist.TOracle{}, 10, 0.95, 10)
	require.ErrorIs(t, err, dist.ErrNonTermination)

	var se *SearchError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 5, se.State.Iterations)
	assert.Equal(t, Down, se.State.Direction)
	assert.Less(t, se.State.X, 10.0)
	assert.Greater(t, se.State.CDF, 0.95)
}

func TestBisect_StepBelowFloatResolution(t *testing.T) {
	s, err := New(Config{Step: 1e-17, MaxIterations: 10000, Method: MethodBisection}, nil)
	require.NoError(t, err)

	x, err := s.InvRight(dist.TOracle{}, 10, 0.95, 10)
	require.NoError(t, err)
	assert.InDelta(t, t10At95, x, 1e-6)
}

func TestChiSquaredCritical_LinearLargeDF(t *testing.T) {
	if testing.Short() {
		t.Skip("steps through about a million CDF evaluations")
	}
	s, err := New(Config{Step: DefaultStep, MaxIterations: DefaultMaxIterations, Method: MethodLinear}, nil)
	require.NoError(t, err)

	chi, err := s.ChiSquaredCritical(100, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 129.561, chi[0], 2e-3)
	assert.InDelta(t, 74.222, chi[1], 2e-3)
}

// flatOracle never reaches the targets the tests ask for.
type flatOracle struct{ lower float64 }

func (flatOracle) CDF(_, _ float64) float64 { return 0.5 }
func (flatOracle) Symmetric() bool          { return true }
func (o flatOracle) Lower() float64         { return o.lower }
func (flatOracle) Name() string             { return "flat" }

func TestUnreachableTargetTerminates(t *testing.T) {
	for name, s := range solvers(t, 1e-3) {
		capped, err := New(Config{Step: 1e-3, MaxIterations: 200, Method: s.Config().Method}, nil)
		require.NoError(t, err)

		_, err = capped.InvRight(flatOracle{lower: math.Inf(-1)}, 1, 0.9, 0)
		assert.ErrorIs(t, err, dist.ErrNonTermination, name)

		_, err = capped.InvLeft(flatOracle{lower: 0}, 1, 0.7, 5)
		assert.ErrorIs(t, err, dist.ErrNonTermination, name)
	}
}

func TestIdempotent(t *testing.T) {
	s := Default()
	a, err := s.InvRight(dist.ChiSquaredOracle{}, 7, 0.9, 40)
	require.NoError(t, err)
	b, err := s.InvRight(dist.ChiSquaredOracle{}, 7, 0.9, 40)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMethodNames(t *testing.T) {
	m, err := ParseMethod("linear")
	require.NoError(t, err)
	assert.Equal(t, MethodLinear, m)
	assert.Equal(t, "bisection", MethodBisection.String())
	assert.Equal(t, "down", Down.String())
}

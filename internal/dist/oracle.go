package dist

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Oracle is an exact cumulative distribution function parameterised by
// degrees of freedom. CDF must be monotonic non-decreasing in x; the
// quantile search relies on it and does not check it.
type Oracle interface {
	// CDF returns P(X <= x) for the distribution with df degrees of freedom.
	CDF(x, df float64) float64
	// Symmetric reports whether the distribution is symmetric about zero.
	Symmetric() bool
	// Lower returns the lower end of the support.
	Lower() float64
	// Name identifies the oracle in reports.
	Name() string
}

// StdNormalPDF is the standard-normal density oracle.
func StdNormalPDF(z float64) float64 {
	return stats.StdNormal.PDF(z)
}

// StdNormalCDF is the standard-normal cumulative oracle.
func StdNormalCDF(z float64) float64 {
	return stats.StdNormal.CDF(z)
}

// NormalOracle is the standard normal CDF. The df argument is ignored.
type NormalOracle struct{}

func (NormalOracle) CDF(x, _ float64) float64 { return StdNormalCDF(x) }
func (NormalOracle) Symmetric() bool          { return true }
func (NormalOracle) Lower() float64           { return math.Inf(-1) }
func (NormalOracle) Name() string             { return KindNormal.String() }

// TOracle is Student's t CDF.
type TOracle struct{}

func (TOracle) CDF(x, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(x)
}
func (TOracle) Symmetric() bool { return true }
func (TOracle) Lower() float64  { return math.Inf(-1) }
func (TOracle) Name() string    { return KindT.String() }

// ChiSquaredOracle is the chi-squared CDF. It is zero for x <= 0.
type ChiSquaredOracle struct{}

func (ChiSquaredOracle) CDF(x, df float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.ChiSquared{K: df}.CDF(x)
}
func (ChiSquaredOracle) Symmetric() bool { return false }
func (ChiSquaredOracle) Lower() float64  { return 0 }
func (ChiSquaredOracle) Name() string    { return KindChiSquared.String() }

// OracleFor returns the CDF oracle of a distribution family.
func OracleFor(k Kind) (Oracle, error) {
	switch k {
	case KindNormal:
		return NormalOracle{}, nil
	case KindT:
		return TOracle{}, nil
	case KindChiSquared:
		return ChiSquaredOracle{}, nil
	}
	return nil, ErrDomain
}

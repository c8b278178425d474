// Package dist defines the distributions the toolkit works with, the
// error kinds shared across packages, and the exact CDF oracles the
// numerical code is checked against and inverts.
package dist

import (
	"fmt"
	"math"
)

// Kind identifies a distribution family.
type Kind int

const (
	KindNormal     Kind = iota // KindNormal is the normal distribution N(mu, sigma^2).
	KindT                      // KindT is Student's t-distribution with DF degrees of freedom.
	KindChiSquared             // KindChiSquared is the chi-squared distribution with DF degrees of freedom.
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindT:
		return "t"
	case KindChiSquared:
		return "chi2"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps the names accepted on the command line to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "normal", "norm", "z":
		return KindNormal, nil
	case "t", "student", "studentst":
		return KindT, nil
	case "chi2", "chisq", "chisquared", "chi-squared":
		return KindChiSquared, nil
	}
	return 0, fmt.Errorf("%w: unknown distribution %q", ErrDomain, s)
}

// Distribution is an immutable description of one distribution. Mu and
// Sigma apply to KindNormal; DF applies to KindT and KindChiSquared.
type Distribution struct {
	Kind  Kind
	Mu    float64
	Sigma float64
	DF    float64
}

// Normal returns the normal distribution with mean mu and standard deviation sigma.
func Normal(mu, sigma float64) (Distribution, error) {
	d := Distribution{Kind: KindNormal, Mu: mu, Sigma: sigma}
	return d, d.Validate()
}

// StudentsT returns Student's t-distribution with df degrees of freedom.
func StudentsT(df float64) (Distribution, error) {
	d := Distribution{Kind: KindT, DF: df}
	return d, d.Validate()
}

// ChiSquared returns the chi-squared distribution with df degrees of freedom.
func ChiSquared(df float64) (Distribution, error) {
	d := Distribution{Kind: KindChiSquared, DF: df}
	return d, d.Validate()
}

// Validate reports ErrDomain when the parameters are unusable.
func (d Distribution) Validate() error {
	switch d.Kind {
	case KindNormal:
		if math.IsNaN(d.Mu) || math.IsInf(d.Mu, 0) {
			return fmt.Errorf("%w: mu=%v must be finite", ErrDomain, d.Mu)
		}
		return CheckPositive("sigma", d.Sigma)
	case KindT, KindChiSquared:
		return CheckPositive("df", d.DF)
	}
	return fmt.Errorf("%w: unknown kind %v", ErrDomain, d.Kind)
}

func (d Distribution) String() string {
	if d.Kind == KindNormal {
		return fmt.Sprintf("N(%g, %g)", d.Mu, d.Sigma)
	}
	return fmt.Sprintf("%s(df=%g)", d.Kind, d.DF)
}

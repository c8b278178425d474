// Package normal evaluates the normal density two ways and approximates
// the normal CDF by trapezoidal integration of that density.
//
// PDFDirect, PDFStandardized and CDFNumeric do no validation: sigma <= 0
// yields Inf or NaN. The PDF and CDF entry points validate their
// Distribution first.
package normal

import (
	"fmt"
	"math"

	"github.com/mwiater/normdist/internal/dist"
)

// PDFDirect evaluates 1/sqrt(2*pi*sigma^2) * exp(-(x-mu)^2 / (2*sigma^2)).
func PDFDirect(x, mu, sigma float64) float64 {
	variance := sigma * sigma
	expo := -((x - mu) * (x - mu)) / (2 * variance)
	return 1.0 / math.Sqrt(2.0*math.Pi*variance) * math.Exp(expo)
}

// PDFStandardized evaluates the standard-normal oracle at (x-mu)/sigma,
// scaled by 1/sigma. It must agree with PDFDirect to within 1e-9.
func PDFStandardized(x, mu, sigma float64) float64 {
	return dist.StdNormalPDF((x-mu)/sigma) / sigma
}

// PDF returns the density of a normal distribution at x.
func PDF(d dist.Distribution, x float64) (float64, error) {
	if d.Kind != dist.KindNormal {
		return 0, fmt.Errorf("%w: PDF needs a normal distribution, got %s", dist.ErrDomain, d.Kind)
	}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return PDFDirect(x, d.Mu, d.Sigma), nil
}

// internal/simulate/metrics.go
// Package: simulate
package simulate

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// wilsonZ is the 95% normal critical value used for the coverage interval.
const wilsonZ = 1.96

// wilson returns the Wilson score interval for hits successes out of n.
func wilson(hits, n int) (lower, upper float64) {
	if n == 0 {
		return 0, 0
	}
	p := float64(hits) / float64(n)
	nf := float64(n)
	z2 := wilsonZ * wilsonZ
	base := p + z2/(2*nf)
	pm := wilsonZ * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf))
	norm := 1 + z2/nf
	return (base - pm) / norm, (base + pm) / norm
}

// widthStats returns mean, standard deviation, median and 95th percentile
// of the interval widths.
func widthStats(widths []float64) (mean, std, p50, p95 float64) {
	if len(widths) == 0 {
		return 0, 0, 0, 0
	}
	s := stats.Sample{Xs: widths}
	s.Sort()
	return s.Mean(), s.StdDev(), s.Quantile(0.50), s.Quantile(0.95)
}

package estimate

import "fmt"

// ConfidenceInterval is a closed interval [Lower, Upper] at a confidence Level.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// Contains reports whether x lies in the closed interval.
func (ci ConfidenceInterval) Contains(x float64) bool {
	return ci.Lower <= x && x <= ci.Upper
}

// Width returns Upper - Lower.
func (ci ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

func (ci ConfidenceInterval) String() string {
	return fmt.Sprintf("[%g, %g]", ci.Lower, ci.Upper)
}

// Result is the outcome of one estimate.
type Result struct {
	Interval       ConfidenceInterval `json:"interval"`
	N              int                `json:"n"`
	SampleMean     float64            `json:"sample_mean"`
	SampleVariance float64            `json:"sample_variance"`
	// Critical is the multiplier (z or t) for a mean interval, or the
	// right-tail chi-squared value for a variance interval.
	Critical float64 `json:"critical"`
	// Truth is the population parameter the interval is checked against:
	// the column mean, or the column's population variance.
	Truth   float64 `json:"truth"`
	Covered bool    `json:"covered"`
}

// Verdict returns "OK" when the interval covers the truth, "NG" otherwise.
func (r Result) Verdict() string {
	if r.Covered {
		return "OK"
	}
	return "NG"
}

// internal/simulate/types.go
// Package: simulate
package simulate

import "time"

// Target selects which parameter each trial estimates.
type Target string

const (
	TargetMean     Target = "mean"
	TargetVariance Target = "variance"
)

// SuiteConfig configures a coverage run.
type SuiteConfig struct {
	// Column of the dataset to sample from.
	Column string `json:"column"`

	// Rows drawn per trial.
	SampleSize int `json:"sample_size"`

	// Number of independent trials.
	Trials int `json:"trials"`

	// Parameter estimated by each trial.
	Target Target `json:"target"`

	// Keep every trial row in the result, not just the summary.
	KeepTrials bool `json:"keep_trials"`
}

// TrialResult is one interval drawn during the run.
type TrialResult struct {
	Trial      int     `json:"trial"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Width      float64 `json:"width"`
	SampleMean float64 `json:"sample_mean"`
	Covered    bool    `json:"covered"`
}

// Summary aggregates the trials.
type Summary struct {
	Trials  int     `json:"trials"`
	Covered int     `json:"covered"`
	Rate    float64 `json:"coverage_rate"`

	// Wilson score interval for the coverage rate at 95%.
	RateLower float64 `json:"coverage_lower"`
	RateUpper float64 `json:"coverage_upper"`

	// Nominal confidence level of each interval.
	Level float64 `json:"level"`

	// Interval width distribution.
	WidthMean float64 `json:"width_mean"`
	WidthStd  float64 `json:"width_std"`
	WidthP50  float64 `json:"width_p50"`
	WidthP95  float64 `json:"width_p95"`

	// Parameter every interval was checked against.
	Truth float64 `json:"truth"`
}

// SuiteResult is the top-level artifact returned by RunCoverage.
type SuiteResult struct {
	Config      SuiteConfig   `json:"config"`
	Trials      []TrialResult `json:"trials,omitempty"`
	Summary     Summary       `json:"summary"`
	GeneratedAt time.Time     `json:"generated_at"`
	Elapsed     time.Duration `json:"elapsed"`
}

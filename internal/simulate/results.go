// internal/simulate/results.go
// Package: simulate
package simulate

import "time"

// summarize folds trial rows into a Summary.
func summarize(trials []TrialResult, level, truth float64) Summary {
	widths := make([]float64, 0, len(trials))
	covered := 0
	for _, t := range trials {
		widths = append(widths, t.Width)
		if t.Covered {
			covered++
		}
	}

	s := Summary{
		Trials:  len(trials),
		Covered: covered,
		Level:   level,
		Truth:   truth,
	}
	if len(trials) > 0 {
		s.Rate = float64(covered) / float64(len(trials))
	}
	s.RateLower, s.RateUpper = wilson(covered, len(trials))
	s.WidthMean, s.WidthStd, s.WidthP50, s.WidthP95 = widthStats(widths)
	return s
}

// buildSuiteResult packs everything with a timestamp.
func buildSuiteResult(cfg SuiteConfig, trials []TrialResult, level, truth float64, elapsed time.Duration) SuiteResult {
	res := SuiteResult{
		Config:      cfg,
		Summary:     summarize(trials, level, truth),
		GeneratedAt: time.Now(),
		Elapsed:     elapsed,
	}
	if cfg.KeepTrials {
		res.Trials = trials
	}
	return res
}

// Consistent reports whether the nominal level falls inside the Wilson
// interval of the observed coverage rate.
func (s Summary) Consistent() bool {
	return s.RateLower <= s.Level && s.Level <= s.RateUpper
}

// internal/simulate/runner.go
// Package: simulate
package simulate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mwiater/normdist/internal/dataset"
	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/estimate"
)

// ProgressFunc is called after every trial with the number finished so far.
type ProgressFunc func(done, total int)

// RunCoverage draws cfg.Trials independent intervals from ds and measures
// how often they cover the column's true parameter. It stops early with
// ctx.Err() when ctx is cancelled.
func RunCoverage(ctx context.Context, est *estimate.Estimator, ds *dataset.Dataset, cfg SuiteConfig, progress ProgressFunc) (SuiteResult, error) {
	if est == nil || ds == nil {
		return SuiteResult{}, errors.New("estimator and dataset are required")
	}
	if cfg.Trials <= 0 {
		return SuiteResult{}, fmt.Errorf("%w: trials=%d must be > 0", dist.ErrDomain, cfg.Trials)
	}
	if cfg.Target == "" {
		cfg.Target = TargetMean
	}

	var estimateFn func(*dataset.Dataset, string, int) (estimate.Result, error)
	switch cfg.Target {
	case TargetMean:
		estimateFn = est.Estimate
	case TargetVariance:
		estimateFn = est.EstimateVariance
	default:
		return SuiteResult{}, fmt.Errorf("%w: unknown target %q", dist.ErrDomain, cfg.Target)
	}

	started := time.Now()
	trials := make([]TrialResult, 0, cfg.Trials)
	var truth float64
	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return SuiteResult{}, err
		}
		res, err := estimateFn(ds, cfg.Column, cfg.SampleSize)
		if err != nil {
			return SuiteResult{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		truth = res.Truth
		trials = append(trials, TrialResult{
			Trial:      i + 1,
			Lower:      res.Interval.Lower,
			Upper:      res.Interval.Upper,
			Width:      res.Interval.Width(),
			SampleMean: res.SampleMean,
			Covered:    res.Covered,
		})
		if progress != nil {
			progress(i+1, cfg.Trials)
		}
	}

	return buildSuiteResult(cfg, trials, est.Config().Confidence, truth, time.Since(started)), nil
}

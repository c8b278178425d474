// cmd/normdist/estimate.go
package normdist

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/estimate"
	"github.com/mwiater/normdist/internal/tui"
)

var (
	estimateData     dataFlags
	estimateVariance bool
	estimateRepeat   int
)

// estimateCmd implements 'estimate', which draws samples and prints one
// interval per draw with its OK/NG verdict.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Build sampled confidence intervals and check them",
	Long:  `The 'estimate' command draws --sample-size rows of --column without replacement, builds the interval m ± c·s/√n (or the chi-squared variance interval with --variance), and prints "[lower, upper] OK" when it covers the column's true value and "[lower, upper] NG" when it does not.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if estimateRepeat <= 0 {
			return fmt.Errorf("%w: repeat=%d must be > 0", dist.ErrDomain, estimateRepeat)
		}
		ds, err := estimateData.load()
		if err != nil {
			return err
		}
		est, err := newEstimator()
		if err != nil {
			return err
		}

		run := est.Estimate
		if estimateVariance {
			run = est.EstimateVariance
		}
		out := cmd.OutOrStdout()
		covered := 0
		for i := 0; i < estimateRepeat; i++ {
			res, err := run(ds, estimateData.column, estimateData.n)
			if err != nil {
				return err
			}
			if res.Covered {
				covered++
			}
			if appCfg.Report {
				fmt.Fprintln(out, tui.Verdict(res))
			}
		}
		if estimateRepeat > 1 {
			logger.Info("estimates finished", "covered", covered, "total", estimateRepeat)
		}
		return nil
	},
}

// newEstimator builds an estimator from the resolved configuration. The
// command prints verdicts itself, so estimator reporting stays off.
func newEstimator() (*estimate.Estimator, error) {
	solver, err := newSolver()
	if err != nil {
		return nil, err
	}
	cfg := appCfg.Estimate()
	cfg.Report = false
	return estimate.New(cfg, estimate.WithLogger(logger), estimate.WithSolver(solver))
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateData.register(estimateCmd)
	estimateCmd.Flags().BoolVar(&estimateVariance, "variance", false, "estimate the variance with a chi-squared interval")
	estimateCmd.Flags().IntVar(&estimateRepeat, "repeat", 1, "number of intervals to draw")
}

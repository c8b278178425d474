// cmd/normdist/simulate.go
package normdist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/simulate"
	"github.com/mwiater/normdist/internal/tui"
)

var (
	simulateData     dataFlags
	simulateTrials   int
	simulateVariance bool
	simulatePlain    bool
	simulateJSON     bool
	simulateKeep     bool
)

// simulateCmd implements 'simulate', a Monte Carlo check of interval coverage.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Measure the coverage rate of repeated intervals",
	Long:  `The 'simulate' command draws --trials independent intervals and reports how many cover the true parameter, with a Wilson interval for the rate and the distribution of interval widths. A progress view is shown on terminals unless --plain is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := simulateData.load()
		if err != nil {
			return err
		}
		est, err := newEstimator()
		if err != nil {
			return err
		}

		cfg := simulate.SuiteConfig{
			Column:     simulateData.column,
			SampleSize: simulateData.n,
			Trials:     simulateTrials,
			Target:     simulate.TargetMean,
			KeepTrials: simulateKeep,
		}
		if simulateVariance {
			cfg.Target = simulate.TargetVariance
		}

		run := func(ctx context.Context, progress simulate.ProgressFunc) (simulate.SuiteResult, error) {
			return simulate.RunCoverage(ctx, est, ds, cfg, progress)
		}

		var res simulate.SuiteResult
		if simulatePlain || simulateJSON || !isTerminal(cmd) {
			res, err = run(cmd.Context(), nil)
		} else {
			res, err = tui.Run(cmd.Context(), fmt.Sprintf("Simulating %d trials", cfg.Trials), cfg.Trials, run)
		}
		if err != nil {
			return err
		}
		logger.Debug("coverage run finished", "trials", res.Summary.Trials, "rate", res.Summary.Rate, "elapsed", res.Elapsed)

		out := cmd.OutOrStdout()
		if simulateJSON {
			b, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		fmt.Fprint(out, tui.Summary(res))
		return nil
	},
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateData.register(simulateCmd)
	simulateCmd.Flags().IntVar(&simulateTrials, "trials", 1000, "number of intervals to draw")
	simulateCmd.Flags().BoolVar(&simulateVariance, "variance", false, "check chi-squared variance intervals instead of mean intervals")
	simulateCmd.Flags().BoolVar(&simulatePlain, "plain", false, "skip the progress view")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print the full result as JSON")
	simulateCmd.Flags().BoolVar(&simulateKeep, "keep-trials", false, "include every trial in the JSON result")
}

// cmd/normdist/list_critical.go
package normdist

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/tui"
)

var (
	criticalFrom int
	criticalTo   int
)

// criticalCmd implements 'list critical', a table of two-sided t and
// chi-squared critical values at the configured confidence level.
var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "List t and chi-squared critical values by degrees of freedom",
	Long:  `The 'critical' subcommand prints, for each degree of freedom from --from to --to, the two-sided Student-t critical value and the right and left chi-squared critical values at --confidence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if criticalFrom < 1 || criticalTo < criticalFrom {
			return fmt.Errorf("%w: need 1 <= from <= to, got %d..%d", dist.ErrDomain, criticalFrom, criticalTo)
		}
		solver, err := newSolver()
		if err != nil {
			return err
		}

		rows := make([][2]string, 0, criticalTo-criticalFrom+1)
		for f := criticalFrom; f <= criticalTo; f++ {
			tc, err := solver.TCritical(float64(f), appCfg.Confidence)
			if err != nil {
				return fmt.Errorf("t critical value for df=%d: %w", f, err)
			}
			chi, err := solver.ChiSquaredCritical(float64(f), appCfg.Confidence)
			if err != nil {
				return fmt.Errorf("chi-squared critical values for df=%d: %w", f, err)
			}
			rows = append(rows, [2]string{
				fmt.Sprintf("df=%d", f),
				fmt.Sprintf("t %-10.4f chi2 [%.4f, %.4f]", tc, chi[0], chi[1]),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.Table(fmt.Sprintf("critical values at %g", appCfg.Confidence), rows))
		return nil
	},
}

func init() {
	listCmd.AddCommand(criticalCmd)
	criticalCmd.Flags().IntVar(&criticalFrom, "from", 1, "first degree of freedom")
	criticalCmd.Flags().IntVar(&criticalTo, "to", 10, "last degree of freedom")
}

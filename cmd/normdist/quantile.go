// cmd/normdist/quantile.go
package normdist

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/quantile"
	"github.com/mwiater/normdist/internal/tui"
)

// quantileFlags holds the flags shared by 'quantile t' and 'quantile chi2'.
type quantileFlags struct {
	df    float64
	p     float64
	tail  string
	start float64
}

var (
	tQuantile   quantileFlags
	chiQuantile quantileFlags
)

// quantileCmd groups the inverse-CDF subcommands. It performs no action on its own.
var quantileCmd = &cobra.Command{
	Use:   "quantile",
	Short: "Group commands for inverting t and chi-squared CDFs",
	Long:  `The 'quantile' command groups subcommands that search for the value whose CDF equals a given probability. It performs no action on its own.`,
}

// quantileTCmd implements 'quantile t'.
var quantileTCmd = &cobra.Command{
	Use:   "t",
	Short: "Invert the Student-t CDF",
	Long:  `The 't' subcommand searches for Student-t quantiles with --df degrees of freedom. --tail right finds x with CDF(x)=p, --tail left finds x with CDF(x)=1-p, and --tail two-sided returns [x, -x] with CDF(x)=1-(1-p)/2.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuantile(cmd, dist.KindT, tQuantile)
	},
}

// quantileChiCmd implements 'quantile chi2'.
var quantileChiCmd = &cobra.Command{
	Use:   "chi2",
	Short: "Invert the chi-squared CDF",
	Long:  `The 'chi2' subcommand searches for chi-squared quantiles with --df degrees of freedom. --tail right finds x with CDF(x)=p, --tail left finds x with CDF(x)=1-p, and --tail two-sided returns [right, left], each tail searched on its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuantile(cmd, dist.KindChiSquared, chiQuantile)
	},
}

func init() {
	rootCmd.AddCommand(quantileCmd)
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *quantileFlags
	}{{quantileTCmd, &tQuantile}, {quantileChiCmd, &chiQuantile}} {
		quantileCmd.AddCommand(c.cmd)
		c.cmd.Flags().Float64Var(&c.flags.df, "df", 10, "degrees of freedom")
		c.cmd.Flags().Float64VarP(&c.flags.p, "prob", "p", 0.95, "probability p")
		c.cmd.Flags().StringVar(&c.flags.tail, "tail", "right", "right, left or two-sided")
		c.cmd.Flags().Float64Var(&c.flags.start, "start", math.NaN(), "start of the search (default depends on tail and distribution)")
	}
}

func runQuantile(cmd *cobra.Command, kind dist.Kind, qf quantileFlags) error {
	o, err := dist.OracleFor(kind)
	if err != nil {
		return err
	}
	solver, err := newSolver()
	if err != nil {
		return err
	}

	right := quantile.RightStart(o, qf.df)
	left := quantile.LeftStart(o)
	if !math.IsNaN(qf.start) {
		right, left = qf.start, qf.start
	}

	var rows [][2]string
	switch qf.tail {
	case "right":
		x, err := solver.InvRight(o, qf.df, qf.p, right)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"right", formatFloat(x)})
	case "left":
		x, err := solver.InvLeft(o, qf.df, qf.p, left)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"left", formatFloat(x)})
	case "two-sided":
		var xs [2]float64
		if o.Symmetric() {
			xs, err = solver.TwoSidedSymmetric(o, qf.df, qf.p, right)
		} else {
			xs, err = solver.TwoSidedIndependent(o, qf.df, qf.p, right, left)
		}
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"right", formatFloat(xs[0])}, [2]string{"left", formatFloat(xs[1])})
	default:
		return fmt.Errorf("%w: unknown tail %q", dist.ErrDomain, qf.tail)
	}

	rows = append(rows, [2]string{"method", fmt.Sprintf("%s, step %g", solver.Config().Method, solver.Config().Step)})
	fmt.Fprint(cmd.OutOrStdout(), tui.Table(fmt.Sprintf("%s quantiles, df=%g, p=%g", kind, qf.df, qf.p), rows))
	return nil
}

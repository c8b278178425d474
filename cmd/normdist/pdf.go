// cmd/normdist/pdf.go
package normdist

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/normal"
	"github.com/mwiater/normdist/internal/tui"
)

var (
	pdfMu    float64
	pdfSigma float64
)

// pdfCmd implements 'pdf', which evaluates the normal density at x in both
// the direct and the standardized form.
var pdfCmd = &cobra.Command{
	Use:   "pdf X",
	Short: "Evaluate the normal density at X",
	Long:  `The 'pdf' command evaluates the normal density with mean --mu and standard deviation --sigma at X, computed directly and through the standard normal, and prints both with their difference.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseFloatArg("X", args[0])
		if err != nil {
			return err
		}
		d, err := dist.Normal(pdfMu, pdfSigma)
		if err != nil {
			return err
		}
		std, err := normal.PDF(d, x)
		if err != nil {
			return err
		}
		direct := normal.PDFDirect(x, d.Mu, d.Sigma)

		fmt.Fprint(cmd.OutOrStdout(), tui.Table(fmt.Sprintf("pdf of %s at x=%g", d, x), [][2]string{
			{"direct", formatFloat(direct)},
			{"standardized", formatFloat(std)},
			{"difference", fmt.Sprintf("%.3g", math.Abs(direct-std))},
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().Float64Var(&pdfMu, "mu", 0, "mean")
	pdfCmd.Flags().Float64Var(&pdfSigma, "sigma", 1, "standard deviation")
}

// parseFloatArg parses a positional argument, allowing negative numbers.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", dist.ErrDomain, name, s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

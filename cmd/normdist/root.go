// cmd/normdist/root.go
package normdist

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mwiater/normdist/internal/config"
	"github.com/mwiater/normdist/internal/logging"
	"github.com/mwiater/normdist/internal/quantile"
)

var (
	// appCfg is resolved from viper before every command runs.
	appCfg config.Config
	logger = logging.Discard()
)

// rootCmd is the base Cobra command for the normdist application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "normdist",
	Short: "Normal, t and chi-squared distribution toolkit",
	Long: `normdist evaluates normal densities, integrates the normal CDF numerically,
inverts t and chi-squared CDFs, and builds sampled confidence intervals whose
coverage can be checked against the true parameters of a dataset column.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves appCfg and the logger from flags, environment and
// the optional config file.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := config.Init(v); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	appCfg = cfg

	level := cfg.LogLevel
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger = logging.New(cmd.ErrOrStderr(), level, v.GetBool("no_color"))

	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	return nil
}

// newSolver builds a quantile solver from the resolved configuration.
func newSolver() (*quantile.Solver, error) {
	return quantile.New(appCfg.Quantile, logger)
}

// bindFlags binds each flag in names to its viper key.
func bindFlags(fs *pflag.FlagSet, names map[string]string) {
	for name, key := range names {
		viper.BindPFlag(key, fs.Lookup(name))
	}
}

func init() {
	fs := rootCmd.PersistentFlags()
	fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	fs.Uint64("seed", 1, "seed for the random sample source")
	fs.Float64("confidence", 0.95, "confidence level of every interval")
	fs.Int("steps", 25000, "trapezoids per numeric CDF evaluation")
	fs.Float64("range-multiple", 10, "integrate from this many sigmas below the mean")
	fs.Float64("step", quantile.DefaultStep, "quantile search resolution")
	fs.Int("max-iterations", quantile.DefaultMaxIterations, "cap on CDF evaluations per quantile search")
	fs.String("method", "bisection", "quantile search method: bisection or linear")
	fs.String("critical", "z", "critical value for mean intervals: z or t")
	fs.Float64("z", 1.96, "normal multiplier for z intervals, 0 derives it from --confidence")
	fs.Bool("report", true, "print \"[lower, upper] OK|NG\" for each interval")
	fs.Bool("debug", false, "log at debug level and dump the resolved configuration")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Bool("no-color", false, "disable coloured log output")

	bindFlags(fs, map[string]string{
		"config":         config.KeyConfig,
		"seed":           config.KeySeed,
		"confidence":     config.KeyConfidence,
		"steps":          config.KeyIntegrationSteps,
		"range-multiple": config.KeyIntegrationRange,
		"step":           config.KeyQuantileStep,
		"max-iterations": config.KeyQuantileMaxIterations,
		"method":         config.KeyQuantileMethod,
		"critical":       config.KeyEstimateCritical,
		"z":              config.KeyEstimateZ,
		"report":         config.KeyEstimateReport,
		"debug":          config.KeyDebug,
		"log-level":      config.KeyLogLevel,
		"no-color":       "no_color",
	})
}

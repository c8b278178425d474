// Package config resolves normdist settings from defaults, an optional
// config file, NORMDIST_* environment variables and bound command flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/estimate"
	"github.com/mwiater/normdist/internal/normal"
	"github.com/mwiater/normdist/internal/quantile"
)

// EnvPrefix is prepended to every environment variable viper looks up.
const EnvPrefix = "NORMDIST"

// Keys understood by Load.
const (
	KeyConfig                = "config"
	KeySeed                  = "seed"
	KeyConfidence            = "confidence"
	KeyIntegrationSteps      = "integration.steps"
	KeyIntegrationRange      = "integration.range_multiple"
	KeyQuantileStep          = "quantile.step"
	KeyQuantileMaxIterations = "quantile.max_iterations"
	KeyQuantileMethod        = "quantile.method"
	KeyEstimateCritical      = "estimate.critical"
	KeyEstimateZ             = "estimate.z"
	KeyEstimateReport        = "estimate.report"
	KeyDebug                 = "debug"
	KeyLogLevel              = "log.level"
)

// Config is the typed view of every tunable.
type Config struct {
	Seed        uint64
	Confidence  float64
	Integration normal.Params
	Quantile    quantile.Config
	Critical    estimate.Critical
	Z           float64
	Report      bool
	Debug       bool
	LogLevel    slog.Level
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	q := quantile.DefaultConfig()
	e := estimate.DefaultConfig()
	v.SetDefault(KeySeed, e.Seed)
	v.SetDefault(KeyConfidence, e.Confidence)
	v.SetDefault(KeyIntegrationSteps, normal.DefaultSteps)
	v.SetDefault(KeyIntegrationRange, normal.DefaultRangeMultiple)
	v.SetDefault(KeyQuantileStep, q.Step)
	v.SetDefault(KeyQuantileMaxIterations, q.MaxIterations)
	v.SetDefault(KeyQuantileMethod, q.Method.String())
	v.SetDefault(KeyEstimateCritical, e.Critical.String())
	v.SetDefault(KeyEstimateZ, e.Z)
	v.SetDefault(KeyEstimateReport, e.Report)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogLevel, "info")
}

// Init prepares v: defaults, environment lookup, and the config file named
// by the "config" key when one is set.
func Init(v *viper.Viper) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := v.GetString(KeyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file %s: %w", path, err)
	}
	return nil
}

// Load reads every key from v and validates the result. A nil v uses the
// global viper instance the command flags are bound to.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	method, err := quantile.ParseMethod(v.GetString(KeyQuantileMethod))
	if err != nil {
		return Config{}, err
	}
	critical, err := estimate.ParseCritical(v.GetString(KeyEstimateCritical))
	if err != nil {
		return Config{}, err
	}
	level, err := ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Seed:       v.GetUint64(KeySeed),
		Confidence: v.GetFloat64(KeyConfidence),
		Integration: normal.Params{
			RangeMultiple: v.GetFloat64(KeyIntegrationRange),
			Steps:         v.GetInt(KeyIntegrationSteps),
		},
		Quantile: quantile.Config{
			Step:          v.GetFloat64(KeyQuantileStep),
			MaxIterations: v.GetInt(KeyQuantileMaxIterations),
			Method:        method,
		},
		Critical: critical,
		Z:        v.GetFloat64(KeyEstimateZ),
		Report:   v.GetBool(KeyEstimateReport),
		Debug:    v.GetBool(KeyDebug),
		LogLevel: level,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and joins the failures.
func (c Config) Validate() error {
	var errs []error
	if err := dist.CheckProbability(c.Confidence); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyConfidence, err))
	}
	if err := c.Integration.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("integration: %w", err))
	}
	if err := c.Quantile.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("quantile: %w", err))
	}
	if c.Z < 0 {
		errs = append(errs, fmt.Errorf("%s: %w: z=%v must be >= 0", KeyEstimateZ, dist.ErrDomain, c.Z))
	}
	return errors.Join(errs...)
}

// Estimate returns the estimator settings.
func (c Config) Estimate() estimate.Config {
	return estimate.Config{
		Confidence: c.Confidence,
		Z:          c.Z,
		Critical:   c.Critical,
		Seed:       c.Seed,
		Report:     c.Report,
	}
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	return l, nil
}

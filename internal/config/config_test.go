package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/normdist/internal/dist"
	"github.com/mwiater/normdist/internal/estimate"
	"github.com/mwiater/normdist/internal/normal"
	"github.com/mwiater/normdist/internal/quantile"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, 0.95, cfg.Confidence)
	assert.Equal(t, normal.DefaultParams(), cfg.Integration)
	assert.Equal(t, quantile.DefaultConfig(), cfg.Quantile)
	assert.Equal(t, estimate.CriticalZ, cfg.Critical)
	assert.Equal(t, estimate.DefaultZ, cfg.Z)
	assert.True(t, cfg.Report)
	assert.False(t, cfg.Debug)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "normdist.yaml")
	body := `seed: 42
confidence: 0.9
integration:
  steps: 1000
quantile:
  method: linear
  step: 0.001
estimate:
  critical: t
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	v := viper.New()
	v.Set(KeyConfig, path)
	require.NoError(t, Init(v))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.9, cfg.Confidence)
	assert.Equal(t, 1000, cfg.Integration.Steps)
	assert.Equal(t, normal.DefaultRangeMultiple, cfg.Integration.RangeMultiple)
	assert.Equal(t, quantile.MethodLinear, cfg.Quantile.Method)
	assert.Equal(t, 0.001, cfg.Quantile.Step)
	assert.Equal(t, estimate.CriticalT, cfg.Critical)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

	ec := cfg.Estimate()
	assert.Equal(t, uint64(42), ec.Seed)
	assert.Equal(t, estimate.CriticalT, ec.Critical)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("NORMDIST_CONFIDENCE", "0.99")
	t.Setenv("NORMDIST_QUANTILE_MAX_ITERATIONS", "500")

	v := viper.New()
	require.NoError(t, Init(v))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.99, cfg.Confidence)
	assert.Equal(t, 500, cfg.Quantile.MaxIterations)
}

func TestLoad_MissingFile(t *testing.T) {
	v := viper.New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, Init(v))
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		key   string
		value any
		want  error
	}{
		{KeyConfidence, 1.5, dist.ErrRange},
		{KeyIntegrationSteps, 0, dist.ErrDomain},
		{KeyQuantileStep, -1.0, dist.ErrDomain},
		{KeyQuantileMethod, "newton", dist.ErrDomain},
		{KeyEstimateCritical, "f", dist.ErrDomain},
		{KeyEstimateZ, -1.96, dist.ErrDomain},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			v := viper.New()
			require.NoError(t, Init(v))
			v.Set(tc.key, tc.value)
			_, err := Load(v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	v := viper.New()
	require.NoError(t, Init(v))
	v.Set(KeyLogLevel, "loud")
	_, err := Load(v)
	assert.Error(t, err)
}

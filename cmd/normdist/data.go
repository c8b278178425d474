// cmd/normdist/data.go
package normdist

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/normdist/internal/dataset"
)

// dataFlags selects the dataset a sampling command draws from: a CSV file
// when --data is set, otherwise a synthetic normal column.
type dataFlags struct {
	path   string
	column string
	rows   int
	mu     float64
	sigma  float64
	n      int
}

func (d *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.path, "data", "", "CSV file with a header row; empty uses synthetic normal data")
	cmd.Flags().StringVar(&d.column, "column", "value", "column to sample")
	cmd.Flags().IntVar(&d.rows, "rows", 10000, "rows of synthetic data")
	cmd.Flags().Float64Var(&d.mu, "mu", 50, "mean of synthetic data")
	cmd.Flags().Float64Var(&d.sigma, "sigma", 10, "standard deviation of synthetic data")
	cmd.Flags().IntVarP(&d.n, "sample-size", "n", 30, "rows drawn per interval")
}

// load returns the dataset described by the flags. Synthetic data is seeded
// from the configured seed.
func (d *dataFlags) load() (*dataset.Dataset, error) {
	if d.path != "" {
		ds, err := dataset.LoadCSVFile(d.path)
		if err != nil {
			return nil, err
		}
		logger.Debug("dataset loaded", "path", d.path, "rows", ds.Len(), "columns", ds.Columns())
		return ds, nil
	}
	ds, err := dataset.Synthetic(d.column, d.rows, d.mu, d.sigma, appCfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("synthetic dataset", "column", d.column, "rows", d.rows, "mu", d.mu, "sigma", d.sigma)
	return ds, nil
}

// Package dataset is a minimal columnar table of float64 observations:
// row selection by index, column extraction, and mean/variance over a
// column.
package dataset

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/mwiater/normdist/internal/dist"
)

// Dataset holds equally long named columns. It is immutable once built.
type Dataset struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// New builds a Dataset from named columns. All columns must have the same
// length. Column order is alphabetical.
func New(columns map[string][]float64) (*Dataset, error) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	slices.Sort(names)
	return build(names, columns)
}

func build(names []string, columns map[string][]float64) (*Dataset, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: dataset needs at least one column", dist.ErrDomain)
	}
	rows := len(columns[names[0]])
	cols := make(map[string][]float64, len(names))
	for _, name := range names {
		xs := columns[name]
		if len(xs) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", dist.ErrDomain, name, len(xs), rows)
		}
		cols[name] = slices.Clone(xs)
	}
	return &Dataset{names: slices.Clone(names), cols: cols, rows: rows}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Columns returns the column names.
func (d *Dataset) Columns() []string { return slices.Clone(d.names) }

// Index returns the row index set 0..Len()-1.
func (d *Dataset) Index() []int {
	idx := make([]int, d.rows)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Select returns a new Dataset holding the given rows, in order.
func (d *Dataset) Select(indices []int) (*Dataset, error) {
	cols := make(map[string][]float64, len(d.names))
	for _, name := range d.names {
		src := d.cols[name]
		dst := make([]float64, len(indices))
		for i, idx := range indices {
			if idx < 0 || idx >= d.rows {
				return nil, fmt.Errorf("%w: row index %d out of [0, %d)", dist.ErrDomain, idx, d.rows)
			}
			dst[i] = src[idx]
		}
		cols[name] = dst
	}
	return &Dataset{names: slices.Clone(d.names), cols: cols, rows: len(indices)}, nil
}

// Column returns a copy of the named column as a sample.
func (d *Dataset) Column(name string) (stats.Sample, error) {
	xs, ok := d.cols[name]
	if !ok {
		return stats.Sample{}, fmt.Errorf("%w: unknown column %q (have %v)", dist.ErrDomain, name, d.names)
	}
	return stats.Sample{Xs: slices.Clone(xs)}, nil
}

// Mean returns the mean of the named column.
func (d *Dataset) Mean(name string) (float64, error) {
	s, err := d.Column(name)
	if err != nil {
		return 0, err
	}
	if len(s.Xs) == 0 {
		return 0, fmt.Errorf("%w: column %q is empty", dist.ErrDomain, name)
	}
	return s.Mean(), nil
}

// Variance returns the sample variance (n-1 divisor) of the named column.
func (d *Dataset) Variance(name string) (float64, error) {
	s, err := d.Column(name)
	if err != nil {
		return 0, err
	}
	if len(s.Xs) < 2 {
		return 0, fmt.Errorf("%w: column %q needs at least 2 rows for a variance", dist.ErrDomain, name)
	}
	return s.Variance(), nil
}

// PopulationVariance returns the variance of the named column with an n
// divisor, treating the column as the whole population.
func (d *Dataset) PopulationVariance(name string) (float64, error) {
	v, err := d.Variance(name)
	if err != nil {
		return 0, err
	}
	n := float64(d.rows)
	return v * (n - 1) / n, nil
}

// SampleIndices draws n distinct indices uniformly from [0, population).
func SampleIndices(r *rand.Rand, population, n int) ([]int, error) {
	if n < 0 || n > population {
		return nil, fmt.Errorf("%w: cannot draw %d rows from %d without replacement", dist.ErrDomain, n, population)
	}
	// Partial Fisher-Yates over the index set.
	idx := make([]int, population)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + r.IntN(population-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n], nil
}

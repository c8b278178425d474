package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mwiater/normdist/internal/dist"
)

// LoadCSV reads a table whose first row names the columns. Every other
// cell must parse as a float.
func LoadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty csv", dist.ErrDomain)
		}
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}
	names := make([]string, len(header))
	cols := make(map[string][]float64, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := cols[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", dist.ErrDomain, name)
		}
		names[i] = name
		cols[name] = nil
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("could not read csv line %d: %w", line, err)
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, names[i], err)
			}
			cols[names[i]] = append(cols[names[i]], v)
		}
	}
	return build(names, cols)
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// Synthetic returns a single-column dataset of rows draws from N(mu,
// sigma^2). The same seed always yields the same data.
func Synthetic(column string, rows int, mu, sigma float64, seed uint64) (*Dataset, error) {
	if _, err := dist.Normal(mu, sigma); err != nil {
		return nil, err
	}
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows=%d must be > 0", dist.ErrDomain, rows)
	}
	n := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = n.Rand()
	}
	return build([]string{column}, map[string][]float64{column: xs})
}

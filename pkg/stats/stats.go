package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"churneda/pkg/data"
)

// ErrNotNumeric is returned when moments are requested for a text column.
var ErrNotNumeric = errors.New("column is not numeric")

// degenerateEps bounds the second moment, relative to the mean, below
// which a sample is treated as having no spread.
const degenerateEps = 1e-14

// Moments are the four summary moments of a column, in report order.
type Moments struct {
	Mean           float64
	StdDev         float64 // sample (n-1)
	Skewness       float64 // biased Fisher-Pearson g1
	ExcessKurtosis float64 // Fisher g2, normal = 0
}

// Analyze computes the moments of a numeric column over its non-missing values.
func Analyze(df dataframe.DataFrame, col string) (Moments, error) {
	s, err := data.Column(df, col)
	if err != nil {
		return Moments{}, err
	}
	switch s.Type() {
	case series.Float, series.Int:
	default:
		return Moments{}, fmt.Errorf("%w: %q has type %s", ErrNotNumeric, col, s.Type())
	}
	return Compute(DropNaN(s.Float())), nil
}

// Compute returns the moments of xs. xs must not contain NaN. The
// standard deviation needs two values and is NaN below that.
func Compute(xs []float64) Moments {
	if len(xs) == 0 {
		nan := math.NaN()
		return Moments{Mean: nan, StdDev: nan, Skewness: nan, ExcessKurtosis: nan}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = math.NaN()
	}
	return Moments{
		Mean:           mean,
		StdDev:         std,
		Skewness:       Skewness(xs),
		ExcessKurtosis: ExcessKurtosis(xs),
	}
}

// Skewness returns m3 / m2^1.5 over the population central moments,
// or NaN when xs has no spread.
func Skewness(xs []float64) float64 {
	m2, ok := spread(xs)
	if !ok {
		return math.NaN()
	}
	return stat.Moment(3, xs, nil) / math.Pow(m2, 1.5)
}

// ExcessKurtosis returns m4 / m2^2 - 3, or NaN when xs has no spread.
func ExcessKurtosis(xs []float64) float64 {
	m2, ok := spread(xs)
	if !ok {
		return math.NaN()
	}
	return stat.Moment(4, xs, nil)/(m2*m2) - 3
}

// spread returns the second central moment and whether it is
// distinguishable from zero at the scale of the mean.
func spread(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return math.NaN(), false
	}
	mean := stat.Mean(xs, nil)
	m2 := stat.Moment(2, xs, nil)
	lim := degenerateEps * mean
	return m2, m2 > lim*lim
}

// Mean returns the arithmetic mean, NaN for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// Median returns the median value of the slice (allocates a copy).
// Even lengths average the middle two. NaN for an empty slice.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	cp := make([]float64, n)
	copy(cp, xs)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Mode returns the most frequent value, the smallest one on ties.
// NaN for an empty slice.
func Mode(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)

	mode, best := cp[0], 0
	for i := 0; i < len(cp); {
		j := i + 1
		for j < len(cp) && cp[j] == cp[i] {
			j++
		}
		if j-i > best {
			mode, best = cp[i], j-i
		}
		i = j
	}
	return mode
}

// DropNaN returns the non-NaN values of xs in order.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
)

// Summary describes the distribution of one column.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes a Summary of xs, ignoring NaN values.
func Summarize(xs []float64) Summary {
	s := moremath.Sample{Xs: DropNaN(xs)}
	s.Sort()

	sum := Summary{
		N:      len(s.Xs),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    s.Quantile(0),
		Q1:     s.Quantile(0.25),
		Median: Median(s.Xs),
		Q3:     s.Quantile(0.75),
		Max:    s.Quantile(1),
	}
	if sum.N > 0 {
		sum.Mean = s.Mean()
	}
	if sum.N > 1 {
		sum.StdDev = s.StdDev()
	}
	return sum
}

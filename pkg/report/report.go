// Package report prints the moments of a column and what they say about
// its shape.
package report

import (
	"fmt"
	"io"
	"strings"

	"churneda/pkg/stats"
)

// Threshold is the magnitude past which skewness and excess kurtosis
// are called out. Values in [-Threshold, Threshold] are neutral.
const Threshold = 2

// SkewnessLabel classifies a skewness value.
func SkewnessLabel(skew float64) string {
	switch {
	case skew > Threshold:
		return "right-skewed"
	case skew < -Threshold:
		return "left-skewed"
	default:
		return "not skewed"
	}
}

// KurtosisLabel classifies an excess kurtosis value.
func KurtosisLabel(kurt float64) string {
	switch {
	case kurt > Threshold:
		return "leptokurtic"
	case kurt < -Threshold:
		return "platykurtic"
	default:
		return "mesokurtic"
	}
}

// Write prints the moments of col and their classification.
func Write(w io.Writer, m stats.Moments, col string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "For the attribute '%s':\n", col)
	fmt.Fprintf(&b, "Mean = %.2f, Standard Deviation = %.2f, Skewness = %.2f, and Excess Kurtosis = %.2f.\n",
		m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)
	fmt.Fprintf(&b, "The data is %s and %s.\n", SkewnessLabel(m.Skewness), KurtosisLabel(m.ExcessKurtosis))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary prints the count, mean and quantiles of col.
func WriteSummary(w io.Writer, col string, s stats.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: N %d  mean %.6g  std dev %.6g\n", col, s.N, s.Mean, s.StdDev)
	for _, q := range []struct {
		label string
		value float64
	}{
		{"min", s.Min},
		{"25%ile", s.Q1},
		{"median", s.Median},
		{"75%ile", s.Q3},
		{"max", s.Max},
	} {
		fmt.Fprintf(&b, "%8s %.6g\n", q.label, q.value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

package dataprep

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"

	"churneda/pkg/data"
	"churneda/pkg/stats"
)

// Strategy picks the statistic used to fill missing numeric values.
type Strategy string

const (
	Median Strategy = "median"
	Mean   Strategy = "mean"
	Mode   Strategy = "mode"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case Median, Mean, Mode:
		return s, nil
	}
	return "", fmt.Errorf("unknown impute strategy %q (want median, mean or mode)", name)
}

// Fill computes the replacement value from the observed values xs.
func (s Strategy) Fill(xs []float64) float64 {
	switch s {
	case Mean:
		return stats.Mean(xs)
	case Mode:
		return stats.Mode(xs)
	default:
		return stats.Median(xs)
	}
}

// Impute replaces missing values in a numeric column with a statistic
// of the values observed before imputation.
type Impute struct {
	Column   string
	Strategy Strategy
	Log      zerolog.Logger
}

func (im Impute) Name() string { return "impute " + im.Column }

func (im Impute) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	s, err := data.Column(df, im.Column)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if s.Type() != series.Float && s.Type() != series.Int {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %q has type %s", stats.ErrNotNumeric, im.Column, s.Type())
	}

	vals := s.Float()
	fill := im.Strategy.Fill(stats.DropNaN(vals))
	filled := 0
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = fill
			filled++
		}
	}
	if filled == 0 {
		return df, nil
	}

	im.Log.Info().
		Str("column", im.Column).
		Str("strategy", string(im.Strategy)).
		Float64("value", fill).
		Int("rows", filled).
		Msg("imputed missing values")
	return mutate(df, series.New(vals, series.Float, im.Column))
}

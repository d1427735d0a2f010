package dataprep

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"

	"churneda/pkg/data"
	"churneda/pkg/pipeline"
)

// CoerceNumeric converts a column to float. Tokens that do not parse as
// a number, including blanks, become missing.
type CoerceNumeric struct {
	Column string
	Log    zerolog.Logger
}

func (c CoerceNumeric) Name() string { return "coerce " + c.Column }

func (c CoerceNumeric) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	s, err := data.Column(df, c.Column)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if s.Type() == series.Float {
		return df, nil
	}

	var vals []float64
	if s.Type() == series.String {
		recs := s.Records()
		isNA := s.IsNaN()
		vals = make([]float64, len(recs))
		for i, rec := range recs {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec), 64)
			if isNA[i] || err != nil {
				v = math.NaN()
			}
			vals[i] = v
		}
	} else {
		vals = s.Float()
	}

	c.Log.Debug().Str("column", c.Column).Int("missing", countNaN(vals)).Msg("coerced to numeric")
	return mutate(df, series.New(vals, series.Float, c.Column))
}

// DropMissing drops every row holding a missing value in any column.
type DropMissing struct {
	Log zerolog.Logger
}

func (DropMissing) Name() string { return "drop missing" }

func (d DropMissing) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	missing := make([]bool, df.Nrow())
	for _, name := range df.Names() {
		for i, na := range df.Col(name).IsNaN() {
			if na {
				missing[i] = true
			}
		}
	}

	keep := make([]int, 0, len(missing))
	for i, m := range missing {
		if !m {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return dataframe.DataFrame{}, data.ErrNoRows
	}
	dropped := df.Nrow() - len(keep)
	if dropped == 0 {
		return df, nil
	}
	d.Log.Info().Int("rows", dropped).Msg("dropped rows with missing values")

	out := df.Subset(keep)
	if out.Err != nil {
		return dataframe.DataFrame{}, out.Err
	}
	return out, nil
}

// Preprocess makes the charge columns usable: TotalCharges becomes
// numeric with missing values filled by strategy, then rows still
// missing anything are dropped.
func Preprocess(df dataframe.DataFrame, sch pipeline.Schema, strategy Strategy, log zerolog.Logger) (dataframe.DataFrame, error) {
	p := pipeline.NewPipeline(
		CoerceNumeric{Column: sch.TotalCharges, Log: log},
		Impute{Column: sch.TotalCharges, Strategy: strategy, Log: log},
		DropMissing{Log: log},
	)
	out, err := p.Transform(df)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("preprocess: %w", err)
	}
	return out, nil
}

// Describe prints summary statistics and the first n rows of df.
func Describe(w io.Writer, df dataframe.DataFrame, n int) error {
	if _, err := fmt.Fprintln(w, df.Describe()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, data.Head(df, n))
	return err
}

func mutate(df dataframe.DataFrame, s series.Series) (dataframe.DataFrame, error) {
	out := df.Mutate(s)
	if out.Err != nil {
		return dataframe.DataFrame{}, out.Err
	}
	return out, nil
}

func countNaN(xs []float64) int {
	n := 0
	for _, v := range xs {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

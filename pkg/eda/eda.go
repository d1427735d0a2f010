// Package eda runs the churn analysis end to end: load, clean, plot,
// then report the moments of one column.
package eda

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/src-d/go-billy.v4"

	"churneda/pkg/data"
	"churneda/pkg/dataprep"
	"churneda/pkg/pipeline"
	"churneda/pkg/plots"
	"churneda/pkg/report"
	"churneda/pkg/stats"
)

// Config holds the run settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Input    string
	OutDir   string
	Column   string
	Strategy dataprep.Strategy
	Preview  int
	Figure   plots.Figure
	Viewer   plots.Viewer
	Schema   pipeline.Schema
}

// DefaultConfig reads data.csv and writes plots to the working directory.
func DefaultConfig() Config {
	return Config{
		Input:    "data.csv",
		OutDir:   ".",
		Column:   "MonthlyCharges",
		Strategy: dataprep.Median,
		Preview:  5,
		Figure:   plots.DefaultFigure(),
		Schema:   pipeline.DefaultSchema(),
	}
}

// Run executes the analysis. Diagnostics and the report go to stdout,
// progress to log. The first failure stops the run.
func Run(cfg Config, fsys billy.Filesystem, stdout io.Writer, log zerolog.Logger) error {
	// ---- Load ----
	df, err := data.Load(fsys, cfg.Input, data.Options{RawText: []string{cfg.Schema.TotalCharges}})
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log.Info().Str("file", cfg.Input).Int("rows", df.Nrow()).Int("columns", df.Ncol()).Msg("loaded data")

	if err := cfg.Schema.Validate(df); err != nil {
		return err
	}

	// ---- Clean ----
	df, err = dataprep.Preprocess(df, cfg.Schema, cfg.Strategy, log)
	if err != nil {
		return err
	}
	log.Info().Int("rows", df.Nrow()).Msg("preprocessed data")
	if err := dataprep.Describe(stdout, df, cfg.Preview); err != nil {
		return err
	}

	// ---- Plot ----
	out := plots.Output{
		FS:     fsys,
		Dir:    cfg.OutDir,
		Figure: cfg.Figure,
		Viewer: cfg.Viewer,
		Log:    log,
	}
	for _, r := range []struct {
		file   string
		render plots.Renderer
	}{
		{plots.RelationalFile, plots.Relational},
		{plots.StatisticalFile, plots.Statistical},
		{plots.CategoricalFile, plots.Categorical},
	} {
		if err := out.Render(r.file, r.render, df, cfg.Schema); err != nil {
			return err
		}
	}

	// ---- Analyze ----
	moments, err := stats.Analyze(df, cfg.Column)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	log.Debug().
		Str("column", cfg.Column).
		Float64("mean", moments.Mean).
		Float64("stddev", moments.StdDev).
		Float64("skew", moments.Skewness).
		Float64("kurtosis", moments.ExcessKurtosis).
		Msg("computed moments")

	if err := report.Write(stdout, moments, cfg.Column); err != nil {
		return err
	}

	xs, err := data.Floats(df, cfg.Column)
	if err != nil {
		return err
	}
	return report.WriteSummary(stdout, cfg.Column, stats.Summarize(xs))
}

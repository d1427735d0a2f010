package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"churneda/pkg/dataprep"
	"churneda/pkg/eda"
	"churneda/pkg/plots"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input   : Path to the churn CSV. Default = data.csv
// --out     : Directory for relational/categorical/statistical_plot.png. Default = .
// --column  : Numeric column whose moments are reported. Default = MonthlyCharges
// --impute  : Fill for missing TotalCharges: "median", "mean" or "mode". Default = median
// --preview : Number of cleaned rows to print
// --width   : Plot width in inches
// --height  : Plot height in inches
// --show    : Open each plot with the system viewer after saving. Off by default (headless)
// --v       : Debug logging
//
// Example:
//   go run ./cmd/eda --input data.csv --out plots --show
//
// ---------------------------------------------------------------------
//

func main() {
	cfg := eda.DefaultConfig()

	// ---- CLI Flags ----
	inputPath := flag.String("input", cfg.Input, "Path to input CSV file")
	outDir := flag.String("out", cfg.OutDir, "Directory to write plot images to")
	column := flag.String("column", cfg.Column, "Numeric column to analyze")
	impute := flag.String("impute", string(cfg.Strategy), "Imputation for missing TotalCharges: median, mean or mode")
	preview := flag.Int("preview", cfg.Preview, "Number of rows to preview in console")
	width := flag.Float64("width", 8, "Plot width in inches")
	height := flag.Float64("height", 5, "Plot height in inches")
	show := flag.Bool("show", false, "Open each saved plot with the system image viewer (display is opt-in; runs headless otherwise)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	strategy, err := dataprep.ParseStrategy(*impute)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	if *preview < 0 {
		log.Fatal().Int("preview", *preview).Msg("invalid flags: -preview must not be negative")
	}

	// The filesystem is rooted at / so that paths resolve as on the command line.
	input, err := filepath.Abs(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve input path")
	}
	out, err := filepath.Abs(*outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve output directory")
	}

	cfg.Input = input
	cfg.OutDir = out
	cfg.Column = *column
	cfg.Strategy = strategy
	cfg.Preview = *preview
	cfg.Figure = plots.Figure{Width: vg.Length(*width) * vg.Inch, Height: vg.Length(*height) * vg.Inch}
	if *show {
		cfg.Viewer = plots.DefaultViewer()
	}

	if err := eda.Run(cfg, osfs.New("/"), os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

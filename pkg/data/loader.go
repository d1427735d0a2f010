package data

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gopkg.in/src-d/go-billy.v4"
)

var (
	// ErrNoRows is returned when a table has a header but no data rows.
	ErrNoRows = errors.New("no data rows")
	// ErrMissingColumn is returned when a named column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// MissingTokens are the raw cell values read as missing.
var MissingTokens = []string{"", "NA", "NaN", "N/A", "<nil>"}

// Options controls how a CSV is turned into a DataFrame.
type Options struct {
	// RawText lists columns loaded as text without type detection.
	// Numeric columns that may carry junk tokens go here so the
	// cleaning step decides what is a number.
	RawText []string
}

// Load reads the CSV at path from fsys into a DataFrame. The first
// record is the header.
func Load(fsys billy.Filesystem, path string, opts Options) (dataframe.DataFrame, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	types := make(map[string]series.Type, len(opts.RawText))
	for _, col := range opts.RawText {
		types[col] = series.String
	}

	df := dataframe.ReadCSV(bufio.NewReader(file),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingTokens),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		// gota v0.12 fails a header-only file with "load records: empty DataFrame".
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, ErrNoRows)
		}
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, df.Err)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, ErrNoRows)
	}
	return df, nil
}

// Head returns the first n rows of df, or all of them if there are fewer.
// A negative n selects no rows.
func Head(df dataframe.DataFrame, n int) dataframe.DataFrame {
	if n < 0 {
		n = 0
	}
	if n > df.Nrow() {
		n = df.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return df.Subset(idx)
}

// Column looks up a column by name.
func Column(df dataframe.DataFrame, col string) (series.Series, error) {
	if !HasColumn(df, col) {
		return series.Series{}, fmt.Errorf("%w %q", ErrMissingColumn, col)
	}
	s := df.Col(col)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("column %q: %w", col, s.Err)
	}
	return s, nil
}

// HasColumn reports whether df has a column called col.
func HasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

// Floats returns the named column as float64 values, NaN where missing.
func Floats(df dataframe.DataFrame, col string) ([]float64, error) {
	s, err := Column(df, col)
	if err != nil {
		return nil, err
	}
	return s.Float(), nil
}

// Strings returns the named column as text values.
func Strings(df dataframe.DataFrame, col string) ([]string, error) {
	s, err := Column(df, col)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

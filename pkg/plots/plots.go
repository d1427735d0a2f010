// Package plots renders the churn dataset as image files.
package plots

import (
	"fmt"
	"image/color"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gopkg.in/src-d/go-billy.v4"

	"churneda/pkg/pipeline"
)

// File names written by the three renderers.
const (
	RelationalFile  = "relational_plot.png"
	CategoricalFile = "categorical_plot.png"
	StatisticalFile = "statistical_plot.png"
)

// Figure is the size of a rendered image.
type Figure struct {
	Width, Height vg.Length
}

// DefaultFigure is 8x5 inches.
func DefaultFigure() Figure {
	return Figure{Width: 8 * vg.Inch, Height: 5 * vg.Inch}
}

// Renderer builds a plot from the cleaned table.
type Renderer func(df dataframe.DataFrame, sch pipeline.Schema) (*plot.Plot, error)

// Viewer displays a written image.
type Viewer interface {
	View(path string) error
}

// CommandViewer opens images with an external program.
type CommandViewer struct {
	Command string
}

// DefaultViewer returns the platform's file opener.
func DefaultViewer() CommandViewer {
	switch runtime.GOOS {
	case "darwin":
		return CommandViewer{Command: "open"}
	case "windows":
		return CommandViewer{Command: "explorer"}
	default:
		return CommandViewer{Command: "xdg-open"}
	}
}

func (v CommandViewer) View(path string) error {
	return exec.Command(v.Command, path).Run()
}

// Output says where and how rendered plots are written.
type Output struct {
	FS     billy.Filesystem
	Dir    string
	Figure Figure
	Viewer Viewer // nil runs headless
	Log    zerolog.Logger
}

// Render builds the plot, writes it to name under o.Dir and then shows
// it. The image file is closed before display, whatever the outcome of
// the render. A display failure is logged and not returned.
func (o Output) Render(name string, r Renderer, df dataframe.DataFrame, sch pipeline.Schema) error {
	p, err := r(df, sch)
	if err != nil {
		return fmt.Errorf("plot %s: %w", name, err)
	}
	path := o.FS.Join(o.Dir, name)
	if err := Save(o.FS, path, p, o.Figure); err != nil {
		return err
	}
	o.Log.Info().Str("file", path).Msg("saved plot")

	if o.Viewer != nil {
		if err := o.Viewer.View(path); err != nil {
			o.Log.Warn().Err(err).Str("file", path).Msg("could not display plot")
		}
	}
	return nil
}

// Save renders p into fsys at path. The format follows the extension.
func Save(fsys billy.Filesystem, path string, p *plot.Plot, fig Figure) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	wt, err := p.WriterTo(fig.Width, fig.Height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if _, err := wt.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// newPlot returns a plot with a title and axis labels.
func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	return p
}

// levels returns the distinct values of xs in order of first appearance.
func levels(xs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range xs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// withAlpha returns an opaque colour c at the given opacity.
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}

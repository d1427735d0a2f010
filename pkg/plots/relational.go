package plots

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"churneda/pkg/data"
	"churneda/pkg/pipeline"
)

// Relational scatters monthly against total charges, one colour per
// churn category.
func Relational(df dataframe.DataFrame, sch pipeline.Schema) (*plot.Plot, error) {
	monthly, err := data.Floats(df, sch.MonthlyCharges)
	if err != nil {
		return nil, err
	}
	total, err := data.Floats(df, sch.TotalCharges)
	if err != nil {
		return nil, err
	}
	churn, err := data.Strings(df, sch.Churn)
	if err != nil {
		return nil, err
	}

	p := newPlot("Monthly Charges vs. Total Charges (Churned vs. Retained)",
		"Monthly Charges ($)", "Total Charges ($)")
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Add(sch.Churn)

	for i, lvl := range levels(churn) {
		var pts plotter.XYs
		for j, c := range churn {
			if c != lvl || math.IsNaN(monthly[j]) || math.IsNaN(total[j]) {
				continue
			}
			pts = append(pts, plotter.XY{X: monthly[j], Y: total[j]})
		}
		if len(pts) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = withAlpha(plotutil.Color(i), 0.6)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(lvl, s)
	}
	return p, nil
}

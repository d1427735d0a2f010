package plots

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"churneda/pkg/data"
	"churneda/pkg/pipeline"
)

const boxWidth = 40 // points

// Statistical draws a box plot of monthly charges per churn category.
// Whiskers reach 1.5 IQR and points beyond them are drawn as outliers.
func Statistical(df dataframe.DataFrame, sch pipeline.Schema) (*plot.Plot, error) {
	monthly, err := data.Floats(df, sch.MonthlyCharges)
	if err != nil {
		return nil, err
	}
	churn, err := data.Strings(df, sch.Churn)
	if err != nil {
		return nil, err
	}

	p := newPlot("Monthly Charges Distribution by Churn Status", sch.Churn, "Monthly Charges ($)")

	churns, groups := groupBy(monthly, churn)
	for i, vals := range groups {
		if len(vals) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(i), plotter.Values(vals))
		if err != nil {
			return nil, err
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
	}
	p.NominalX(churns...)
	return p, nil
}

// groupBy splits the non-missing values by churn category, in order of
// first appearance of each category.
func groupBy(values []float64, churn []string) (churns []string, groups [][]float64) {
	churns = levels(churn)
	idx := make(map[string]int, len(churns))
	for i, lvl := range churns {
		idx[lvl] = i
	}
	groups = make([][]float64, len(churns))
	for k, c := range churn {
		if !math.IsNaN(values[k]) {
			groups[idx[c]] = append(groups[idx[c]], values[k])
		}
	}
	return churns, groups
}

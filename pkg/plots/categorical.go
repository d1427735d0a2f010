package plots

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"churneda/pkg/data"
	"churneda/pkg/pipeline"
)

const barWidth = 24 // points

// Categorical counts customers per contract type, with side by side
// bars for each churn category.
func Categorical(df dataframe.DataFrame, sch pipeline.Schema) (*plot.Plot, error) {
	contract, err := data.Strings(df, sch.Contract)
	if err != nil {
		return nil, err
	}
	churn, err := data.Strings(df, sch.Churn)
	if err != nil {
		return nil, err
	}

	contracts, churns, counts := countBy(contract, churn)

	p := newPlot("Churn Count by Contract Type", "Contract Type", "Customer Count")
	p.Legend.Top = true
	p.Legend.Add(sch.Churn)

	w := vg.Points(barWidth)
	mid := float64(len(churns)-1) / 2
	for i, lvl := range churns {
		bars, err := plotter.NewBarChart(plotter.Values(counts[i]), w)
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-mid) * w
		p.Add(bars)
		p.Legend.Add(lvl, bars)
	}
	p.NominalX(contracts...)
	return p, nil
}

// countBy counts rows per contract, split by churn category. Both level
// lists keep the order of first appearance; counts[i][j] is the number
// of rows with churn level i and contract level j.
func countBy(contract, churn []string) (contracts, churns []string, counts [][]float64) {
	contracts = levels(contract)
	churns = levels(churn)
	pos := make(map[string]int, len(contracts))
	for j, c := range contracts {
		pos[c] = j
	}
	row := make(map[string]int, len(churns))
	counts = make([][]float64, len(churns))
	for i, lvl := range churns {
		row[lvl] = i
		counts[i] = make([]float64, len(contracts))
	}
	for k, c := range churn {
		counts[row[c]][pos[contract[k]]]++
	}
	return contracts, churns, counts
}

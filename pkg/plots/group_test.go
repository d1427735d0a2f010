package plots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	churnCol    = []string{"No", "No", "Yes", "No", "Yes", "Yes", "No", "No", "Yes", "No"}
	contractCol = []string{"Month-to-month", "One year", "Month-to-month", "One year", "Month-to-month",
		"Month-to-month", "Month-to-month", "Month-to-month", "Month-to-month", "One year"}
	monthlyCol = []float64{29.85, 56.95, 53.85, 42.3, 70.7, 99.65, 89.1, 29.75, 104.8, 56.15}
)

func TestLevels(t *testing.T) {
	assert.Equal(t, []string{"No", "Yes"}, levels(churnCol))
	assert.Equal(t, []string{"Yes", "No"}, levels([]string{"Yes", "No", "Yes"}))
	assert.Empty(t, levels(nil))
}

func TestCountBy(t *testing.T) {
	contracts, churns, counts := countBy(contractCol, churnCol)

	assert.Equal(t, []string{"Month-to-month", "One year"}, contracts)
	assert.Equal(t, []string{"No", "Yes"}, churns)
	assert.Equal(t, [][]float64{
		{3, 3}, // No
		{4, 0}, // Yes
	}, counts)
}

func TestCountBy_FirstAppearanceOrder(t *testing.T) {
	contracts, churns, counts := countBy(
		[]string{"Two year", "Month-to-month", "Two year", "One year"},
		[]string{"Yes", "No", "No", "No"},
	)

	assert.Equal(t, []string{"Two year", "Month-to-month", "One year"}, contracts)
	assert.Equal(t, []string{"Yes", "No"}, churns)
	assert.Equal(t, [][]float64{
		{1, 0, 0},
		{1, 1, 1},
	}, counts)
}

func TestGroupBy(t *testing.T) {
	churns, groups := groupBy(monthlyCol, churnCol)

	assert.Equal(t, []string{"No", "Yes"}, churns)
	assert.Equal(t, [][]float64{
		{29.85, 56.95, 42.3, 89.1, 29.75, 56.15},
		{53.85, 70.7, 99.65, 104.8},
	}, groups)
}

func TestGroupBy_SkipsMissing(t *testing.T) {
	churns, groups := groupBy([]float64{1, math.NaN(), math.NaN()}, []string{"No", "Yes", "No"})

	assert.Equal(t, []string{"No", "Yes"}, churns)
	assert.Equal(t, []float64{1}, groups[0])
	assert.Empty(t, groups[1])
}

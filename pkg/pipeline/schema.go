package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"churneda/pkg/data"
)

// Schema names the columns of a churn dataset.
type Schema struct {
	MonthlyCharges string // numeric
	TotalCharges   string // numeric, may arrive as text with blanks
	Churn          string // categorical
	Contract       string // categorical
}

// DefaultSchema returns the column names of the telco churn export.
func DefaultSchema() Schema {
	return Schema{
		MonthlyCharges: "MonthlyCharges",
		TotalCharges:   "TotalCharges",
		Churn:          "Churn",
		Contract:       "Contract",
	}
}

// Columns lists the expected columns.
func (s Schema) Columns() []string {
	return []string{s.MonthlyCharges, s.TotalCharges, s.Churn, s.Contract}
}

// Validate checks that every expected column exists in df.
func (s Schema) Validate(df dataframe.DataFrame) error {
	for _, col := range s.Columns() {
		if !data.HasColumn(df, col) {
			return fmt.Errorf("schema: %w %q", data.ErrMissingColumn, col)
		}
	}
	return nil
}

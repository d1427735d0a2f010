package pipeline

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Transformer is one cleaning step over a table.
type Transformer interface {
	Name() string
	Transform(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Transform runs every step in order, feeding each the previous output.
func (p *Pipeline) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, step := range p.steps {
		var err error
		df, err = step.Transform(df)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return df, nil
}

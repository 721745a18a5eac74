package predictor

import (
	"errors"
	"fmt"

	"persona-classifier/internal/dataset"
	"persona-classifier/internal/model"
	"persona-classifier/internal/tensor"
)

// ErrInputWidth is returned when the model expects a different row width.
var ErrInputWidth = errors.New("predictor: model input width mismatch")

// Result is the probability the model assigns to the category at Index.
type Result struct {
	Prob  float64
	Index int
}

// Predict runs rows through m and returns, per row, one Result per category
// in positional order.
func Predict(m model.Model, rows []dataset.FeatureVector) ([][]Result, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if w := m.InputWidth(); w != dataset.FeatureWidth {
		return nil, fmt.Errorf("model expects %d features, rows have %d: %w", w, dataset.FeatureWidth, ErrInputWidth)
	}
	xs, err := tensor.FromRows(dataset.FeatureRows(rows))
	if err != nil {
		return nil, err
	}

	probs := tensor.ToRows(m.Predict(xs))
	out := make([][]Result, len(probs))
	for i, row := range probs {
		out[i] = make([]Result, len(row))
		for j, p := range row {
			out[i][j] = Result{Prob: p, Index: j}
		}
	}
	return out, nil
}

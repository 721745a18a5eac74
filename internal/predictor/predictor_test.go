package predictor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"persona-classifier/internal/dataset"
	"persona-classifier/internal/model"
)

type fixedModel struct {
	width int
	probs []float64
	calls int
}

func (f *fixedModel) TrainStep(model.Batch) model.Step { return model.Step{} }

func (f *fixedModel) InputWidth() int { return f.width }

func (f *fixedModel) Predict(inputs mat.Matrix) *mat.Dense {
	f.calls++
	r, _ := inputs.Dims()
	out := mat.NewDense(r, len(f.probs), nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, f.probs)
	}
	return out
}

func TestPredictPairsProbabilitiesWithIndex(t *testing.T) {
	m := &fixedModel{width: dataset.FeatureWidth, probs: []float64{0.1, 0.7, 0.2}}
	rows := []dataset.FeatureVector{{0.2, 0, 0, 1, 0, 0, 1}}

	got, err := Predict(m, rows)
	require.NoError(t, err)
	assert.Equal(t, [][]Result{{
		{Prob: 0.1, Index: 0},
		{Prob: 0.7, Index: 1},
		{Prob: 0.2, Index: 2},
	}}, got)
	assert.Equal(t, 1, m.calls)
}

func TestPredictRejectsWidthMismatch(t *testing.T) {
	m := &fixedModel{width: 5, probs: []float64{1, 0, 0}}
	_, err := Predict(m, []dataset.FeatureVector{{}})
	assert.ErrorIs(t, err, ErrInputWidth)
	assert.Zero(t, m.calls)
}

func TestPredictNoRows(t *testing.T) {
	got, err := Predict(&fixedModel{width: dataset.FeatureWidth}, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPredictWithMLPSumsToOne(t *testing.T) {
	mlp := model.NewMLP(model.Config{}, rand.New(rand.NewSource(5)))
	ds := dataset.Demo()

	got, err := Predict(mlp, ds.Features)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, row := range got {
		require.Len(t, row, dataset.LabelWidth)
		sum := 0.0
		for j, r := range row {
			assert.Equal(t, j, r.Index)
			sum += r.Prob
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

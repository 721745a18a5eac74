package trainer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"persona-classifier/internal/dataset"
	"persona-classifier/internal/tensor"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	m.Run()
}

func demoConfig(seed int64) RunConfig {
	return RunConfig{
		Dataset:      dataset.Demo(),
		Epochs:       100,
		BatchSize:    32,
		HiddenUnits:  80,
		LearningRate: 0.01,
		Shuffle:      true,
		Seed:         seed,
	}
}

func TestRunRecoversTrainingLabels(t *testing.T) {
	ds := dataset.Demo()
	for _, seed := range []int64{1, 42, 1234} {
		mdl, err := Run(context.Background(), demoConfig(seed))
		require.NoError(t, err)

		xs, err := tensor.FromRows(ds.FeatureRows())
		require.NoError(t, err)
		probs := mdl.Predict(xs)
		for i, lv := range ds.Labels {
			row := mat.Row(nil, i, probs)
			assert.InDelta(t, 1.0, floats.Sum(row), 1e-9)
			assert.Equal(t, lv.Index(), floats.MaxIdx(row), "seed %d row %d probs %v", seed, i, row)
		}

		step, err := Evaluate(mdl, ds)
		require.NoError(t, err)
		assert.Equal(t, 1.0, step.Accuracy)
	}
}

func TestRunDefaultLearningRateReducesLoss(t *testing.T) {
	cfg := demoConfig(7)
	cfg.LearningRate = 0.001

	cfg.Epochs = 1
	early, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Epochs = 100
	late, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	ds := dataset.Demo()
	before, err := Evaluate(early, ds)
	require.NoError(t, err)
	after, err := Evaluate(late, ds)
	require.NoError(t, err)
	assert.Less(t, after.Loss, before.Loss)
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	a, err := Run(context.Background(), demoConfig(99))
	require.NoError(t, err)
	b, err := Run(context.Background(), demoConfig(99))
	require.NoError(t, err)

	x := mat.NewDense(1, 7, []float64{0.2, 0, 0, 1, 0, 0, 1})
	assert.True(t, mat.EqualApprox(a.Predict(x), b.Predict(x), 1e-12))
}

func TestRunRejectsBadInput(t *testing.T) {
	cfg := demoConfig(1)
	cfg.Dataset.Labels = cfg.Dataset.Labels[:2]
	_, err := Run(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrRowMismatch)

	cfg = demoConfig(1)
	cfg.Dataset.Features[0][2] = 1
	_, err = Run(context.Background(), cfg)
	assert.ErrorIs(t, err, dataset.ErrOneHot)

	cfg = demoConfig(1)
	cfg.Epochs = 0
	_, err = Run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, demoConfig(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectRows(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	out := selectRows(m, []int{2, 0})
	assert.Equal(t, [][]float64{{5, 6}, {1, 2}}, tensor.ToRows(out))
}

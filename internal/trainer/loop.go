package trainer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"persona-classifier/internal/dataset"
	"persona-classifier/internal/metrics"
	"persona-classifier/internal/model"
	"persona-classifier/internal/tensor"
)

// ErrRowMismatch is returned when features and labels differ in length.
var ErrRowMismatch = errors.New("trainer: feature and label row counts differ")

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Dataset      dataset.Dataset
	Epochs       int
	BatchSize    int
	HiddenUnits  int
	LearningRate float64
	Shuffle      bool
	LogEvery     int
	// Seed 0 seeds from the clock, so weights differ between runs.
	Seed int64
}

// Run builds the classifier and fits it for cfg.Epochs passes over the
// dataset, reshuffling the rows every epoch.
func Run(ctx context.Context, cfg RunConfig) (*model.MLP, error) {
	if cfg.Epochs <= 0 {
		return nil, errors.New("trainer: epochs must be > 0")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 32
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 10
	}

	xs, ys, err := tensors(cfg.Dataset)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mdl := model.NewMLP(model.Config{
		Inputs:       dataset.FeatureWidth,
		Hidden:       cfg.HiddenUnits,
		Classes:      dataset.LabelWidth,
		LearningRate: cfg.LearningRate,
	}, rng)
	rows := len(cfg.Dataset.Features)
	sampler := dataset.NewSampler(rows, cfg.Shuffle, rng)
	var window metrics.Window

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		step := fitEpoch(mdl, xs, ys, sampler.Order(), cfg.BatchSize)
		window.Record(rows, time.Since(start), step.Loss, step.Accuracy)

		if epoch%cfg.LogEvery == 0 {
			snap := window.Snapshot()
			log.Debug().
				Int("epoch", epoch).
				Float64("loss", snap.LastLoss).
				Float64("mean_loss", snap.MeanLoss).
				Float64("accuracy", snap.LastAccuracy).
				Float64("compute_ms", snap.AvgComputeMS).
				Msg("epoch end")
		}
	}

	final := mdl.Evaluate(model.Batch{Inputs: xs, Labels: ys})
	log.Info().
		Int("epochs", cfg.Epochs).
		Int("rows", rows).
		Int64("seed", seed).
		Float64("loss", final.Loss).
		Float64("accuracy", final.Accuracy).
		Msg("training finished")
	return mdl, nil
}

// Evaluate reports loss and accuracy of m over ds.
func Evaluate(m *model.MLP, ds dataset.Dataset) (model.Step, error) {
	xs, ys, err := tensors(ds)
	if err != nil {
		return model.Step{}, err
	}
	return m.Evaluate(model.Batch{Inputs: xs, Labels: ys}), nil
}

func tensors(ds dataset.Dataset) (xs, ys *mat.Dense, err error) {
	if len(ds.Features) != len(ds.Labels) {
		return nil, nil, fmt.Errorf("%d features vs %d labels: %w", len(ds.Features), len(ds.Labels), ErrRowMismatch)
	}
	if err := ds.Validate(); err != nil {
		return nil, nil, fmt.Errorf("trainer: %w", err)
	}
	if xs, err = tensor.FromRows(ds.FeatureRows()); err != nil {
		return nil, nil, err
	}
	if ys, err = tensor.FromRows(ds.LabelRows()); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// fitEpoch runs one optimizer step per batch and returns the row-weighted
// mean of the batch metrics.
func fitEpoch(m model.Model, xs, ys *mat.Dense, order []int, batchSize int) model.Step {
	var sum model.Step
	for _, idx := range dataset.Batches(order, batchSize) {
		step := m.TrainStep(model.Batch{
			Inputs: selectRows(xs, idx),
			Labels: selectRows(ys, idx),
		})
		sum.Loss += step.Loss * float64(len(idx))
		sum.Accuracy += step.Accuracy * float64(len(idx))
	}
	n := float64(len(order))
	return model.Step{Loss: sum.Loss / n, Accuracy: sum.Accuracy / n}
}

func selectRows(m *mat.Dense, idx []int) *mat.Dense {
	_, cols := m.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for i, row := range idx {
		out.SetRow(i, m.RawRowView(row))
	}
	return out
}

package model

import "gonum.org/v1/gonum/mat"

// Batch represents a minibatch of feature rows and one-hot label rows.
type Batch struct {
	Inputs *mat.Dense
	Labels *mat.Dense
}

// Size returns the number of rows in the batch.
func (b Batch) Size() int {
	if b.Inputs == nil {
		return 0
	}
	r, _ := b.Inputs.Dims()
	return r
}

// Step reports the metrics of one pass over a batch.
type Step struct {
	Loss     float64
	Accuracy float64
}

// Model defines the training and inference functionality used by the trainer
// and the predictor.
type Model interface {
	TrainStep(batch Batch) Step
	Predict(inputs mat.Matrix) *mat.Dense
	InputWidth() int
}

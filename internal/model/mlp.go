package model

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Config describes a one-hidden-layer classifier.
type Config struct {
	Inputs       int
	Hidden       int
	Classes      int
	LearningRate float64
}

// MLP is a dense ReLU hidden layer followed by a softmax output layer,
// trained with Adam on categorical cross-entropy.
type MLP struct {
	layers []*Dense
	opt    *Adam
}

// NewMLP constructs the network with random initialization.
func NewMLP(cfg Config, rng *rand.Rand) *MLP {
	if cfg.Inputs <= 0 {
		cfg.Inputs = 7
	}
	if cfg.Hidden <= 0 {
		cfg.Hidden = 80
	}
	if cfg.Classes <= 0 {
		cfg.Classes = 3
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.001
	}
	return &MLP{
		layers: []*Dense{
			NewDense(cfg.Inputs, cfg.Hidden, ReLU, rng),
			NewDense(cfg.Hidden, cfg.Classes, Softmax, rng),
		},
		opt: NewAdam(cfg.LearningRate),
	}
}

// Layers exposes the layers in forward order.
func (m *MLP) Layers() []*Dense {
	return m.layers
}

// InputWidth is the number of features per row.
func (m *MLP) InputWidth() int {
	in, _ := m.layers[0].Dims()
	return in
}

// Classes is the width of the probability rows returned by Predict.
func (m *MLP) Classes() int {
	_, out := m.layers[len(m.layers)-1].Dims()
	return out
}

// Predict returns one probability row per input row.
func (m *MLP) Predict(inputs mat.Matrix) *mat.Dense {
	_, acts := m.forward(inputs)
	return acts[len(acts)-1]
}

// Evaluate reports loss and accuracy without updating weights.
func (m *MLP) Evaluate(batch Batch) Step {
	probs := m.Predict(batch.Inputs)
	return Step{
		Loss:     CrossEntropy(probs, batch.Labels),
		Accuracy: Accuracy(probs, batch.Labels),
	}
}

// TrainStep executes one Adam step on the batch and returns the loss and
// accuracy measured before the update.
func (m *MLP) TrainStep(batch Batch) Step {
	if batch.Size() == 0 {
		return Step{}
	}
	step, grads := m.backprop(batch)
	m.opt.Step(m.params(), grads)
	return step
}

func (m *MLP) params() []*mat.Dense {
	params := make([]*mat.Dense, 0, 2*len(m.layers))
	for _, l := range m.layers {
		params = append(params, l.W, l.B)
	}
	return params
}

// forward returns the pre-activations and activations of every layer.
func (m *MLP) forward(x mat.Matrix) (zs, acts []*mat.Dense) {
	in := x
	for _, l := range m.layers {
		z, a := l.Forward(in)
		zs = append(zs, z)
		acts = append(acts, a)
		in = a
	}
	return zs, acts
}

// backprop returns the batch metrics and the gradients aligned with params.
func (m *MLP) backprop(batch Batch) (Step, []*mat.Dense) {
	zs, acts := m.forward(batch.Inputs)
	probs := acts[len(acts)-1]
	step := Step{
		Loss:     CrossEntropy(probs, batch.Labels),
		Accuracy: Accuracy(probs, batch.Labels),
	}

	dz := &mat.Dense{}
	dz.Sub(probs, batch.Labels)
	dz.Scale(1/float64(batch.Size()), dz)

	grads := make([]*mat.Dense, 2*len(m.layers))
	for l := len(m.layers) - 1; l >= 0; l-- {
		var in mat.Matrix = batch.Inputs
		if l > 0 {
			in = acts[l-1]
		}
		dW, dB, dx := m.layers[l].Backward(in, dz)
		grads[2*l] = dW
		grads[2*l+1] = dB
		if l > 0 {
			dz = m.layers[l-1].Act.Backward(zs[l-1], dx)
		}
	}
	return step, grads
}

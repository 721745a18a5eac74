package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation is applied element- or row-wise after a dense layer.
type Activation int

const (
	Linear Activation = iota
	ReLU
	// Softmax is only valid on the output layer; its gradient is folded
	// into CrossEntropy.
	Softmax
)

func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	default:
		return "linear"
	}
}

// Forward returns act(z) in a new matrix.
func (a Activation) Forward(z *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(z)
	switch a {
	case ReLU:
		out.Apply(func(_, _ int, v float64) float64 {
			return math.Max(0, v)
		}, out)
	case Softmax:
		r, _ := out.Dims()
		for i := 0; i < r; i++ {
			softmax(out.RawRowView(i))
		}
	}
	return out
}

// Backward maps the gradient w.r.t. the activation output to the gradient
// w.r.t. the pre-activation z.
func (a Activation) Backward(z, grad *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(grad)
	if a == ReLU {
		out.Apply(func(i, j int, v float64) float64 {
			if z.At(i, j) > 0 {
				return v
			}
			return 0
		}, out)
	}
	return out
}

// softmax normalizes logits in place.
func softmax(logits []float64) {
	maxLogit := logits[0]
	for _, v := range logits {
		if v > maxLogit {
			maxLogit = v
		}
	}
	sum := 0.0
	for i, v := range logits {
		exp := math.Exp(v - maxLogit)
		logits[i] = exp
		sum += exp
	}
	inv := 1.0 / sum
	for i := range logits {
		logits[i] *= inv
	}
}

package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	beta1   = 0.9
	beta2   = 0.999
	epsilon = 1e-7
)

// Adam keeps first and second moment estimates per parameter.
type Adam struct {
	LearningRate float64

	iter int
	mom  [][]float64
	vel  [][]float64
}

// NewAdam returns an optimizer with the usual beta1/beta2 defaults.
func NewAdam(lr float64) *Adam {
	return &Adam{LearningRate: lr}
}

// Step applies one bias-corrected update. params and grads are aligned and
// must keep the same order across calls.
func (o *Adam) Step(params, grads []*mat.Dense) {
	if o.mom == nil {
		o.mom = make([][]float64, len(params))
		o.vel = make([][]float64, len(params))
		for i, p := range params {
			n := len(p.RawMatrix().Data)
			o.mom[i] = make([]float64, n)
			o.vel[i] = make([]float64, n)
		}
	}
	o.iter++

	lr := o.LearningRate *
		math.Sqrt(1-math.Pow(beta2, float64(o.iter))) /
		(1 - math.Pow(beta1, float64(o.iter)))

	for i, p := range params {
		w := p.RawMatrix().Data
		g := grads[i].RawMatrix().Data
		mom, vel := o.mom[i], o.vel[i]
		for d := range w {
			mom[d] = beta1*mom[d] + (1-beta1)*g[d]
			vel[d] = beta2*vel[d] + (1-beta2)*g[d]*g[d]
			w[d] -= lr * mom[d] / (math.Sqrt(vel[d]) + epsilon)
		}
	}
}

// Iterations returns the number of steps taken.
func (o *Adam) Iterations() int {
	return o.iter
}

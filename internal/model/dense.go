package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Dense is a fully connected layer: act(x·W + b).
type Dense struct {
	W   *mat.Dense // inputs x units
	B   *mat.Dense // 1 x units
	Act Activation
}

// NewDense builds a layer with Glorot-uniform weights and zero bias.
func NewDense(inputs, units int, act Activation, rng *rand.Rand) *Dense {
	limit := math.Sqrt(6 / float64(inputs+units))
	weights := make([]float64, inputs*units)
	for i := range weights {
		weights[i] = (rng.Float64()*2 - 1) * limit
	}
	return &Dense{
		W:   mat.NewDense(inputs, units, weights),
		B:   mat.NewDense(1, units, nil),
		Act: act,
	}
}

// Dims returns the layer's input and output widths.
func (d *Dense) Dims() (inputs, units int) {
	return d.W.Dims()
}

// Forward returns the pre-activation z and the activation a for rows x.
func (d *Dense) Forward(x mat.Matrix) (z, a *mat.Dense) {
	z = &mat.Dense{}
	z.Mul(x, d.W)
	z.Apply(func(_, j int, v float64) float64 {
		return v + d.B.At(0, j)
	}, z)
	return z, d.Act.Forward(z)
}

// Backward takes the gradient w.r.t. z for inputs x and returns the weight,
// bias and input gradients.
func (d *Dense) Backward(x mat.Matrix, dz *mat.Dense) (dW, dB, dx *mat.Dense) {
	dW = &mat.Dense{}
	dW.Mul(x.T(), dz)

	rows, units := dz.Dims()
	dB = mat.NewDense(1, units, nil)
	for j := 0; j < units; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += dz.At(i, j)
		}
		dB.Set(0, j, sum)
	}

	dx = &mat.Dense{}
	dx.Mul(dz, d.W.T())
	return dW, dB, dx
}

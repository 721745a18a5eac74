package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CrossEntropy is the categorical cross-entropy averaged over rows.
func CrossEntropy(probs, labels mat.Matrix) float64 {
	rows, cols := probs.Dims()
	if rows == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if y := labels.At(i, j); y != 0 {
				total -= y * math.Log(math.Max(probs.At(i, j), epsilon))
			}
		}
	}
	return total / float64(rows)
}

// Accuracy is the share of rows whose most probable class is the labelled one.
func Accuracy(probs, labels mat.Matrix) float64 {
	rows, _ := probs.Dims()
	if rows == 0 {
		return 0
	}
	correct := 0
	for i := 0; i < rows; i++ {
		if floats.MaxIdx(mat.Row(nil, i, probs)) == floats.MaxIdx(mat.Row(nil, i, labels)) {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

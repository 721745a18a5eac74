// Package tensor converts plain numeric tables to and from gonum matrices.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows copies rows into a new dense matrix, preserving row and column
// order. Ragged input fails with an error wrapping mat.ErrShape; an empty
// table fails with mat.ErrZeroLength.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tensor: %w", mat.ErrZeroLength)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor: row %d has %d columns, want %d: %w", i, len(row), cols, mat.ErrShape)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// ToRows materializes m into freshly allocated rows.
func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

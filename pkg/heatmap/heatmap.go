// Package heatmap holds gridded values for overlaying on a pitch figure.
package heatmap

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGrid reports heatmap data that cannot be laid out on a pitch:
// empty grids, ragged rows, or infinite values.
var ErrInvalidGrid = errors.New("invalid heatmap grid")

// Grid is a rectangular block of cell values. Row 0 is the bottom row of
// cells on the pitch and column 0 the left-hand column, so values[0][0] is
// the bottom-left cell. NaN marks a cell with no data.
type Grid struct {
	values [][]float64
	rows   int
	cols   int
}

// NewGrid builds a grid from a copy of values. Every row must have the same
// length and no value may be infinite; failures wrap ErrInvalidGrid.
func NewGrid(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: need at least one row and one column", ErrInvalidGrid)
	}
	cols := len(values[0])
	copied := make([][]float64, len(values))
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrInvalidGrid, i, len(row), cols)
		}
		for j, v := range row {
			if math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: infinite value at row %d, column %d", ErrInvalidGrid, i, j)
			}
		}
		copied[i] = append([]float64(nil), row...)
	}
	return &Grid{values: copied, rows: len(values), cols: cols}, nil
}

// FromMatrix builds a grid from a gonum matrix. Matrix row 0 becomes grid
// row 0, the bottom row of cells.
func FromMatrix(m mat.Matrix) (*Grid, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: need at least one row and one column", ErrInvalidGrid)
	}
	values := make([][]float64, rows)
	for i := range values {
		row := make([]float64, cols)
		for j := range row {
			row[j] = m.At(i, j)
		}
		values[i] = row
	}
	return NewGrid(values)
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Value returns the cell value at the given row and column.
func (g *Grid) Value(row, col int) float64 {
	return g.values[row][col]
}

// ValueRange returns the smallest and largest values in the grid, ignoring
// NaN cells. When every cell is NaN both results are NaN.
func (g *Grid) ValueRange() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, row := range g.values {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(min) || v < min {
				min = v
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
	}
	return min, max
}

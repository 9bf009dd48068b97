package core

import "fmt"

// Matrix is a square matrix of float64s, 4x4 in practice. The zero value is
// not useful; use NewMatrix or Identity.
type Matrix struct {
	size  int
	cells []float64
}

// NewMatrix creates a size x size matrix filled with zeros
func NewMatrix(size int) Matrix {
	return Matrix{size: size, cells: make([]float64, size*size)}
}

// NewMatrix4 creates a 4x4 matrix from rows of values
func NewMatrix4(rows [4][4]float64) Matrix {
	m := NewMatrix(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	m := NewMatrix(4)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Size returns the matrix dimension
func (m Matrix) Size() int {
	return m.size
}

// At returns the cell at the given row and column
func (m Matrix) At(row, col int) float64 {
	return m.cells[row*m.size+col]
}

// Set assigns the cell at the given row and column
func (m Matrix) Set(row, col int, value float64) {
	m.cells[row*m.size+col] = value
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) Matrix {
	result := NewMatrix(m.size)
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			var sum float64
			for i := 0; i < m.size; i++ {
				sum += m.At(r, i) * other.At(i, c)
			}
			result.Set(r, c, sum)
		}
	}
	return result
}

// MulTuple returns the product of a 4x4 matrix and a tuple
func (m Matrix) MulTuple(t Tuple) Tuple {
	in := [4]float64{t.X, t.Y, t.Z, t.W}
	var out [4]float64
	for r := 0; r < 4; r++ {
		var sum float64
		for c := 0; c < 4; c++ {
			sum += m.At(r, c) * in[c]
		}
		out[r] = sum
	}
	return Tuple{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	result := NewMatrix(m.size)
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			result.Set(c, r, m.At(r, c))
		}
	}
	return result
}

// Determinant computes the determinant by recursive cofactor expansion
// along the first row.
func (m Matrix) Determinant() float64 {
	if m.size == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	var det float64
	for c := 0; c < m.size; c++ {
		det += m.At(0, c) * m.Cofactor(0, c)
	}
	return det
}

// Submatrix returns a copy of the matrix with the given row and column removed
func (m Matrix) Submatrix(removeRow, removeCol int) Matrix {
	result := NewMatrix(m.size - 1)
	for r, rr := 0, 0; r < m.size; r++ {
		if r == removeRow {
			continue
		}
		for c, cc := 0, 0; c < m.size; c++ {
			if c == removeCol {
				continue
			}
			result.Set(rr, cc, m.At(r, c))
			cc++
		}
		rr++
	}
	return result
}

// Minor returns the determinant of the submatrix at the given row and column
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor with its sign flipped when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Invertible reports whether the matrix has an inverse
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of the matrix. Inverting a singular matrix is
// a precondition violation and panics.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if det == 0 {
		panic(fmt.Sprintf("matrix is singular and cannot be inverted: %v", m.cells))
	}
	result := NewMatrix(m.size)
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			// transposed assignment: cofactor of (r, c) lands at (c, r)
			result.Set(c, r, m.Cofactor(r, c)/det)
		}
	}
	return result
}

// Equals reports exact cell-for-cell equality
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ApproxEquals reports cell-for-cell equality within epsilon
func (m Matrix) ApproxEquals(other Matrix, epsilon float64) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.cells {
		diff := m.cells[i] - other.cells[i]
		if diff > epsilon || diff < -epsilon {
			return false
		}
	}
	return true
}

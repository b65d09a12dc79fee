package core

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 matrix in row-major order
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the matrix applied to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix. A matrix whose determinant is
// within Epsilon of zero is singular and cannot be inverted.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, fmt.Errorf("matrix is singular (determinant %g), cannot invert", det)
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transpose by swapping row/col on assignment
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices match within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEq(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) submatrix(skipRow, skipCol int) [3][3]float64 {
	var sub [3][3]float64
	sr := 0
	for row := 0; row < 4; row++ {
		if row == skipRow {
			continue
		}
		sc := 0
		for col := 0; col < 4; col++ {
			if col == skipCol {
				continue
			}
			sub[sr][sc] = m[row][col]
			sc++
		}
		sr++
	}
	return sub
}

func (m Matrix) minor(row, col int) float64 {
	s := m.submatrix(row, col)
	return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
}

func (m Matrix) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

package cubekit

import "fmt"

// Mat3 is a 3x3 integer matrix stored in row-major order.
// In this package it only ever holds the identity or one of the six
// quarter-turn rotation operators below.
type Mat3 [9]int

// NewMat3 creates a matrix from nine values in row-major order.
func NewMat3(a, b, c, d, e, f, g, h, i int) Mat3 {
	return Mat3{a, b, c, d, e, f, g, h, i}
}

// Mat3FromRows creates a matrix from three 3-element rows.
// Any other shape fails with ErrMatrixSize.
func Mat3FromRows(rows [][]int) (Mat3, error) {
	if len(rows) != 3 {
		return Mat3{}, fmt.Errorf("%w, got %d rows", ErrMatrixSize, len(rows))
	}
	var m Mat3
	for r, row := range rows {
		if len(row) != 3 {
			return Mat3{}, fmt.Errorf("%w, row %d has %d values", ErrMatrixSize, r, len(row))
		}
		copy(m[r*3:r*3+3], row)
	}
	return m, nil
}

// Mat3FromSlice creates a matrix from a flat 9-element slice in row-major
// order. Any other length fails with ErrMatrixSize.
func Mat3FromSlice(vals []int) (Mat3, error) {
	if len(vals) != 9 {
		return Mat3{}, fmt.Errorf("%w, got %d", ErrMatrixSize, len(vals))
	}
	var m Mat3
	copy(m[:], vals)
	return m, nil
}

// Rows returns the three rows of the matrix.
func (m Mat3) Rows() [3][3]int {
	return [3][3]int{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

// Cols returns the three columns of the matrix.
func (m Mat3) Cols() [3][3]int {
	return [3][3]int{
		{m[0], m[3], m[6]},
		{m[1], m[4], m[7]},
		{m[2], m[5], m[8]},
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() int {
	a := m[0] * (m[4]*m[8] - m[5]*m[7])
	b := m[1] * (m[3]*m[8] - m[5]*m[6])
	c := m[2] * (m[3]*m[7] - m[4]*m[6])
	return a - b + c
}

// Diagonal returns the main diagonal (0,0), (1,1), (2,2).
func (m Mat3) Diagonal() [3]int {
	return [3]int{m[0], m[4], m[8]}
}

// Add returns the element-wise sum.
func (m Mat3) Add(other Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + other[i]
	}
	return out
}

// Sub returns the element-wise difference.
func (m Mat3) Sub(other Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] - other[i]
	}
	return out
}

// MulVec returns the matrix-vector product: each output component is the
// dot product of a row with v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// MulMat returns the standard 3x3 matrix product.
func (m Mat3) MulMat(other Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += m[r*3+k] * other[k*3+c]
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// Scale multiplies every cell by a scalar.
func (m Mat3) Scale(s int) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%d, %d, %d\n%d, %d, %d\n%d, %d, %d]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Identity and the six 90-degree rotation operators. These are the only
// transforms ever applied to a piece. CW is clockwise, CC is
// counter-clockwise, looking down the positive axis toward the origin.
var (
	Identity = NewMat3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1)

	RotXCW = NewMat3(
		1, 0, 0,
		0, 0, 1,
		0, -1, 0)
	RotXCC = NewMat3(
		1, 0, 0,
		0, 0, -1,
		0, 1, 0)

	RotYCW = NewMat3(
		0, 0, -1,
		0, 1, 0,
		1, 0, 0)
	RotYCC = NewMat3(
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0)

	RotZCW = NewMat3(
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1)
	RotZCC = NewMat3(
		0, -1, 0,
		1, 0, 0,
		0, 0, 1)
)

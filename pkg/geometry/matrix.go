package geometry

import (
	"fmt"

	"github.com/lokyhark/ray-tracer-challenge/pkg/scalar"
)

// Matrix is a 4x4 linear map stored in row-major order. The size is
// fixed; there is no dynamic dimensioning. A Matrix is a plain value:
// every operation returns a new one, and nothing is cached between
// calls.
type Matrix struct {
	elements [16]float64
}

// NewMatrix creates a matrix from 16 elements in row-major order.
func NewMatrix(elements [16]float64) Matrix {
	return Matrix{elements: elements}
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return Matrix{elements: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Get returns the element at (row, col). Indices outside [0, 4) are a
// caller bug and panic.
func (m Matrix) Get(row, col int) float64 {
	checkIndex(row, col)
	return m.elements[row*4+col]
}

// Set writes the element at (row, col). Indices outside [0, 4) are a
// caller bug and panic.
func (m *Matrix) Set(row, col int, v float64) {
	checkIndex(row, col)
	m.elements[row*4+col] = v
}

func checkIndex(row, col int) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		panic(fmt.Sprintf("geometry: matrix index (%d, %d) out of range", row, col))
	}
}

// Eq reports componentwise epsilon-tolerant equality.
func (m Matrix) Eq(n Matrix) bool {
	for i := range m.elements {
		if !scalar.Eq(m.elements[i], n.elements[i]) {
			return false
		}
	}
	return true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.elements[col*4+row] = m.elements[row*4+col]
		}
	}
	return out
}

// Mul returns the matrix product m * n. Multiplication is associative
// but not commutative.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.elements[row*4+col] = m.elements[row*4+0]*n.elements[0*4+col] +
				m.elements[row*4+1]*n.elements[1*4+col] +
				m.elements[row*4+2]*n.elements[2*4+col] +
				m.elements[row*4+3]*n.elements[3*4+col]
		}
	}
	return out
}

// MulPoint applies the full affine map to a point, translation column
// included. The homogeneous coordinate is assumed 1 and not carried.
func (m Matrix) MulPoint(p Point) Point {
	e := &m.elements
	return Point{
		e[0]*p.X + e[1]*p.Y + e[2]*p.Z + e[3],
		e[4]*p.X + e[5]*p.Y + e[6]*p.Z + e[7],
		e[8]*p.X + e[9]*p.Y + e[10]*p.Z + e[11],
	}
}

// MulVector applies only the top-left 3x3 linear block to a vector. The
// translation column is ignored: this is what distinguishes vectors
// from points under transformation.
func (m Matrix) MulVector(v Vector) Vector {
	e := &m.elements
	return Vector{
		e[0]*v.X + e[1]*v.Y + e[2]*v.Z,
		e[4]*v.X + e[5]*v.Y + e[6]*v.Z,
		e[8]*v.X + e[9]*v.Y + e[10]*v.Z,
	}
}

// Determinant computes the determinant by cofactor expansion along row
// 0, recursing through 3x3 submatrices down to the closed-form 2x2
// case.
func (m Matrix) Determinant() float64 {
	var det float64
	for col := 0; col < 4; col++ {
		det += m.elements[col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero. The
// comparison is exact, not epsilon-tolerant: a near-singular matrix
// whose determinant is a rounding artifact still reports invertible,
// and its inverse will carry huge entries.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse computed by the adjugate method: the
// output element at (col, row) is cofactor(row, col) divided by the
// determinant. Inverting a singular matrix divides by zero and yields
// ±Inf or NaN entries rather than an error; callers who care must check
// IsInvertible first.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.elements[col*4+row] = m.cofactor(row, col) / det
		}
	}
	return out
}

// submatrix deletes the given row and column, reducing 4x4 to 3x3.
func (m Matrix) submatrix(row, col int) matrix3 {
	var out matrix3
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[i] = m.elements[r*4+c]
			i++
		}
	}
	return out
}

// minor is the determinant of the submatrix at (row, col).
func (m Matrix) minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

// cofactor is the minor with the sign (−1)^(row+col).
func (m Matrix) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// matrix3 is the 3x3 intermediate of cofactor expansion, row-major.
type matrix3 [9]float64

func (m matrix3) submatrix(row, col int) matrix2 {
	var out matrix2
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			out[i] = m[r*3+c]
			i++
		}
	}
	return out
}

func (m matrix3) minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

func (m matrix3) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func (m matrix3) determinant() float64 {
	var det float64
	for col := 0; col < 3; col++ {
		det += m[col] * m.cofactor(0, col)
	}
	return det
}

// matrix2 is the 2x2 base case of cofactor expansion, row-major.
type matrix2 [4]float64

func (m matrix2) determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

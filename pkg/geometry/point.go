package geometry

import "github.com/lokyhark/ray-tracer-challenge/pkg/scalar"

// Point is a location in 3-D affine space. Its implicit homogeneous
// coordinate is 1, so transforming a Point applies the translation
// column of a Matrix.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a point from its coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add offsets the point by a displacement.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVector offsets the point backwards along a displacement.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// ToVector reinterprets the point as a displacement from the origin.
// Scaling a location is only meaningful after this conversion.
func (p Point) ToVector() Vector {
	return Vector{p.X, p.Y, p.Z}
}

// Eq reports componentwise epsilon-tolerant equality.
func (p Point) Eq(q Point) bool {
	return scalar.Eq(p.X, q.X) && scalar.Eq(p.Y, q.Y) && scalar.Eq(p.Z, q.Z)
}

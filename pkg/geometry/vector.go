package geometry

import (
	"math"

	"github.com/lokyhark/ray-tracer-challenge/pkg/scalar"
)

// Vector is a free displacement in 3-D space: a direction with
// magnitude. Its implicit homogeneous coordinate is 0, so the
// translation column of a Matrix never affects it.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a vector from its scalar components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference of two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns the vector with every component multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

// Div returns the vector with every component divided by k.
func (v Vector) Div(k float64) Vector {
	return Vector{v.X / k, v.Y / k, v.Z / k}
}

// Length returns the Euclidean norm of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales the receiver in place to unit length.
//
// There is no zero-length guard: normalizing a zero vector silently
// produces NaN components. Callers must guarantee non-zero magnitude.
func (v *Vector) Normalize() {
	*v = v.Normalized()
}

// Normalized returns the unit vector in the same direction. Like
// Normalize, it performs no zero-length guard.
func (v Vector) Normalized() Vector {
	return v.Div(v.Length())
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors, right-handed:
// x×y = z, y×z = x, z×x = y.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Eq reports componentwise epsilon-tolerant equality.
func (v Vector) Eq(o Vector) bool {
	return scalar.Eq(v.X, o.X) && scalar.Eq(v.Y, o.Y) && scalar.Eq(v.Z, o.Z)
}

package geometry

import "math"

// Translation returns a matrix that moves points by (x, y, z) and
// leaves vectors unchanged.
func Translation(x, y, z float64) Matrix {
	return NewMatrix([16]float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	return NewMatrix([16]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// RotationX returns a rotation about the x axis by r radians.
func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([16]float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationY returns a rotation about the y axis by r radians.
func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([16]float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationZ returns a rotation about the z axis by r radians.
func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([16]float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing returns a matrix that slants each coordinate in proportion
// to the other two: xy is the amount x moves per unit y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([16]float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// Package geometry provides the value types of the render core: affine
// points, free vectors, and 4x4 transformation matrices. Points and
// vectors are distinct nominal types so the typing rules of affine space
// hold statically: subtracting two points yields a vector, offsetting a
// point by a vector yields a point, and the translation column of a
// matrix moves points but never vectors.
package geometry

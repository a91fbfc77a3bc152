// Package scalar defines the floating point semantics every numeric type
// in the library is built on: the comparison tolerance and the tolerant
// equality test that absorbs rounding drift from chained transforms.
package scalar

import "math"

// Epsilon is the absolute tolerance used for floating point comparison
// throughout the library.
const Epsilon = 1e-5

// Eq reports whether a and b differ by at most Epsilon.
//
// Tolerant equality is not transitive: a≈b and b≈c do not imply a≈c once
// the individual differences accumulate past the tolerance. Callers that
// chain many comparisons must not rely on transitivity.
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

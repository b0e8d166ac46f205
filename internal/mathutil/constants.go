package mathutil

import "math"

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-12

// YUp converts Z-up scene coordinates to the Y-up preview space: Rx(-90°)
var YUp = RotX(math.Pi / -2)

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

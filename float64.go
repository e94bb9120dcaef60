//go:build !conic32

package conic

import "math"

// Float is the scalar type of the package. It is float64 unless the package
// is built with the conic32 tag.
type Float = float64

// Pi is π in the precision of [Float].
const Pi Float = math.Pi

func sqrt(x Float) Float {
	return math.Sqrt(x)
}

func abs(x Float) Float {
	return math.Abs(x)
}

func hypot(x, y Float) Float {
	return math.Hypot(x, y)
}

func atan2(y, x Float) Float {
	return math.Atan2(y, x)
}

func sincos(x Float) (sin, cos Float) {
	return math.Sincos(x)
}

func isNaN(x Float) bool {
	return math.IsNaN(x)
}

func isInf(x Float) bool {
	return math.IsInf(x, 0)
}

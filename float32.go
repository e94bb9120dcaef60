//go:build conic32

package conic

import "github.com/chewxy/math32"

// Float is the scalar type of the package. It is float32 because the package
// was built with the conic32 tag.
type Float = float32

// Pi is π in the precision of [Float].
const Pi Float = math32.Pi

func sqrt(x Float) Float {
	return math32.Sqrt(x)
}

func abs(x Float) Float {
	return math32.Abs(x)
}

func hypot(x, y Float) Float {
	return math32.Hypot(x, y)
}

func atan2(y, x Float) Float {
	return math32.Atan2(y, x)
}

func sincos(x Float) (sin, cos Float) {
	return math32.Sincos(x)
}

func isNaN(x Float) bool {
	return math32.IsNaN(x)
}

func isInf(x Float) bool {
	return math32.IsInf(x, 0)
}

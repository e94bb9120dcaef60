//go:build conic32

package conic

// tolerance is the relative error accepted by tests.
const tolerance = 1e-2

// hugeCoefficient and tinyCoefficient square to values outside the range of
// [Float].
const (
	hugeCoefficient = 1e30
	tinyCoefficient = 1e-30
)

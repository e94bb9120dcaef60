package conic

// Vec2 is a displacement in the plane.
type Vec2 struct {
	X Float
	Y Float
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y Float) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() Float {
	return hypot(v.X, v.Y)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩, in
// (−π, π]. This is atan2(y, x).
func (v Vec2) Angle() Float {
	return atan2(v.Y, v.X)
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

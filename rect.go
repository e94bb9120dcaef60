package conic

// Rect is an axis-aligned rectangle with X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 Float
	X1, Y1 Float
}

// NewRectFromPoints returns the rectangle spanned by the opposite corners p0
// and p1, in any order.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

package conic

// Circle is a circle given by its center and radius.
//
// As a conic, a circle is an ellipse with a = c and b = 0. Use
// [Circle.Ellipse] to get that form.
type Circle struct {
	Center Point `json:"center" yaml:"center"`
	Radius Float `json:"radius" yaml:"radius"`
}

// Area returns the area of the circle.
func (c Circle) Area() Float {
	return Pi * c.Radius * c.Radius
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center) < c.Radius*c.Radius
}

// Ellipse returns the circle in implicit form.
func (c Circle) Ellipse() Ellipse {
	return NewEllipseFromCircle(c)
}

package conic

import "fmt"

// Latex formats the point as (x, y).
func (pt Point) Latex() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Latex formats the circle's equation, (x-cx)^2+(y-cy)^2 = r^2.
func (c Circle) Latex() string {
	return fmt.Sprintf("(x-%g)^2+(y-%g)^2 = %g^2", c.Center.X, c.Center.Y, c.Radius)
}

// Latex formats the conic's equation. The six numbers are the stored
// coefficients, with the halved ones doubled, in the order a, 2b, c, 2d, 2e,
// f, following the layout {a}x^2+{2b}y^2+{c}xy+{2d}x+{2e}y+{f}=0.
//
// Note that this layout attaches 2b to y² and c to xy. Use
// [Ellipse.Parameters] to get the coefficients by their terms.
func (e Ellipse) Latex() string {
	return fmt.Sprintf("%gx^2+%gy^2+%gxy+%gx+%gy+%g=0", e.a, e.b*2, e.c, e.d*2, e.e*2, e.f)
}

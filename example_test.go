package conic_test

import (
	"errors"
	"fmt"

	"honnef.co/go/conic"
)

func ExampleEllipse_Transform() {
	e := conic.NewEllipse(conic.Pt(1, 2), 3, 2, 30)
	center, major, minor, rotation, err := e.Transform()
	if err != nil {
		panic(err)
	}
	fmt.Printf("center (%.3f, %.3f)\n", center.X, center.Y)
	fmt.Printf("axes %.3f %.3f\n", major, minor)
	fmt.Printf("rotation %.1f°\n", rotation*180/conic.Pi)
	// Output:
	// center (1.000, 2.000)
	// axes 3.000 2.000
	// rotation 30.0°
}

func ExampleNewEllipseFromPoints() {
	e, err := conic.NewEllipseFromPoints(
		conic.Pt(7, 1),
		conic.Pt(2, 6),
		conic.Pt(-3, 1),
		conic.Pt(2, -4),
		conic.Pt(5, 5),
	)
	if err != nil {
		panic(err)
	}
	center, radius, _, _, err := e.Transform()
	if err != nil {
		panic(err)
	}
	fmt.Printf("center (%.3f, %.3f)\n", center.X, center.Y)
	fmt.Printf("radius %.3f\n", radius)
	// Output:
	// center (2.000, 1.000)
	// radius 5.000
}

func ExampleEllipse_Kind() {
	for _, e := range []conic.Ellipse{
		conic.NewEllipseFromCoefficients(1, 0, 1, 0, 0, -1),
		conic.NewEllipseFromCoefficients(1, 0, -1, 0, 0, -1),
		conic.NewEllipseFromCoefficients(1, 0, 0, 0, -1, 0),
	} {
		fmt.Println(e.Kind())
	}
	// Output:
	// ellipse
	// hyperbola
	// parabola
}

func ExampleEllipse_Center() {
	_, err := conic.NewEllipseFromCoefficients(1, 0, -1, 0, 0, 0).Center()
	fmt.Println(errors.Is(err, conic.ErrDegenerateConic))
	fmt.Println(err)
	// Output:
	// true
	// conic: degenerate conic
}

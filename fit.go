package conic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// fitRcond is the smallest ratio between the smallest and largest singular
// value of the fitting system for which the solution is considered unique.
const fitRcond = 1e-10

// NewEllipseFromPoints returns the conic passing through the five points.
//
// The conic is the solution of the homogeneous linear system
//
//	A x² + B xy + C y² + D x + E y + F = 0
//
// with one equation per point. The system is solved in float64 via a singular
// value decomposition, after moving the points' centroid to the origin and
// scaling them to an average distance of √2, which keeps the system well
// conditioned for points far away from the origin.
//
// The result need not be an ellipse; five points on a hyperbola produce that
// hyperbola, and three collinear points produce a pair of lines. Use
// [Ellipse.Kind] to check. If the points don't determine a single conic, for
// example because two of them are identical or four of them are collinear,
// NewEllipseFromPoints returns [ErrUnderdetermined]. Points with NaN or
// infinite coordinates result in [ErrUnsupported].
func NewEllipseFromPoints(p1, p2, p3, p4, p5 Point) (Ellipse, error) {
	pts := [5]Point{p1, p2, p3, p4, p5}
	for _, p := range pts {
		if p.IsNaN() || p.IsInf() {
			return Ellipse{}, ErrUnsupported
		}
	}

	var mx, my float64
	for _, p := range pts {
		mx += float64(p.X)
		my += float64(p.Y)
	}
	mx /= 5
	my /= 5
	var dist float64
	for _, p := range pts {
		dist += math.Hypot(float64(p.X)-mx, float64(p.Y)-my)
	}
	dist /= 5
	if dist == 0 {
		return Ellipse{}, ErrUnderdetermined
	}
	s := math.Sqrt2 / dist

	data := make([]float64, 0, 5*6)
	for _, p := range pts {
		u := s * (float64(p.X) - mx)
		v := s * (float64(p.Y) - my)
		data = append(data, u*u, u*v, v*v, u, v, 1)
	}

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(5, 6, data), mat.SVDFull) {
		return Ellipse{}, ErrUnsupported
	}
	values := svd.Values(nil)
	if values[0] == 0 || values[4]/values[0] < fitRcond {
		return Ellipse{}, ErrUnderdetermined
	}
	var vt mat.Dense
	svd.VTo(&vt)
	// With 5 equations and 6 unknowns, the last right singular vector spans
	// the null space.
	var k [6]float64
	for i := range k {
		k[i] = vt.At(i, 5)
	}

	// Undo the normalization by substituting u = s(x-mx) and v = s(y-my).
	s2 := s * s
	A := k[0] * s2
	B := k[1] * s2
	C := k[2] * s2
	D := -2*mx*A - my*B + k[3]*s
	E := -mx*B - 2*my*C + k[4]*s
	F := A*mx*mx + B*mx*my + C*my*my - k[3]*s*mx - k[4]*s*my + k[5]
	if A+C < 0 {
		A, B, C, D, E, F = -A, -B, -C, -D, -E, -F
	}
	return NewEllipseFromCoefficients(Float(A), Float(B), Float(C), Float(D), Float(E), Float(F)), nil
}

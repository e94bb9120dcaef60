package conic

// Ellipse is a conic section in implicit form. Despite its name it can hold
// any conic; operations that only make sense for real ellipses return
// [ErrDegenerateConic] otherwise.
//
// The coefficients describe the equation
//
//	a x² + 2b xy + c y² + 2d x + 2e y + f = 0
//
// That is, the stored b, d, and e are half of the coefficients of xy, x, and
// y in the usual form A x² + B xy + C y² + D x + E y + F = 0. With this
// convention the conic's matrix is
//
//	| a b d |
//	| b c e |
//	| d e f |
//
// and all invariants are read straight from its entries. Every constructor
// stores the halved values, and [Ellipse.Parameters] undoes the halving.
//
// The zero value is the degenerate conic 0 = 0.
type Ellipse struct {
	a, b, c, d, e, f Float
}

// NewEllipseFromCoefficients returns the conic
//
//	A x² + B xy + C y² + D x + E y + F = 0
//
// The coefficients are not validated. Any six numbers make a conic, and
// whether it is a real ellipse can be checked with [Ellipse.Kind].
func NewEllipseFromCoefficients(A, B, C, D, E, F Float) Ellipse {
	return Ellipse{a: A, b: B / 2, c: C, d: D / 2, e: E / 2, f: F}
}

// NewEllipse returns the ellipse with semi-axes major and minor, rotated by
// rotation degrees and centered on center. Before rotation, the major
// semi-axis lies on the x axis.
//
// The rotation follows [Rotate]: a positive angle rotates the positive x
// direction into positive y. Note that [Ellipse.Rotation] reports radians.
//
// The mixed term is b = (minor² − major²)·sin·cos, the negation of the
// usual (major² − minor²)·sin·cos, so that the ellipse turns the same way as
// [Rotate].
//
// The result is scaled so that f = a cx² + 2b cx cy + c cy² − major²·minor².
// For an axis-aligned ellipse at the origin this is
// minor²·x² + major²·y² − major²·minor² = 0.
func NewEllipse(center Point, major, minor, rotation Float) Ellipse {
	sin, cos := sincos(rotation * Pi / 180)
	M2 := major * major
	m2 := minor * minor

	a := M2*sin*sin + m2*cos*cos
	b := (m2 - M2) * sin * cos
	c := M2*cos*cos + m2*sin*sin
	cx, cy := center.Splat()
	return Ellipse{
		a: a,
		b: b,
		c: c,
		d: -(a*cx + b*cy),
		e: -(b*cx + c*cy),
		f: a*cx*cx + 2*b*cx*cy + c*cy*cy - M2*m2,
	}
}

// NewEllipseFromAffine returns the image of the unit circle under aff.
//
// The result contains NaNs if aff is singular.
func NewEllipseFromAffine(aff Affine) Ellipse {
	// p lies on the ellipse iff aff⁻¹(p) lies on the unit circle.
	inv := aff.Invert()
	return Ellipse{
		a: inv.N0*inv.N0 + inv.N1*inv.N1,
		b: inv.N0*inv.N2 + inv.N1*inv.N3,
		c: inv.N2*inv.N2 + inv.N3*inv.N3,
		d: inv.N0*inv.N4 + inv.N1*inv.N5,
		e: inv.N2*inv.N4 + inv.N3*inv.N5,
		f: inv.N4*inv.N4 + inv.N5*inv.N5 - 1,
	}
}

// NewEllipseFromCircle returns the circle as a conic.
func NewEllipseFromCircle(c Circle) Ellipse {
	return NewEllipse(c.Center, c.Radius, c.Radius, 0)
}

// Parameters returns the coefficients (A, B, C, D, E, F) of
//
//	A x² + B xy + C y² + D x + E y + F = 0
//
// It is the inverse of [NewEllipseFromCoefficients].
func (e Ellipse) Parameters() (A, B, C, D, E, F Float) {
	return e.a, e.b * 2, e.c, e.d * 2, e.e * 2, e.f
}

// ParameterMatrix returns the symmetric matrix Q of the conic, such that
// the conic is the set of points p with [p 1]ᵀ Q [p 1] = 0.
//
// This is not the matrix returned by [Ellipse.TransformMatrix].
func (e Ellipse) ParameterMatrix() [3][3]Float {
	return [3][3]Float{
		{e.a, e.b, e.d},
		{e.b, e.c, e.e},
		{e.d, e.e, e.f},
	}
}

// Eval evaluates the left-hand side of the conic's equation at pt. It is
// zero for points on the curve.
func (e Ellipse) Eval(pt Point) Float {
	x, y := pt.Splat()
	return e.a*x*x + 2*e.b*x*y + e.c*y*y + 2*e.d*x + 2*e.e*y + e.f
}

// MajorDelta returns Δ, the determinant of [Ellipse.ParameterMatrix]:
//
//	Δ = acf + 2bde − ae² − cd² − fb²
//
// Δ is zero for degenerate conics.
func (e Ellipse) MajorDelta() Float {
	a, b, c, d, ee, f := e.a, e.b, e.c, e.d, e.e, e.f
	return a*c*f + 2*b*d*ee - a*ee*ee - c*d*d - f*b*b
}

// MinorDelta returns δ = ac − b², the determinant of the quadratic part of
// the conic. It is positive for ellipses, negative for hyperbolas and zero
// for parabolas.
func (e Ellipse) MinorDelta() Float {
	return e.a*e.c - e.b*e.b
}

// normalized returns the same conic, scaled by -1 if necessary so that the
// trace of its quadratic part is non-negative.
func (e Ellipse) normalized() Ellipse {
	if e.a+e.c < 0 {
		return Ellipse{-e.a, -e.b, -e.c, -e.d, -e.e, -e.f}
	}
	return e
}

// scaled returns the same conic, divided by its largest coefficient in
// absolute value, so that δ and Δ stay representable.
func (e Ellipse) scaled() Ellipse {
	m := max(abs(e.a), abs(e.b), abs(e.c), abs(e.d), abs(e.e), abs(e.f))
	if m == 0 || isInf(m) || isNaN(m) {
		return e
	}
	return Ellipse{e.a / m, e.b / m, e.c / m, e.d / m, e.e / m, e.f / m}
}

// Kind classifies the conic. Comparisons against zero are exact.
func (e Ellipse) Kind() Kind {
	delta := e.MinorDelta()
	Delta := e.MajorDelta()
	switch {
	case delta > 0:
		switch {
		case Delta == 0:
			return KindPoint
		case Delta*(e.a+e.c) < 0:
			return KindEllipse
		default:
			return KindImaginaryEllipse
		}
	case delta < 0:
		if Delta == 0 {
			return KindLinePair
		}
		return KindHyperbola
	case delta == 0:
		if Delta == 0 {
			return KindDegenerateParabola
		}
		return KindParabola
	default:
		return KindInvalid
	}
}

// Center returns the center of the ellipse.
//
// It returns [ErrDegenerateConic] unless δ > 0.
func (e Ellipse) Center() (Point, error) {
	e = e.scaled()
	delta := e.MinorDelta()
	if !(delta > 0) {
		return Point{}, ErrDegenerateConic
	}
	return Point{
		X: (e.b*e.e - e.c*e.d) / delta,
		Y: (e.b*e.d - e.a*e.e) / delta,
	}, nil
}

// Rotation returns the angle in radians between the positive x axis and the
// ellipse's major axis, in (−π/2, π/2].
//
// A circle has no preferred axis, and Rotation returns π/4 for it. When a == c
// and b > 0, the major axis lies on y = −x and Rotation returns −π/4 rather
// than π/4.
//
// For conics other than ellipses, the result is the direction of one of the
// conic's axes of symmetry.
func (e Ellipse) Rotation() Float {
	n := e.normalized()
	if n.a == n.c && n.b == 0 {
		return Pi / 4
	}
	// The major axis belongs to the smaller eigenvalue of the quadratic
	// part, which is the direction of 2θ = atan2(-2b, c-a).
	th := 0.5 * Vec(n.c-n.a, -2*n.b).Angle()
	if th <= -Pi/2 {
		th += Pi
	}
	return th
}

// semiAxes computes the semi-axes from the eigenvalues λ of the quadratic
// part: each semi-axis is sqrt(−Δ / (δ·λ)).
func (e Ellipse) semiAxes() (major, minor Float, err error) {
	e = e.scaled()
	delta := e.MinorDelta()
	if !(delta > 0) {
		return 0, 0, ErrDegenerateConic
	}
	n := e.normalized()
	mid := (n.a + n.c) / 2
	r := hypot((n.a-n.c)/2, n.b)
	big := mid + r
	// λ₁λ₂ = δ, which avoids cancellation in mid - r.
	small := delta / big

	k := -n.MajorDelta() / delta
	major2 := k / small
	minor2 := k / big
	if !(minor2 > 0) || isInf(major2) || isNaN(major2) {
		return 0, 0, ErrDegenerateConic
	}
	return sqrt(major2), sqrt(minor2), nil
}

// MajorAxis returns the length of the ellipse's major semi-axis.
//
// It returns [ErrDegenerateConic] if the conic isn't a real ellipse.
func (e Ellipse) MajorAxis() (Float, error) {
	major, _, err := e.semiAxes()
	return major, err
}

// MinorAxis returns the length of the ellipse's minor semi-axis.
//
// It returns [ErrDegenerateConic] if the conic isn't a real ellipse.
func (e Ellipse) MinorAxis() (Float, error) {
	_, minor, err := e.semiAxes()
	return minor, err
}

// Transform returns the parametric description of the ellipse: its center,
// its semi-axes and the rotation of the major axis in radians.
//
// Transform is the inverse of [NewEllipse], except that the axes come back
// sorted and the rotation is only defined modulo π.
func (e Ellipse) Transform() (center Point, major, minor, rotation Float, err error) {
	center, err = e.Center()
	if err != nil {
		return Point{}, 0, 0, 0, err
	}
	major, minor, err = e.semiAxes()
	if err != nil {
		return Point{}, 0, 0, 0, err
	}
	return center, major, minor, e.Rotation(), nil
}

// Affine returns the affine transformation that maps the unit circle onto
// the ellipse, namely
//
//	Translate(center) * Rotate(rotation) * Scale(major, minor)
func (e Ellipse) Affine() (Affine, error) {
	center, major, minor, rotation, err := e.Transform()
	if err != nil {
		return Affine{}, err
	}
	return Translate(Vec2(center)).
		Mul(Rotate(rotation)).
		Mul(Scale(major, minor)), nil
}

// PointAt returns the point of the ellipse at parameter th, the image of
// (cos th, sin th) under [Ellipse.Affine]. th = 0 is an end of the major axis.
func (e Ellipse) PointAt(th Float) (Point, error) {
	aff, err := e.Affine()
	if err != nil {
		return Point{}, err
	}
	sin, cos := sincos(th)
	return Pt(cos, sin).Transform(aff), nil
}

// TransformMatrix returns [Ellipse.Affine] as a homogeneous 3×3 matrix.
func (e Ellipse) TransformMatrix() ([3][3]Float, error) {
	aff, err := e.Affine()
	if err != nil {
		return [3][3]Float{}, err
	}
	return aff.Matrix(), nil
}

// Area returns the area enclosed by the ellipse.
func (e Ellipse) Area() (Float, error) {
	major, minor, err := e.semiAxes()
	if err != nil {
		return 0, err
	}
	return Pi * major * minor, nil
}

// Contains reports whether pt lies strictly inside the ellipse. It is always
// false for conics that aren't real ellipses.
func (e Ellipse) Contains(pt Point) bool {
	if e.Kind() != KindEllipse {
		return false
	}
	return e.normalized().Eval(pt) < 0
}

// BoundingBox returns the tight axis-aligned bounding box of the ellipse.
func (e Ellipse) BoundingBox() (Rect, error) {
	// See https://www.iquilezles.org/www/articles/ellipses/ellipses.htm. The
	// two radius vectors are the images of (1, 0) and (0, 1) under the
	// ellipse's affine map.
	aff, err := e.Affine()
	if err != nil {
		return Rect{}, err
	}
	r := Vec(hypot(aff.N0, aff.N2), hypot(aff.N1, aff.N3))
	center := Point(aff.Translation())
	return NewRectFromPoints(center.Translate(r.Negate()), center.Translate(r)), nil
}

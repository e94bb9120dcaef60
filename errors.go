package conic

import "errors"

var (
	// ErrDegenerateConic is returned by operations that need a real,
	// non-degenerate ellipse when the coefficients describe a parabola, a
	// hyperbola, an imaginary ellipse, a single point or a pair of lines.
	ErrDegenerateConic = errors.New("conic: degenerate conic")

	// ErrUnderdetermined is returned by [NewEllipseFromPoints] when the
	// points don't determine a unique conic, for example because two of them
	// coincide.
	ErrUnderdetermined = errors.New("conic: points do not determine a unique conic")

	// ErrUnsupported is returned when the linear solver behind
	// [NewEllipseFromPoints] cannot factorize the system.
	ErrUnsupported = errors.New("conic: unsupported")
)

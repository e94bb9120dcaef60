package conic

// Kind is the type of a conic section, as determined by the signs of its
// discriminants.
type Kind uint8

const (
	// KindInvalid is reported for conics with NaN coefficients.
	KindInvalid Kind = iota
	// KindEllipse is a real ellipse, including circles.
	KindEllipse
	// KindImaginaryEllipse has an elliptic equation but no real points,
	// such as x² + y² + 1 = 0.
	KindImaginaryEllipse
	// KindPoint is an ellipse that collapsed to a single point.
	KindPoint
	KindHyperbola
	// KindLinePair is a pair of intersecting lines.
	KindLinePair
	KindParabola
	// KindDegenerateParabola is a pair of parallel lines, a double line,
	// or the empty set.
	KindDegenerateParabola
)

func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindImaginaryEllipse:
		return "imaginary ellipse"
	case KindPoint:
		return "point"
	case KindHyperbola:
		return "hyperbola"
	case KindLinePair:
		return "line pair"
	case KindParabola:
		return "parabola"
	case KindDegenerateParabola:
		return "degenerate parabola"
	default:
		return "invalid"
	}
}

// Valid reports whether k is a real, non-degenerate ellipse.
func (k Kind) Valid() bool {
	return k == KindEllipse
}

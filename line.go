package conic

// Line represents a line segment from Start to End.
type Line struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// NewLine returns the line from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the length of the line.
func (l Line) Length() Float {
	return l.End.Sub(l.Start).Hypot()
}

// Midpoint returns the point halfway between the line's start and end.
func (l Line) Midpoint() Point {
	return l.Start.Midpoint(l.End)
}

package conic

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The serialized forms of all types list their fields in declaration order:
// {a, b, c, d, e, f} for Ellipse, {center, radius} for Circle, {start, end}
// for Line and {x, y} for Point. Ellipse serializes its stored coefficients,
// so b, d, and e are the halved values.
//
// The binary encoding is the little-endian concatenation of all fields, each
// in the width of [Float].

type ellipseFields struct {
	A Float `json:"a" yaml:"a"`
	B Float `json:"b" yaml:"b"`
	C Float `json:"c" yaml:"c"`
	D Float `json:"d" yaml:"d"`
	E Float `json:"e" yaml:"e"`
	F Float `json:"f" yaml:"f"`
}

func (e Ellipse) fields() ellipseFields {
	return ellipseFields{e.a, e.b, e.c, e.d, e.e, e.f}
}

func (f ellipseFields) ellipse() Ellipse {
	return Ellipse{f.A, f.B, f.C, f.D, f.E, f.F}
}

func (e Ellipse) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields())
}

func (e *Ellipse) UnmarshalJSON(data []byte) error {
	var f ellipseFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*e = f.ellipse()
	return nil
}

func (e Ellipse) MarshalYAML() (any, error) {
	return e.fields(), nil
}

func (e *Ellipse) UnmarshalYAML(value *yaml.Node) error {
	var f ellipseFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	*e = f.ellipse()
	return nil
}

func (e Ellipse) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, e.fields())
}

func (e *Ellipse) UnmarshalBinary(data []byte) error {
	var f ellipseFields
	if err := decodeBinary(data, &f); err != nil {
		return err
	}
	*e = f.ellipse()
	return nil
}

func (pt Point) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, pt)
}

func (pt *Point) UnmarshalBinary(data []byte) error {
	return decodeBinary(data, pt)
}

func (c Circle) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, c)
}

func (c *Circle) UnmarshalBinary(data []byte) error {
	return decodeBinary(data, c)
}

func (l Line) MarshalBinary() ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, l)
}

func (l *Line) UnmarshalBinary(data []byte) error {
	return decodeBinary(data, l)
}

func decodeBinary(data []byte, v any) error {
	if size := binary.Size(v); len(data) != size {
		return fmt.Errorf("conic: got %d bytes, want %d", len(data), size)
	}
	_, err := binary.Decode(data, binary.LittleEndian, v)
	return err
}

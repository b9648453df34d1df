// Package symbol models reusable schematic symbol definitions: a body
// outline plus an ordered pin list. Definitions come from a symbol
// library and are immutable once constructed; many placements share
// one definition (two resistors reuse one shape).
package symbol

import (
	"fmt"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
)

// Orientation is the direction a pin points away from the symbol body,
// expressed in unrotated symbol-local coordinates.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

// ParseOrientation converts a library keyword to an Orientation
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown pin orientation %q", s)
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Vector returns the unit direction of the orientation.
// Y increases downward, so Up is (0, -1).
func (o Orientation) Vector() geometry.Position {
	switch o {
	case Up:
		return geometry.Position{X: 0, Y: -1}
	case Down:
		return geometry.Position{X: 0, Y: 1}
	case Left:
		return geometry.Position{X: -1, Y: 0}
	case Right:
		return geometry.Position{X: 1, Y: 0}
	}
	return geometry.Position{}
}

// Rotated returns the orientation after rotating the symbol by a
// cardinal angle. Consistent with geometry.RotateCardinal: 90° maps
// Up to Right in the Y-down coordinate system.
func (o Orientation) Rotated(a geometry.Angle) Orientation {
	steps := int(geometry.Normalize(a)) / 90
	out := o
	for i := 0; i < steps; i++ {
		switch out {
		case Up:
			out = Right
		case Right:
			out = Down
		case Down:
			out = Left
		case Left:
			out = Up
		}
	}
	return out
}

// Kind is the closed set of component categories. The geometry code
// treats all kinds uniformly; the category is metadata for callers
// (diagnostics, designator prefixes, styling).
type Kind int

const (
	KindGeneric Kind = iota
	KindPassive
	KindConnector
	KindIC
)

// ParseKind converts a library keyword to a Kind.
// Unknown keywords map to KindGeneric.
func ParseKind(s string) Kind {
	switch s {
	case "passive":
		return KindPassive
	case "connector":
		return KindConnector
	case "ic", "integrated-circuit":
		return KindIC
	}
	return KindGeneric
}

func (k Kind) String() string {
	switch k {
	case KindPassive:
		return "passive"
	case KindConnector:
		return "connector"
	case KindIC:
		return "integrated-circuit"
	}
	return "generic"
}

// Pin is a single connection point of a symbol. Pins are owned by
// exactly one Definition and are immutable after construction.
type Pin struct {
	Name        string            // Pin name shown as a label (e.g. "VCC")
	Orientation Orientation       // Direction the pin points away from the body
	Offset      geometry.Position // Attachment point relative to symbol origin
	Length      float64           // Pin length in mm, must be > 0
}

// Endpoint returns the free end of the pin in unrotated symbol-local
// coordinates.
func (p Pin) Endpoint() geometry.Position {
	return p.Offset.Add(p.Orientation.Vector().Scale(p.Length))
}

// Shape is a symbol body outline in symbol-local coordinates: a
// rectangle or polygon. Shapes are immutable and shared read-only
// across placements.
type Shape struct {
	points []geometry.Position
}

// RectShape builds a rectangular outline from two opposite corners
func RectShape(min, max geometry.Position) Shape {
	return Shape{points: []geometry.Position{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}}
}

// PolygonShape builds an outline from an ordered vertex list.
// The slice is copied so the shape stays immutable.
func PolygonShape(points []geometry.Position) Shape {
	pts := make([]geometry.Position, len(points))
	copy(pts, points)
	return Shape{points: pts}
}

// Points returns the outline vertices. Callers must not modify the
// returned slice.
func (s Shape) Points() []geometry.Position {
	return s.points
}

// IsEmpty reports whether the shape has no outline
func (s Shape) IsEmpty() bool {
	return len(s.points) == 0
}

// BBox returns the axis-aligned box of the outline in symbol-local
// coordinates.
func (s Shape) BBox() geometry.BoundingBox {
	bb := geometry.NewBoundingBox()
	for _, p := range s.points {
		bb.Expand(p)
	}
	return bb
}

// Definition is a reusable symbol: body shape plus ordered pins.
type Definition struct {
	Name  string
	Kind  Kind
	Shape Shape
	Pins  []Pin
}

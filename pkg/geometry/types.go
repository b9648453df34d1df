// Package geometry provides the 2D primitives used by the layout engine:
// positions, cardinal angles, and axis-aligned bounding boxes.
// All coordinates are in millimeters with Y increasing downward,
// matching the schematic coordinate convention of downstream emitters.
package geometry

// Position represents a 2D coordinate in canvas or symbol-local space
type Position struct {
	X float64 `json:"x"` // X coordinate in mm
	Y float64 `json:"y"` // Y coordinate in mm
}

// Add returns the sum of two positions
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two positions
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the position scaled by a factor
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}

// Angle represents rotation in degrees.
// The layout engine only supports the four cardinal rotations.
type Angle float64

// Size represents dimensions
type Size struct {
	Width  float64 // Width in mm
	Height float64 // Height in mm
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position `json:"min"` // Minimum (top-left) corner
	Max Position `json:"max"` // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},   // Start with very large values
		Max: Position{X: -1e9, Y: -1e9}, // Start with very small values
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(pos Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// ContainsBox checks if another bounding box lies entirely within this one
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return bb.Contains(other.Min) && bb.Contains(other.Max)
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Translated returns the bounding box shifted by an offset.
// Translating an empty box returns it unchanged so that sentinel
// corners stay recognizable.
func (bb BoundingBox) Translated(d Position) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	return BoundingBox{
		Min: bb.Min.Add(d),
		Max: bb.Max.Add(d),
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

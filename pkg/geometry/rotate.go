package geometry

import "math"

// Normalize reduces an angle to the [0, 360) range.
func Normalize(a Angle) Angle {
	deg := math.Mod(float64(a), 360)
	if deg < 0 {
		deg += 360
	}
	return Angle(deg)
}

// IsCardinal reports whether an angle is one of the four supported
// rotations (0, 90, 180, 270 degrees).
func IsCardinal(a Angle) bool {
	switch Normalize(a) {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// RotateCardinal rotates a position about the origin by a cardinal angle.
// The four cardinal cases are computed by coordinate swap/negation rather
// than trigonometry, so the results are exact. Non-cardinal angles return
// the position unchanged; callers validate the angle first.
func RotateCardinal(p Position, a Angle) Position {
	switch Normalize(a) {
	case 90:
		return Position{X: -p.Y, Y: p.X}
	case 180:
		return Position{X: -p.X, Y: -p.Y}
	case 270:
		return Position{X: p.Y, Y: -p.X}
	}
	return p
}

// RotateBox rotates a bounding box about the origin by a cardinal angle
// and returns the axis-aligned box of the rotated corners.
func RotateBox(bb BoundingBox, a Angle) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	out := NewBoundingBox()
	out.Expand(RotateCardinal(bb.Min, a))
	out.Expand(RotateCardinal(bb.Max, a))
	out.Expand(RotateCardinal(Position{X: bb.Min.X, Y: bb.Max.Y}, a))
	out.Expand(RotateCardinal(Position{X: bb.Max.X, Y: bb.Min.Y}, a))
	return out
}

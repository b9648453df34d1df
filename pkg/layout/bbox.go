package layout

import (
	"fmt"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/symbol"
)

// Region tags which sub-region of a placed symbol a bounding box covers
type Region string

const (
	RegionBody       Region = "body"
	RegionPinLabels  Region = "pin-labels"
	RegionDesignator Region = "designator"
)

// SymbolBox is the composite bounding region of a symbol at a given
// rotation, in symbol-local coordinates (origin at the symbol anchor).
// BodyPins is the union of Body and PinLabels and is the region the
// placement engine collision-checks. Designator is a candidate
// rectangle sized for the designator text but not yet positioned; the
// designator positioner resolves it after placement, so it is kept
// separate from the union.
type SymbolBox struct {
	Body       geometry.BoundingBox
	PinLabels  geometry.BoundingBox
	BodyPins   geometry.BoundingBox
	Designator geometry.BoundingBox
}

// ComputeBBox calculates the bounding regions of a symbol definition
// at a cardinal rotation. The returned BodyPins box is the minimal
// axis-aligned rectangle containing the rotated body outline, every
// pin endpoint, and every pin-label rectangle.
//
// The computation is pure: calling it twice with unchanged inputs
// yields an identical box.
func ComputeBBox(def *symbol.Definition, rotation geometry.Angle, designator string, cfg Config) (SymbolBox, error) {
	var box SymbolBox

	if !geometry.IsCardinal(rotation) {
		return box, &GeometryError{Symbol: def.Name, Reason: fmt.Sprintf("unsupported rotation %v, only 0/90/180/270 allowed", rotation)}
	}
	if def.Shape.IsEmpty() {
		return box, &GeometryError{Symbol: def.Name, Reason: "empty body outline"}
	}

	// Body outline rotated about the symbol origin.
	body := geometry.NewBoundingBox()
	for _, p := range def.Shape.Points() {
		body.Expand(geometry.RotateCardinal(p, rotation))
	}
	box.Body = body

	// Per-pin label rectangles. A symbol with zero pins keeps the body
	// rectangle unchanged.
	labels := geometry.NewBoundingBox()
	for _, pin := range def.Pins {
		rect, err := pinLabelRect(def.Name, pin, rotation, cfg)
		if err != nil {
			return SymbolBox{}, err
		}
		labels.ExpandBox(rect)
	}
	box.PinLabels = labels

	union := body
	union.ExpandBox(labels)
	box.BodyPins = union

	// Candidate rectangle for the designator text, origin anchored.
	// Positioned later by the designator positioner, so it is not part
	// of the union.
	if designator != "" {
		w := LabelWidth(designator, cfg.TextHeight, cfg.WidthRatio)
		box.Designator = geometry.BoundingBox{
			Min: geometry.Position{X: 0, Y: 0},
			Max: geometry.Position{X: w, Y: cfg.TextHeight},
		}
	} else {
		box.Designator = geometry.NewBoundingBox()
	}

	return box, nil
}

// pinLabelRect computes the rectangle covering a pin and its name
// label at the given symbol rotation. The rectangle is anchored at the
// pin's attachment point and extends outward along the rotated pin
// direction by the pin length plus the approximate label width, with
// the text height across the pin axis. Overlapping labels of adjacent
// pins on the same symbol are tolerated.
func pinLabelRect(symName string, pin symbol.Pin, rotation geometry.Angle, cfg Config) (geometry.BoundingBox, error) {
	if pin.Length <= 0 {
		return geometry.BoundingBox{}, &GeometryError{Symbol: symName, Reason: fmt.Sprintf("pin %q has degenerate length %v", pin.Name, pin.Length)}
	}

	dir := pin.Orientation.Rotated(rotation).Vector()
	start := geometry.RotateCardinal(pin.Offset, rotation)
	extent := pin.Length + LabelWidth(pin.Name, cfg.TextHeight, cfg.WidthRatio)
	tip := start.Add(dir.Scale(extent))

	rect := geometry.NewBoundingBox()
	rect.Expand(start)
	rect.Expand(tip)

	// Thicken across the pin axis so the label glyphs fit.
	half := cfg.TextHeight / 2
	if dir.X != 0 {
		rect.Min.Y -= half
		rect.Max.Y += half
	} else {
		rect.Min.X -= half
		rect.Max.X += half
	}
	return rect, nil
}

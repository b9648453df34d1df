package layout

import "github.com/OpenTraceLab/schlayout/pkg/geometry"

// Result is the placement output consumed by an external schematic
// emitter. Symbols appear in resolution (insertion) order. The JSON
// encoding is the on-the-wire contract of the place command.
type Result struct {
	Symbols  []PlacedResult  `json:"symbols"`
	Failures []FailureReport `json:"failures,omitempty"`
	Overlay  []OverlayRect   `json:"overlay,omitempty"`
}

// PlacedResult is the emitter-facing record of one resolved symbol
type PlacedResult struct {
	Designator         string               `json:"designator"`
	Value              string               `json:"value,omitempty"`
	Lib                string               `json:"lib"`
	Kind               string               `json:"kind"`
	Position           geometry.Position    `json:"position"`
	Rotation           float64              `json:"rotation"`
	BBox               geometry.BoundingBox `json:"bbox"`
	DesignatorPos      geometry.Position    `json:"designator_pos"`
	DesignatorFallback bool                 `json:"designator_fallback,omitempty"`
}

// FailureReport carries the diagnostic context of a failed placement
type FailureReport struct {
	Designator   string            `json:"designator"`
	LastPosition geometry.Position `json:"last_position"`
	Conflicts    []string          `json:"conflicts,omitempty"`
	Reason       string            `json:"reason"`
}

// OverlayRect is one drawable debug rectangle: a tagged sub-region box
// of a resolved symbol in canvas coordinates. Emitted only when the
// overlay is enabled; presence of the overlay never alters placement.
type OverlayRect struct {
	Designator string               `json:"designator"`
	Region     Region               `json:"region"`
	Box        geometry.BoundingBox `json:"box"`
}

func (e *Engine) buildResult(canvas *Canvas, failures []Failure) *Result {
	res := &Result{}

	for _, ps := range canvas.Symbols() {
		res.Symbols = append(res.Symbols, PlacedResult{
			Designator:         ps.Designator,
			Value:              ps.Value,
			Lib:                ps.Def.Name,
			Kind:               ps.Def.Kind.String(),
			Position:           ps.Position,
			Rotation:           float64(ps.Rotation),
			BBox:               ps.WorldBox,
			DesignatorPos:      ps.DesignatorPos,
			DesignatorFallback: ps.DesignatorFallback,
		})

		if e.cfg.Overlay {
			res.Overlay = append(res.Overlay,
				OverlayRect{Designator: ps.Designator, Region: RegionBody, Box: ps.Box.Body.Translated(ps.Position)},
				OverlayRect{Designator: ps.Designator, Region: RegionPinLabels, Box: ps.Box.PinLabels.Translated(ps.Position)},
			)
			if !ps.DesignatorBox.IsEmpty() {
				res.Overlay = append(res.Overlay,
					OverlayRect{Designator: ps.Designator, Region: RegionDesignator, Box: ps.DesignatorBox})
			}
		}
	}

	for _, f := range failures {
		rep := FailureReport{
			Designator:   f.Designator,
			LastPosition: f.LastPosition,
			Conflicts:    f.Conflicts,
		}
		if f.Err != nil {
			rep.Reason = f.Err.Error()
		}
		res.Failures = append(res.Failures, rep)
	}

	return res
}

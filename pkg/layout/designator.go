package layout

import "github.com/OpenTraceLab/schlayout/pkg/geometry"

// placeDesignator resolves the designator label position of a resolved
// symbol. Candidates are tried in fixed priority order: above, right,
// below, left of the body+pins box, each separated by the configured
// clearance. The first candidate that conflicts with no resolved
// symbol and no already-placed designator wins. If none fits, the
// first candidate is used with a logged warning: designator overlap is
// cosmetic, not structural, so it never fails the layout.
func (e *Engine) placeDesignator(ps *PlacedSymbol, canvas *Canvas) {
	if ps.Box.Designator.IsEmpty() {
		return
	}

	w := ps.Box.Designator.Width()
	h := ps.Box.Designator.Height()
	bb := ps.WorldBox
	cl := e.cfg.DesignatorClearance
	cx := bb.Center().X
	cy := bb.Center().Y

	candidates := []geometry.BoundingBox{
		{ // above
			Min: geometry.Position{X: cx - w/2, Y: bb.Min.Y - cl - h},
			Max: geometry.Position{X: cx + w/2, Y: bb.Min.Y - cl},
		},
		{ // right
			Min: geometry.Position{X: bb.Max.X + cl, Y: cy - h/2},
			Max: geometry.Position{X: bb.Max.X + cl + w, Y: cy + h/2},
		},
		{ // below
			Min: geometry.Position{X: cx - w/2, Y: bb.Max.Y + cl},
			Max: geometry.Position{X: cx + w/2, Y: bb.Max.Y + cl + h},
		},
		{ // left
			Min: geometry.Position{X: bb.Min.X - cl - w, Y: cy - h/2},
			Max: geometry.Position{X: bb.Min.X - cl, Y: cy + h/2},
		},
	}

	chosen := candidates[0]
	fallback := true
	for _, cand := range candidates {
		if e.designatorFits(cand, ps, canvas) {
			chosen = cand
			fallback = false
			break
		}
	}
	if fallback {
		e.warnf("designator %s overlaps neighbors in every candidate position, keeping it above", ps.Designator)
	}

	ps.DesignatorBox = chosen
	ps.DesignatorPos = chosen.Min
	ps.DesignatorFallback = fallback
}

func (e *Engine) designatorFits(cand geometry.BoundingBox, self *PlacedSymbol, canvas *Canvas) bool {
	for _, other := range canvas.Symbols() {
		if Overlaps(cand, other.WorldBox, e.cfg.Tolerance) {
			return false
		}
		if other != self && Overlaps(cand, other.DesignatorBox, e.cfg.Tolerance) {
			return false
		}
	}
	return true
}

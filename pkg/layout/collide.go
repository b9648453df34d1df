package layout

import (
	"math"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
)

// Overlaps reports whether two axis-aligned boxes overlap beyond the
// given tolerance. Two boxes overlap iff their projections on both
// axes intersect by more than tolerance; with the default tolerance of
// 0, edges may touch but not cross. Pure function, no state.
func Overlaps(a, b geometry.BoundingBox, tolerance float64) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return overlap1D(a.Min.X, a.Max.X, b.Min.X, b.Max.X, tolerance) &&
		overlap1D(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y, tolerance)
}

func overlap1D(aMin, aMax, bMin, bMax, tolerance float64) bool {
	return math.Min(aMax, bMax)-math.Max(aMin, bMin) > tolerance
}

// ConflictPair identifies two placed symbols whose body+pins regions
// overlap. A is always the earlier symbol in insertion order.
type ConflictPair struct {
	A string
	B string
}

// FindConflicts reports all pairwise conflicts among the given placed
// symbols. The result order is stable: pairs appear by insertion order
// of the first, then the second symbol, never by map iteration order.
func FindConflicts(placed []*PlacedSymbol, tolerance float64) []ConflictPair {
	var conflicts []ConflictPair
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			if Overlaps(placed[i].WorldBox, placed[j].WorldBox, tolerance) {
				conflicts = append(conflicts, ConflictPair{
					A: placed[i].Designator,
					B: placed[j].Designator,
				})
			}
		}
	}
	return conflicts
}

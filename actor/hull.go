package actor

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// ConvexHull returns the counter-clockwise hull of points, starting from the
// lowest-leftmost vertex. Collinear points on the hull boundary are dropped.
func ConvexHull(points []mgl64.Vec2) []mgl64.Vec2 {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b mgl64.Vec2) int {
		switch {
		case a.X() < b.X() || (a.X() == b.X() && a.Y() < b.Y()):
			return -1
		case a.X() == b.X() && a.Y() == b.Y():
			return 0
		default:
			return 1
		}
	})
	sorted = slices.Compact(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	hull := make([]mgl64.Vec2, 0, 2*len(sorted))
	// lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && CrossRef(hull[len(hull)-1], p, hull[len(hull)-2]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper chain
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && CrossRef(hull[len(hull)-1], p, hull[len(hull)-2]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

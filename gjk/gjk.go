// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for 2D collision detection.
//
// GJK detects whether two convex shapes overlap by testing if their Minkowski difference
// contains the origin. In 2D the simplex grows from a point to a segment to a triangle;
// a triangle enclosing the origin proves the overlap and is handed over to EPA.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// GJKMaxIterations bounds the refinement loop. Well-formed shapes converge in a handful
// of iterations; running out of iterations is reported as no collision.
const GJKMaxIterations = 64

// Simplex holds 1 to 3 points of the Minkowski difference, in insertion order.
// Points[Count-1] is always the most recent support point.
type Simplex struct {
	Points [3]mgl64.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

// Last returns the most recent support point.
func (s *Simplex) Last() mgl64.Vec2 {
	return s.Points[s.Count-1]
}

func (s *Simplex) push(p mgl64.Vec2) {
	s.Points[s.Count] = p
	s.Count++
}

// SimplexPool reuses simplexes across collision tests. A simplex taken from the pool
// must be Reset before use and must not be shared between goroutines.
var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// MinkowskiSupport computes a support point of the Minkowski difference A - B:
// the point of A farthest along direction minus the point of B farthest against it.
//
// Shapes only need a Support function; GJK never sees their full geometry.
func MinkowskiSupport(a, b actor.ConvexShape, direction mgl64.Vec2) mgl64.Vec2 {
	return a.Support(direction).Sub(b.Support(direction.Mul(-1)))
}

// GJK reports whether two convex shapes overlap.
//
// Algorithm overview:
//  1. Start searching along the vector between the shape origins
//  2. Get the first support point, then head back towards the origin
//  3. Each new support point must pass the origin, otherwise the shapes are separated
//  4. Reduce the simplex to the feature closest to the origin and update the direction
//  5. A triangle enclosing the origin means the shapes overlap
//
// The simplex is modified in place. When GJK returns true it holds exactly 3 points,
// which EPA uses as its initial polytope. Touching shapes (origin on the boundary of
// the Minkowski difference) are reported as separated.
func GJK(a, b actor.ConvexShape, simplex *Simplex) bool {
	direction := a.Origin().Sub(b.Origin())
	if direction.X() == 0 && direction.Y() == 0 {
		direction = mgl64.Vec2{1, 0}
	}

	simplex.Reset()
	simplex.push(MinkowskiSupport(a, b, direction))

	if simplex.Points[0].Dot(direction) <= 0 {
		return false
	}

	direction = simplex.Points[0].Mul(-1)

	for i := 0; i < GJKMaxIterations; i++ {
		newPoint := MinkowskiSupport(a, b, direction)

		// The new point does not pass the origin: the origin is out of reach.
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		simplex.push(newPoint)

		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	return false
}

// containsOrigin reduces the simplex to the feature closest to the origin and
// updates the search direction. Only a triangle can contain the origin.
func containsOrigin(simplex *Simplex, direction *mgl64.Vec2) bool {
	switch simplex.Count {
	case 2:
		line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	}
	return false
}

// line searches perpendicular to the segment, on the side of the origin.
// When the origin lies on the segment line the perpendicular is used as is.
func line(simplex *Simplex, direction *mgl64.Vec2) {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	d := actor.TripleProduct(ab, ao, ab)
	if d.LenSqr() == 0 {
		d = actor.Perp(ab)
	}
	*direction = d
}

// triangle tests the two edges adjacent to the newest point A.
// The edge BC was already tested when C and B were the simplex.
func triangle(simplex *Simplex, direction *mgl64.Vec2) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	acPerp := actor.TripleProduct(ab, ac, ac)
	if acPerp.Dot(ao) >= 0 {
		// origin beyond AC: drop B
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = acPerp
		return false
	}

	abPerp := actor.TripleProduct(ac, ab, ab)
	if abPerp.Dot(ao) < 0 {
		return true
	}

	// origin beyond AB: drop C
	simplex.Points[0] = b
	simplex.Points[1] = a
	simplex.Count = 2
	*direction = abPerp
	return false
}

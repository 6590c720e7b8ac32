package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cross returns the z component of the cross product of a and b extended to 3D.
// Positive when b is counter-clockwise from a.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Perp rotates v by -90 degrees: (x, y) -> (y, -x).
// For an edge of a counter-clockwise polygon this is the outward direction.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}

// TripleProduct computes (a × b) × c. In the plane a × b is the scalar Cross(a, b)
// along z, so the result is always exactly perpendicular to c.
func TripleProduct(a, b, c mgl64.Vec2) mgl64.Vec2 {
	z := Cross(a, b)
	return mgl64.Vec2{-z * c.Y(), z * c.X()}
}

// CrossRef computes (p - ref) × (a - ref).
func CrossRef(p, a, ref mgl64.Vec2) float64 {
	return Cross(p.Sub(ref), a.Sub(ref))
}

// DotRef computes (p - ref) · (a - ref).
func DotRef(p, a, ref mgl64.Vec2) float64 {
	return p.Sub(ref).Dot(a.Sub(ref))
}

// Normalize returns v divided by its length, or the zero vector when v is zero.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{v.X() / l, v.Y() / l}
}

// Lerp interpolates between a and b, t=0 giving a.
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Rotate rotates v counter-clockwise by angle radians around the origin.
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// RotateAbout rotates v counter-clockwise by angle radians around center.
func RotateAbout(v, center mgl64.Vec2, angle float64) mgl64.Vec2 {
	return Rotate(v.Sub(center), angle).Add(center)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b mgl64.Vec2) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y())
}

package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is an oriented edge from V1 to V2.
// A circle reports its contact feature as a degenerate segment where V1 == V2.
type Segment struct {
	V1 mgl64.Vec2
	V2 mgl64.Vec2
}

// Vector returns V2 - V1.
func (s Segment) Vector() mgl64.Vec2 {
	return s.V2.Sub(s.V1)
}

// Dot projects the edge vector onto direction.
func (s Segment) Dot(direction mgl64.Vec2) float64 {
	return s.Vector().Dot(direction)
}

func (s Segment) Len2() float64 {
	return s.Vector().LenSqr()
}

func (s Segment) Len() float64 {
	return s.Vector().Len()
}

// IsDegenerate reports a zero-length segment.
func (s Segment) IsDegenerate() bool {
	return s.Len2() == 0
}

// Lerp returns the point at parameter t along the segment.
func (s Segment) Lerp(t float64) mgl64.Vec2 {
	return Lerp(s.V1, s.V2, t)
}

func (s Segment) AABB() AABB {
	return AABB{
		Min: mgl64.Vec2{math.Min(s.V1.X(), s.V2.X()), math.Min(s.V1.Y(), s.V2.Y())},
		Max: mgl64.Vec2{math.Max(s.V1.X(), s.V2.X()), math.Max(s.V1.Y(), s.V2.Y())},
	}
}

// ClosestPoint returns the point of the segment nearest to p.
func (s Segment) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	l2 := s.Len2()
	if l2 == 0 {
		return s.V1
	}
	t := p.Sub(s.V1).Dot(s.Vector()) / l2
	return s.Lerp(math.Max(0, math.Min(1, t)))
}

// ContainsPoint reports whether p lies on the segment within tolerance.
func (s Segment) ContainsPoint(p mgl64.Vec2, tolerance float64) bool {
	return Distance(s.ClosestPoint(p), p) <= tolerance
}

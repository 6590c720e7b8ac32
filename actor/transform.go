package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a local frame in the world: a rotation followed by a translation.
// The rotation is stored as its cosine and sine to avoid recomputing them on every vertex.
type Transform struct {
	Position mgl64.Vec2
	cos, sin float64
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{cos: 1}
}

// NewTransformAt creates a transform translated to position with the given angle.
func NewTransformAt(position mgl64.Vec2, angle float64) Transform {
	t := Transform{Position: position}
	t.SetAngle(angle)
	return t
}

// SetAngle replaces the rotation.
func (t *Transform) SetAngle(angle float64) {
	t.cos = math.Cos(angle)
	t.sin = math.Sin(angle)
}

// Angle returns the rotation in radians, in (-pi, pi].
func (t Transform) Angle() float64 {
	if t.cos == 0 && t.sin == 0 {
		return 0
	}
	return math.Atan2(t.sin, t.cos)
}

// Translate moves the frame by offset.
func (t *Transform) Translate(offset mgl64.Vec2) {
	t.Position = t.Position.Add(offset)
}

// Rotate composes an extra rotation of angle radians around the world point about.
func (t *Transform) Rotate(angle float64, about mgl64.Vec2) {
	c, s := math.Cos(angle), math.Sin(angle)
	tc, ts := t.rotation()
	cos := c*tc - s*ts
	sin := s*tc + c*ts
	t.cos, t.sin = cos, sin
	t.Position = RotateAbout(t.Position, about, angle)
}

// Apply maps a local point to world space.
func (t Transform) Apply(v mgl64.Vec2) mgl64.Vec2 {
	c, s := t.rotation()
	return mgl64.Vec2{
		c*v.X() - s*v.Y() + t.Position.X(),
		s*v.X() + c*v.Y() + t.Position.Y(),
	}
}

// Inverse maps a world point to local space.
func (t Transform) Inverse(v mgl64.Vec2) mgl64.Vec2 {
	c, s := t.rotation()
	x := v.X() - t.Position.X()
	y := v.Y() - t.Position.Y()
	return mgl64.Vec2{c*x + s*y, -s*x + c*y}
}

// a zero-value Transform behaves as the identity
func (t Transform) rotation() (float64, float64) {
	if t.cos == 0 && t.sin == 0 {
		return 1, 0
	}
	return t.cos, t.sin
}

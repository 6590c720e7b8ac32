package constraint

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// CollisionResult is the manifold of two overlapping shapes.
type CollisionResult struct {
	// Normal is a unit vector from A toward B. Moving B by Normal*Depth separates the shapes.
	Normal mgl64.Vec2
	// Depth is the penetration distance, never negative.
	Depth float64
	// Contacts lists the contact points in world space.
	Contacts []mgl64.Vec2
}

// Reset clears the result and keeps the contacts buffer.
func (r *CollisionResult) Reset() {
	r.Normal = mgl64.Vec2{}
	r.Depth = 0
	r.Contacts = r.Contacts[:0]
}

// Clone returns a copy that does not share the contacts buffer.
func (r CollisionResult) Clone() CollisionResult {
	r.Contacts = slices.Clone(r.Contacts)
	return r
}

// Separation is the translation to apply to B to end the overlap.
func (r CollisionResult) Separation() mgl64.Vec2 {
	return r.Normal.Mul(r.Depth)
}

package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies have finite mass and react to contact impulses
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies are immovable and have infinite mass (ground, walls)
	BodyTypeStatic
)

func (t BodyType) String() string {
	if t == BodyTypeStatic {
		return "static"
	}
	return "dynamic"
}

type Material struct {
	Density     float64
	Restitution float64 // 0 = no rebound, 1 = perfect restitution

	StaticFriction  float64
	DynamicFriction float64
}

// RigidBody couples a convex shape with the mass state consumed by the contact resolver.
type RigidBody struct {
	Shape    ConvexShape
	Material Material
	BodyType BodyType

	Velocity        mgl64.Vec2
	AngularVelocity float64 // rad/s, counter-clockwise

	mass           float64
	inverseMass    float64
	inertia        float64
	inverseInertia float64
}

// NewRigidBody creates a body and derives its mass and inertia from the shape area.
// Static bodies, and dynamic bodies of zero area or density, get zero inverse mass.
func NewRigidBody(shape ConvexShape, bodyType BodyType, material Material) *RigidBody {
	rb := &RigidBody{
		Shape:    shape,
		Material: material,
		BodyType: bodyType,
	}
	rb.ComputeMass()

	return rb
}

// ComputeMass refreshes mass and inertia after the shape or material changed.
func (rb *RigidBody) ComputeMass() {
	if rb.BodyType == BodyTypeStatic {
		rb.mass = math.Inf(1)
		rb.inertia = math.Inf(1)
		rb.inverseMass = 0
		rb.inverseInertia = 0
		return
	}

	rb.mass = rb.Material.Density * rb.Shape.Area()
	rb.inertia = rb.Shape.ComputeInertia(rb.mass)
	rb.inverseMass = inverse(rb.mass)
	rb.inverseInertia = inverse(rb.inertia)
}

func inverse(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) {
		return 0
	}
	return 1 / v
}

func (rb *RigidBody) GetMass() float64 {
	return rb.mass
}

func (rb *RigidBody) GetInverseMass() float64 {
	return rb.inverseMass
}

func (rb *RigidBody) GetInertia() float64 {
	return rb.inertia
}

func (rb *RigidBody) GetInverseInertia() float64 {
	return rb.inverseInertia
}

// Position is the center of mass in world space.
func (rb *RigidBody) Position() mgl64.Vec2 {
	return rb.Shape.Centroid()
}

// Translate moves the body shape; static bodies are moved too, as this is a placement call.
func (rb *RigidBody) Translate(offset mgl64.Vec2) {
	rb.Shape.Translate(offset)
}

// ApplyImpulse changes the velocities for an impulse applied at the lever arm r
// (contact point relative to the center of mass).
func (rb *RigidBody) ApplyImpulse(impulse, r mgl64.Vec2) {
	if rb.BodyType == BodyTypeStatic {
		return
	}
	rb.Velocity = rb.Velocity.Add(impulse.Mul(rb.inverseMass))
	rb.AngularVelocity += rb.inverseInertia * Cross(r, impulse)
}

// VelocityAt returns the velocity of the body point at lever arm r.
func (rb *RigidBody) VelocityAt(r mgl64.Vec2) mgl64.Vec2 {
	// ω × r in 2D
	return rb.Velocity.Add(mgl64.Vec2{-rb.AngularVelocity * r.Y(), rb.AngularVelocity * r.X()})
}

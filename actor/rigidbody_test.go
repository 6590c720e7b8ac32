package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func createBoxBody(center mgl64.Vec2, halfExtents mgl64.Vec2, bodyType BodyType, density float64) *RigidBody {
	return NewRigidBody(NewBox(center, halfExtents), bodyType, Material{Density: density})
}

func TestNewRigidBody(t *testing.T) {
	tests := []struct {
		name              string
		body              *RigidBody
		expectedMass      float64
		expectedInvMass   float64
		expectedInertia   float64
		expectedInvInerta float64
	}{
		{
			name:              "dynamic box",
			body:              createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeDynamic, 2),
			expectedMass:      8,
			expectedInvMass:   0.125,
			expectedInertia:   8.0 * 8.0 / 12.0,
			expectedInvInerta: 12.0 / 64.0,
		},
		{
			name:              "dynamic circle",
			body:              NewRigidBody(NewCircle(mgl64.Vec2{0, 0}, 1), BodyTypeDynamic, Material{Density: 1 / math.Pi}),
			expectedMass:      1,
			expectedInvMass:   1,
			expectedInertia:   0.5,
			expectedInvInerta: 2,
		},
		{
			name:              "zero density",
			body:              createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeDynamic, 0),
			expectedMass:      0,
			expectedInvMass:   0,
			expectedInertia:   0,
			expectedInvInerta: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !floatEqual(tt.body.GetMass(), tt.expectedMass, 1e-9) {
				t.Errorf("mass = %v, want %v", tt.body.GetMass(), tt.expectedMass)
			}
			if !floatEqual(tt.body.GetInverseMass(), tt.expectedInvMass, 1e-9) {
				t.Errorf("inverse mass = %v, want %v", tt.body.GetInverseMass(), tt.expectedInvMass)
			}
			if !floatEqual(tt.body.GetInertia(), tt.expectedInertia, 1e-9) {
				t.Errorf("inertia = %v, want %v", tt.body.GetInertia(), tt.expectedInertia)
			}
			if !floatEqual(tt.body.GetInverseInertia(), tt.expectedInvInerta, 1e-9) {
				t.Errorf("inverse inertia = %v, want %v", tt.body.GetInverseInertia(), tt.expectedInvInerta)
			}
		})
	}

	t.Run("static body", func(t *testing.T) {
		body := createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeStatic, 5)
		if !math.IsInf(body.GetMass(), 1) {
			t.Errorf("static mass = %v, want +Inf", body.GetMass())
		}
		if body.GetInverseMass() != 0 || body.GetInverseInertia() != 0 {
			t.Error("static inverse mass and inertia must be zero")
		}
	})
}

func TestApplyImpulse(t *testing.T) {
	t.Run("linear and angular response", func(t *testing.T) {
		body := createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeDynamic, 2)
		body.ApplyImpulse(mgl64.Vec2{8, 0}, mgl64.Vec2{0, 1})

		if !vec2Equal(body.Velocity, mgl64.Vec2{1, 0}, 1e-12) {
			t.Errorf("Velocity = %v, want (1,0)", body.Velocity)
		}
		if !floatEqual(body.AngularVelocity, -1.5, 1e-12) {
			t.Errorf("AngularVelocity = %v, want -1.5", body.AngularVelocity)
		}
	})

	t.Run("static body ignores impulses", func(t *testing.T) {
		body := createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeStatic, 2)
		body.ApplyImpulse(mgl64.Vec2{8, 3}, mgl64.Vec2{1, 1})

		if body.Velocity != (mgl64.Vec2{}) || body.AngularVelocity != 0 {
			t.Errorf("static body moved: v=%v w=%v", body.Velocity, body.AngularVelocity)
		}
	})
}

func TestVelocityAt(t *testing.T) {
	body := createBoxBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, BodyTypeDynamic, 1)
	body.Velocity = mgl64.Vec2{1, 0}
	body.AngularVelocity = 2

	if got := body.VelocityAt(mgl64.Vec2{1, 0}); got != (mgl64.Vec2{1, 2}) {
		t.Errorf("VelocityAt = %v, want (1,2)", got)
	}
}

func TestRigidBody_CenterOfMassOffOrigin(t *testing.T) {
	// the polygon origin stays at (0,0), far from the square
	square, err := NewPolygon([]mgl64.Vec2{{99, -1}, {101, -1}, {101, 1}, {99, 1}})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	body := NewRigidBody(square, BodyTypeDynamic, Material{Density: 1})

	if !vec2Equal(body.Position(), mgl64.Vec2{100, 0}, 1e-12) {
		t.Errorf("Position = %v, want (100,0)", body.Position())
	}

	body.ApplyImpulse(mgl64.Vec2{0, 4}, body.Position().Sub(body.Position()))
	if body.AngularVelocity != 0 {
		t.Errorf("impulse through the center of mass spun the body: ω = %v", body.AngularVelocity)
	}
	if !vec2Equal(body.Velocity, mgl64.Vec2{0, 1}, 1e-12) {
		t.Errorf("Velocity = %v, want (0,1)", body.Velocity)
	}
}

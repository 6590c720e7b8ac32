package constraint

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// CorrectionPercent is the share of the penetration removed by SolvePosition.
	// Usually 20% to 80%.
	CorrectionPercent = 0.2

	// CorrectionSlop is the penetration left alone to avoid jitter on resting contacts.
	CorrectionSlop = 0.01

	// frictionEpsilon skips tangent impulses too small to matter
	frictionEpsilon = 1e-9
)

// ContactConstraint binds two bodies to the manifold found between their shapes.
type ContactConstraint struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
	CollisionResult
}

var _ Constraint = (*ContactConstraint)(nil)

func NewContactConstraint(bodyA, bodyB *actor.RigidBody, result CollisionResult) *ContactConstraint {
	return &ContactConstraint{
		BodyA:           bodyA,
		BodyB:           bodyB,
		CollisionResult: result,
	}
}

// SolveVelocity applies the normal and friction impulses at every contact point.
// The impulse is spread evenly over the contacts; separating contacts are skipped.
func (c *ContactConstraint) SolveVelocity() {
	if len(c.Contacts) == 0 {
		return
	}

	bodyA := c.BodyA
	bodyB := c.BodyB
	if bodyA.GetInverseMass()+bodyB.GetInverseMass() == 0 {
		return
	}

	e := ComputeRestitution(bodyA.Material, bodyB.Material)
	sf := ComputeStaticFriction(bodyA.Material, bodyB.Material)
	df := ComputeDynamicFriction(bodyA.Material, bodyB.Material)
	contactCount := float64(len(c.Contacts))

	positionA := bodyA.Position()
	positionB := bodyB.Position()

	for _, contact := range c.Contacts {
		ra := contact.Sub(positionA)
		rb := contact.Sub(positionB)

		rv := relativeVelocity(bodyA, bodyB, ra, rb)
		contactVelocity := rv.Dot(c.Normal)
		if contactVelocity > 0 {
			continue
		}

		raCrossN := actor.Cross(ra, c.Normal)
		rbCrossN := actor.Cross(rb, c.Normal)
		invMassSum := bodyA.GetInverseMass() + bodyB.GetInverseMass() +
			raCrossN*raCrossN*bodyA.GetInverseInertia() +
			rbCrossN*rbCrossN*bodyB.GetInverseInertia()

		j := -(1 + e) * contactVelocity / invMassSum / contactCount

		impulse := c.Normal.Mul(j)
		bodyB.ApplyImpulse(impulse, rb)
		bodyA.ApplyImpulse(impulse.Mul(-1), ra)

		// Friction
		rv = relativeVelocity(bodyA, bodyB, ra, rb)
		tangent := actor.Normalize(rv.Sub(c.Normal.Mul(rv.Dot(c.Normal))))

		raCrossT := actor.Cross(ra, tangent)
		rbCrossT := actor.Cross(rb, tangent)
		invMassSumT := bodyA.GetInverseMass() + bodyB.GetInverseMass() +
			raCrossT*raCrossT*bodyA.GetInverseInertia() +
			rbCrossT*rbCrossT*bodyB.GetInverseInertia()

		jt := -rv.Dot(tangent) / invMassSumT / contactCount
		if math.Abs(jt) < frictionEpsilon {
			continue
		}

		// Coulomb's law
		var frictionImpulse mgl64.Vec2
		if math.Abs(jt) < j*sf {
			frictionImpulse = tangent.Mul(jt)
		} else {
			frictionImpulse = tangent.Mul(-j * df)
		}

		bodyB.ApplyImpulse(frictionImpulse, rb)
		bodyA.ApplyImpulse(frictionImpulse.Mul(-1), ra)
	}

	clampSmallVelocities(bodyA)
	clampSmallVelocities(bodyB)
}

// SolvePosition pushes the bodies apart along the normal, proportionally to their
// inverse mass, to remove a share of the penetration.
func (c *ContactConstraint) SolvePosition() {
	invMassA := c.BodyA.GetInverseMass()
	invMassB := c.BodyB.GetInverseMass()
	if invMassA+invMassB == 0 {
		return
	}

	magnitude := math.Max(c.Depth-CorrectionSlop, 0) / (invMassA + invMassB) * CorrectionPercent
	if magnitude == 0 {
		return
	}
	correction := c.Normal.Mul(magnitude)

	if c.BodyA.BodyType != actor.BodyTypeStatic {
		c.BodyA.Translate(correction.Mul(-invMassA))
	}
	if c.BodyB.BodyType != actor.BodyTypeStatic {
		c.BodyB.Translate(correction.Mul(invMassB))
	}
}

func relativeVelocity(bodyA, bodyB *actor.RigidBody, ra, rb mgl64.Vec2) mgl64.Vec2 {
	return bodyB.VelocityAt(rb).Sub(bodyA.VelocityAt(ra))
}

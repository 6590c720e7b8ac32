package epa

import (
	"fmt"
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// ResolvePointsOfContact runs the contact solver with the default settings.
func ResolvePointsOfContact(a, b actor.ConvexShape, result *constraint.CollisionResult) error {
	return DefaultSettings().ResolvePointsOfContact(a, b, result)
}

// ResolvePointsOfContact appends the contact points of two colliding shapes to result,
// whose Normal must already be set by EPA.
//
// The edge of each shape best facing the other is taken; the one more perpendicular
// to the normal is the reference edge, the other is the incident edge, clipped against
// the two side planes of the reference edge (Sutherland-Hodgman). Points floating above
// the reference edge are then dropped.
//
// Circles expose a zero-length edge: two circles produce their two surface points,
// a circle against a polygon produces the single circle point.
//
// An error is returned, and nothing appended, when clipping leaves less than 2 points
// or when every clipped point lies above the reference edge.
func (s Settings) ResolvePointsOfContact(a, b actor.ConvexShape, result *constraint.CollisionResult) error {
	normal := result.Normal
	edgeA := a.FarthestEdge(normal)
	edgeB := b.FarthestEdge(normal.Mul(-1))

	reference, incident := edgeA, edgeB
	if math.Abs(edgeB.Dot(normal)) < math.Abs(edgeA.Dot(normal)) {
		reference, incident = edgeB, edgeA
	}

	switch {
	case edgeA.IsDegenerate() && edgeB.IsDegenerate():
		result.Contacts = append(result.Contacts, incident.V1, reference.V1)
		return nil
	case edgeA.IsDegenerate():
		result.Contacts = append(result.Contacts, edgeA.V1)
		return nil
	case edgeB.IsDegenerate():
		result.Contacts = append(result.Contacts, edgeB.V1)
		return nil
	}

	refv := actor.Normalize(reference.Vector())

	points, count := clip(incident.V1, incident.V2, refv, refv.Dot(reference.V1))
	if count < 2 {
		return fmt.Errorf("%w: %d point(s) left against the first side plane", ErrClipFailed, count)
	}

	points, count = clip(points[0], points[1], refv.Mul(-1), -refv.Dot(reference.V2))
	if count < 2 {
		return fmt.Errorf("%w: %d point(s) left against the second side plane", ErrClipFailed, count)
	}

	kept := 0
	for _, p := range points {
		// distance along the reference edge outward normal
		if actor.Cross(p.Sub(reference.V1), refv) < s.ContactTolerance {
			result.Contacts = append(result.Contacts, p)
			kept++
		}
	}
	if kept == 0 {
		return ErrNoContacts
	}

	return nil
}

// clip keeps the points of segment v1v2 on the positive side of the plane n·p = o.
// When the plane crosses the segment, the crossing point replaces the dropped endpoint.
func clip(v1, v2, n mgl64.Vec2, o float64) ([2]mgl64.Vec2, int) {
	var points [2]mgl64.Vec2
	count := 0

	d1 := n.Dot(v1) - o
	d2 := n.Dot(v2) - o

	if d1 >= 0 {
		points[count] = v1
		count++
	}
	if d2 >= 0 {
		points[count] = v2
		count++
	}

	if d1*d2 < 0 {
		u := d1 / (d1 - d2)
		points[count] = actor.Lerp(v1, v2, u)
		count++
	}

	return points, count
}

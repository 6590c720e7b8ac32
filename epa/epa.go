// Package epa implements the Expanding Polytope Algorithm for computing penetration depth,
// and the clipping solver that recovers the contact points.
//
// EPA is run after GJK detects a collision to determine:
//   - Penetration depth (how far shapes overlap)
//   - Contact normal (direction to separate shapes)
//
// The algorithm expands a polygon (starting from GJK's final triangle) toward the boundary
// of the Minkowski difference, always splitting the edge closest to the origin, until that
// edge cannot be pushed further. Its normal and distance give the Minimum Translation Vector.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation on 3D Game Objects" (2001)
package epa

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
	"github.com/akmonengine/feather2d/gjk"
)

const (
	// EPAMaxIterations limits polytope expansion. Polygons converge in a few iterations,
	// circles need more since every split only halves the angular error.
	EPAMaxIterations = 128

	// EPAConvergenceTolerance defines when EPA has converged: the support point along the
	// closest edge normal improves the edge distance by less than this threshold.
	EPAConvergenceTolerance = 0.0001

	// ContactTolerance is how far above the reference edge a clipped point may lie
	// and still be reported as a contact.
	ContactTolerance = 0.01

	polytopeInitialCapacity = 8
)

var (
	ErrInvalidSimplex = errors.New("epa: simplex is not a triangle")
	ErrNoConvergence  = errors.New("epa: did not converge")
	ErrEmptyPolytope  = errors.New("epa: empty polytope")
	ErrClipFailed     = errors.New("epa: impossible point-of-contact situation")
	ErrNoContacts     = errors.New("epa: no contact point below the reference edge")
)

// Settings carries the numerical tolerances of EPA and of the contact solver.
type Settings struct {
	Tolerance        float64
	MaxIterations    int
	ContactTolerance float64
}

func DefaultSettings() Settings {
	return Settings{
		Tolerance:        EPAConvergenceTolerance,
		MaxIterations:    EPAMaxIterations,
		ContactTolerance: ContactTolerance,
	}
}

// EPA runs the expanding polytope algorithm with the default settings.
func EPA(a, b actor.ConvexShape, simplex *gjk.Simplex, result *constraint.CollisionResult) error {
	return DefaultSettings().EPA(a, b, simplex, result)
}

// EPA computes the penetration normal and depth of two overlapping convex shapes.
//
// Algorithm overview:
//  1. Seed a counter-clockwise polytope with the GJK triangle
//  2. Pop the edge closest to the origin
//  3. Get the support point along the edge outward normal
//  4. If it lies within Tolerance of the edge → done
//  5. Otherwise split the edge at the support point and repeat from 2
//
// The normal points from A toward B: moving B by Normal*Depth separates the shapes.
// Depth is never negative. When the iteration cap is reached, the result holds the best
// estimate so far and the returned error wraps ErrNoConvergence.
func (s Settings) EPA(a, b actor.ConvexShape, simplex *gjk.Simplex, result *constraint.CollisionResult) error {
	if simplex.Count != 3 {
		return fmt.Errorf("%w: got %d points", ErrInvalidSimplex, simplex.Count)
	}

	polytope := polytopePool.Get().(*Polytope)
	defer polytopePool.Put(polytope)
	polytope.Reset()
	polytope.Build(simplex)

	for i := 0; i < s.MaxIterations; i++ {
		e, ok := polytope.closest()
		if !ok {
			return ErrEmptyPolytope
		}

		normal := polytope.normal(e)
		support := gjk.MinkowskiSupport(a, b, normal)

		if support.Dot(normal)-e.distance > s.Tolerance {
			polytope.expand(e, support)
			continue
		}

		result.Normal = normal
		result.Depth = math.Max(e.distance, 0)
		return nil
	}

	e, ok := polytope.peek()
	if !ok {
		return ErrEmptyPolytope
	}
	result.Normal = polytope.normal(e)
	result.Depth = math.Max(e.distance, 0)

	return fmt.Errorf("%w after %d iterations (%d vertices)", ErrNoConvergence, s.MaxIterations, polytope.Len())
}

package feather2d

import (
	"context"
	"errors"
	"slices"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
	"github.com/akmonengine/feather2d/epa"
	"github.com/akmonengine/feather2d/gjk"
	"go.uber.org/zap"
)

// Pair represents a pair of rigid bodies that potentially collide
type Pair struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

// AllPairs returns every pair of bodies in order, skipping pairs of two static bodies.
// This is an O(n²) brute-force approach suitable for small numbers of bodies
func AllPairs(bodies []*actor.RigidBody) []Pair {
	pairs := make([]Pair, 0, len(bodies)*(len(bodies)-1)/2)
	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if a.BodyType == actor.BodyTypeStatic && b.BodyType == actor.BodyTypeStatic {
				continue
			}
			pairs = append(pairs, Pair{BodyA: a, BodyB: b})
		}
	}
	return pairs
}

// Detector runs GJK, EPA and the contact solver with a given set of tolerances.
// It is safe for concurrent use.
type Detector struct {
	settings epa.Settings
	workers  int
	logger   *zap.Logger
}

var defaultDetector = &Detector{
	settings: epa.DefaultSettings(),
	workers:  DEFAULT_WORKERS,
	logger:   zap.NewNop(),
}

// NewDetector validates c and builds a detector. A nil logger discards diagnostics.
func NewDetector(c Config, logger *zap.Logger) (*Detector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Detector{
		settings: c.Settings(),
		workers:  c.Workers,
		logger:   logger,
	}, nil
}

// Intersects reports whether two convex shapes overlap. Touching shapes do not.
// When result is not nil and the shapes overlap, result is reset then filled with
// the penetration normal, depth and contact points.
func Intersects(a, b actor.ConvexShape, result *constraint.CollisionResult) bool {
	return defaultDetector.Collide(a, b, result)
}

// Collide is Intersects with the detector's tolerances. EPA or contact failures do not
// change the answer: they are logged, and result keeps whatever could be computed.
func (d *Detector) Collide(a, b actor.ConvexShape, result *constraint.CollisionResult) bool {
	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)

	if !gjk.GJK(a, b, simplex) {
		return false
	}
	if result == nil {
		return true
	}
	result.Reset()

	if err := d.settings.EPA(a, b, simplex, result); err != nil {
		if !errors.Is(err, epa.ErrNoConvergence) {
			d.logger.Warn("epa failed", zap.Error(err))
			return true
		}
		d.logger.Warn("epa did not converge",
			zap.Int("iterations", d.settings.MaxIterations),
			zap.Float64("depth", result.Depth),
			zap.Float64s("normal", result.Normal[:]),
		)
	}

	if err := d.settings.ResolvePointsOfContact(a, b, result); err != nil {
		d.logger.Warn("impossible point-of-contact situation",
			zap.Error(err),
			zap.Stringer("shape_a", a.Type()),
			zap.Stringer("shape_b", b.Type()),
			zap.Float64s("normal", result.Normal[:]),
			zap.Float64("depth", result.Depth),
		)
	}

	return true
}

// NarrowPhase tests every pair whose bounding boxes overlap, spread over the configured
// workers. It returns one contact constraint per colliding pair, in pairs order.
func (d *Detector) NarrowPhase(ctx context.Context, pairs []Pair) ([]*constraint.ContactConstraint, error) {
	found := make([]*constraint.ContactConstraint, len(pairs))

	err := task(ctx, d.workers, pairs, func(i int, pair Pair) error {
		if !pair.BodyA.Shape.AABB().Overlaps(pair.BodyB.Shape.AABB()) {
			return nil
		}

		var result constraint.CollisionResult
		if d.Collide(pair.BodyA.Shape, pair.BodyB.Shape, &result) {
			found[i] = constraint.NewContactConstraint(pair.BodyA, pair.BodyB, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	contacts := slices.DeleteFunc(found, func(c *constraint.ContactConstraint) bool {
		return c == nil
	})
	d.logger.Debug("narrow phase",
		zap.Int("pairs", len(pairs)),
		zap.Int("collisions", len(contacts)),
	)

	return contacts, nil
}

// Solve applies the velocity impulses then the positional correction of every constraint.
// Constraints run one after the other since they may share bodies.
func Solve(constraints []*constraint.ContactConstraint) {
	for _, c := range constraints {
		c.SolveVelocity()
	}
	for _, c := range constraints {
		c.SolvePosition()
	}
}

package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypePolygon ShapeType = iota
	ShapeTypeCircle
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypePolygon:
		return "polygon"
	case ShapeTypeCircle:
		return "circle"
	default:
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
}

// ErrTooFewPoints is returned when a polygon is built from less than 3 vertices.
var ErrTooFewPoints = errors.New("polygon needs at least 3 points")

// ConvexShape is the capability shared by every collision shape.
// The set of implementations is closed: only *Polygon and *Circle satisfy it.
type ConvexShape interface {
	Type() ShapeType
	// Origin is the reference point of the shape in world space,
	// used to seed the GJK search direction.
	Origin() mgl64.Vec2
	// Support returns the world point of the shape farthest along direction.
	Support(direction mgl64.Vec2) mgl64.Vec2
	// FarthestEdge returns the edge best facing direction, in counter-clockwise order.
	// Shapes without edges return a degenerate segment at their support point.
	FarthestEdge(direction mgl64.Vec2) Segment
	AABB() AABB
	Area() float64
	Centroid() mgl64.Vec2
	ContainsPoint(point mgl64.Vec2) bool
	Translate(offset mgl64.Vec2)
	// Rotate turns the shape around its origin.
	Rotate(angle float64)
	// ComputeInertia returns the moment of inertia around the centroid for the given mass.
	ComputeInertia(mass float64) float64

	convex()
}

var (
	_ ConvexShape = (*Polygon)(nil)
	_ ConvexShape = (*Circle)(nil)
)

// Polygon is a convex polygon. Vertices are stored in local space, counter-clockwise,
// and the world vertices are recomputed whenever the transform changes.
type Polygon struct {
	local     []mgl64.Vec2
	world     []mgl64.Vec2
	transform Transform
	aabb      AABB
}

// NewPolygon builds a polygon from world points, placed with an identity transform.
// Clockwise input is reversed so the stored winding is always counter-clockwise.
func NewPolygon(points []mgl64.Vec2) (*Polygon, error) {
	return NewPolygonAt(NewTransform(), points)
}

// NewPolygonAt builds a polygon from points expressed in the frame of transform.
func NewPolygonAt(transform Transform, points []mgl64.Vec2) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	local := make([]mgl64.Vec2, len(points))
	copy(local, points)
	if signedArea(local) < 0 {
		for i, j := 0, len(local)-1; i < j; i, j = i+1, j-1 {
			local[i], local[j] = local[j], local[i]
		}
	}

	p := &Polygon{
		local:     local,
		world:     make([]mgl64.Vec2, len(local)),
		transform: transform,
	}
	p.CalcPoints()
	return p, nil
}

// NewBox builds an axis-aligned rectangle centered on center.
func NewBox(center, halfExtents mgl64.Vec2) *Polygon {
	hx, hy := halfExtents.X(), halfExtents.Y()
	p, _ := NewPolygonAt(NewTransformAt(center, 0), []mgl64.Vec2{
		{-hx, -hy},
		{hx, -hy},
		{hx, hy},
		{-hx, hy},
	})
	return p
}

func (p *Polygon) Type() ShapeType {
	return ShapeTypePolygon
}

func (p *Polygon) convex() {}

// CalcPoints refreshes the world vertices and the bounding box from the transform.
func (p *Polygon) CalcPoints() {
	for i, v := range p.local {
		p.world[i] = p.transform.Apply(v)
	}
	p.aabb = AABBFromPoints(p.world)
}

// Points returns the world vertices. The slice is owned by the polygon.
func (p *Polygon) Points() []mgl64.Vec2 {
	return p.world
}

// LocalPoints returns the vertices in the polygon frame. The slice is owned by the polygon.
func (p *Polygon) LocalPoints() []mgl64.Vec2 {
	return p.local
}

func (p *Polygon) Transform() Transform {
	return p.transform
}

func (p *Polygon) SetTransform(transform Transform) {
	p.transform = transform
	p.CalcPoints()
}

func (p *Polygon) Origin() mgl64.Vec2 {
	return p.transform.Position
}

func (p *Polygon) Translate(offset mgl64.Vec2) {
	p.transform.Translate(offset)
	p.CalcPoints()
}

func (p *Polygon) Rotate(angle float64) {
	p.RotateAbout(angle, p.transform.Position)
}

// RotateAbout turns the polygon around a world point.
func (p *Polygon) RotateAbout(angle float64, about mgl64.Vec2) {
	p.transform.Rotate(angle, about)
	p.CalcPoints()
}

// Recenter moves the polygon origin onto its centroid. World vertices do not move.
func (p *Polygon) Recenter() {
	centroid := p.Centroid()
	offset := p.transform.Inverse(centroid)
	for i := range p.local {
		p.local[i] = p.local[i].Sub(offset)
	}
	p.transform.Position = centroid
	p.CalcPoints()
}

func (p *Polygon) AABB() AABB {
	return p.aabb
}

func (p *Polygon) Area() float64 {
	return math.Abs(signedArea(p.world))
}

// Centroid returns the area centroid in world space.
// Degenerate polygons fall back to the vertex average.
func (p *Polygon) Centroid() mgl64.Vec2 {
	var cx, cy, twiceArea float64
	n := len(p.world)
	for i := 0; i < n; i++ {
		a, b := p.world[i], p.world[(i+1)%n]
		cross := Cross(a, b)
		twiceArea += cross
		cx += (a.X() + b.X()) * cross
		cy += (a.Y() + b.Y()) * cross
	}

	if twiceArea == 0 {
		var sum mgl64.Vec2
		for _, v := range p.world {
			sum = sum.Add(v)
		}
		return sum.Mul(1 / float64(n))
	}

	return mgl64.Vec2{cx / (3 * twiceArea), cy / (3 * twiceArea)}
}

// ContainsPoint runs an even-odd test. Points on an edge count as inside.
func (p *Polygon) ContainsPoint(point mgl64.Vec2) bool {
	if !p.aabb.ContainsPoint(point) {
		return false
	}

	inside := false
	n := len(p.world)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.world[i], p.world[j]
		if (Segment{V1: a, V2: b}).ContainsPoint(point, 1e-9) {
			return true
		}
		if (a.Y() > point.Y()) != (b.Y() > point.Y()) {
			x := (b.X()-a.X())*(point.Y()-a.Y())/(b.Y()-a.Y()) + a.X()
			if point.X() < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Validate reports whether the polygon has at least 3 vertices, a counter-clockwise
// winding and no reflex vertex.
func (p *Polygon) Validate() bool {
	n := len(p.local)
	if n < 3 || signedArea(p.local) <= 0 {
		return false
	}

	for i := 0; i < n; i++ {
		a, b, c := p.local[i], p.local[(i+1)%n], p.local[(i+2)%n]
		if Cross(b.Sub(a), c.Sub(b)) < 0 {
			return false
		}
	}
	return true
}

// Support scans the world vertices; on ties the first vertex wins.
func (p *Polygon) Support(direction mgl64.Vec2) mgl64.Vec2 {
	return p.world[p.supportIndex(direction)]
}

func (p *Polygon) supportIndex(direction mgl64.Vec2) int {
	best := 0
	bestDot := p.world[0].Dot(direction)
	for i := 1; i < len(p.world); i++ {
		if d := p.world[i].Dot(direction); d > bestDot {
			best = i
			bestDot = d
		}
	}
	return best
}

// FarthestEdge picks, among the two edges adjacent to the support vertex,
// the one most perpendicular to direction.
func (p *Polygon) FarthestEdge(direction mgl64.Vec2) Segment {
	n := len(p.world)
	i := p.supportIndex(direction)

	v := p.world[i]
	prev := p.world[(i-1+n)%n]
	next := p.world[(i+1)%n]

	left := Normalize(v.Sub(next))
	right := Normalize(v.Sub(prev))

	if right.Dot(direction) <= left.Dot(direction) {
		return Segment{V1: prev, V2: v}
	}
	return Segment{V1: v, V2: next}
}

// ComputeInertia integrates the polar moment over the triangles fanned from the centroid.
func (p *Polygon) ComputeInertia(mass float64) float64 {
	centroid := p.Centroid()
	n := len(p.world)

	var numerator, denominator float64
	for i := 0; i < n; i++ {
		a := p.world[i].Sub(centroid)
		b := p.world[(i+1)%n].Sub(centroid)
		cross := math.Abs(Cross(a, b))
		numerator += cross * (a.Dot(a) + a.Dot(b) + b.Dot(b))
		denominator += cross
	}

	if denominator == 0 {
		return 0
	}
	return mass * numerator / (6 * denominator)
}

// Circle is a disc centered on its transform position.
type Circle struct {
	Radius    float64
	transform Transform
}

func NewCircle(center mgl64.Vec2, radius float64) *Circle {
	return &Circle{
		Radius:    radius,
		transform: NewTransformAt(center, 0),
	}
}

func (c *Circle) Type() ShapeType {
	return ShapeTypeCircle
}

func (c *Circle) convex() {}

func (c *Circle) Center() mgl64.Vec2 {
	return c.transform.Position
}

func (c *Circle) Transform() Transform {
	return c.transform
}

func (c *Circle) SetTransform(transform Transform) {
	c.transform = transform
}

func (c *Circle) Origin() mgl64.Vec2 {
	return c.transform.Position
}

func (c *Circle) Translate(offset mgl64.Vec2) {
	c.transform.Translate(offset)
}

// Rotate only turns the frame: the disc itself is invariant.
func (c *Circle) Rotate(angle float64) {
	c.transform.Rotate(angle, c.transform.Position)
}

func (c *Circle) AABB() AABB {
	return AABBFromCenter(c.Center(), mgl64.Vec2{c.Radius, c.Radius})
}

func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c *Circle) Centroid() mgl64.Vec2 {
	return c.Center()
}

func (c *Circle) ContainsPoint(point mgl64.Vec2) bool {
	return point.Sub(c.Center()).LenSqr() <= c.Radius*c.Radius
}

// Support returns the center when direction is zero.
func (c *Circle) Support(direction mgl64.Vec2) mgl64.Vec2 {
	return c.Center().Add(Normalize(direction).Mul(c.Radius))
}

// FarthestEdge is the degenerate segment at the support point.
func (c *Circle) FarthestEdge(direction mgl64.Vec2) Segment {
	p := c.Support(direction)
	return Segment{V1: p, V2: p}
}

func (c *Circle) ComputeInertia(mass float64) float64 {
	return 0.5 * mass * c.Radius * c.Radius
}

func signedArea(points []mgl64.Vec2) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		sum += Cross(points[i], points[(i+1)%n])
	}
	return sum / 2
}

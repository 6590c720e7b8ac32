package epa

import (
	"container/heap"
	"math"
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// vertex is a node of the polytope ring. Links are indices into Polytope.vertices.
type vertex struct {
	point      mgl64.Vec2
	prev, next int
}

// Polytope is the expanding counter-clockwise polygon of the Minkowski difference.
// Vertices form a circular doubly-linked list stored in a flat slice, and every
// ring edge sits in the edge queue ordered by its distance to the origin.
type Polytope struct {
	vertices []vertex
	edges    edgeQueue
	seq      int
}

// polytopePool reuses polytopes and their buffers between EPA runs.
var polytopePool = sync.Pool{
	New: func() interface{} {
		return &Polytope{
			vertices: make([]vertex, 0, polytopeInitialCapacity),
			edges:    make(edgeQueue, 0, polytopeInitialCapacity),
		}
	},
}

// Reset prepares the polytope for reuse without releasing its buffers.
func (p *Polytope) Reset() {
	p.vertices = p.vertices[:0]
	p.edges = p.edges[:0]
	p.seq = 0
}

// Build seeds the polytope with a GJK triangle, made counter-clockwise if needed.
func (p *Polytope) Build(simplex *gjk.Simplex) {
	p0, p1, p2 := simplex.Points[0], simplex.Points[1], simplex.Points[2]
	if actor.Cross(p1.Sub(p0), p2.Sub(p0)) < 0 {
		p1, p2 = p2, p1
	}

	a := p.push(p0)
	b := p.insertAfter(a, p1)
	c := p.insertAfter(b, p2)

	p.pushEdge(a, b)
	p.pushEdge(b, c)
	p.pushEdge(c, a)
}

// Len returns the number of vertices.
func (p *Polytope) Len() int {
	return len(p.vertices)
}

// Points walks the ring from the first vertex.
func (p *Polytope) Points() []mgl64.Vec2 {
	points := make([]mgl64.Vec2, 0, len(p.vertices))
	if len(p.vertices) == 0 {
		return points
	}
	i := 0
	for {
		points = append(points, p.vertices[i].point)
		i = p.vertices[i].next
		if i == 0 {
			return points
		}
	}
}

// push starts a new ring with a single self-linked vertex.
func (p *Polytope) push(point mgl64.Vec2) int {
	i := len(p.vertices)
	p.vertices = append(p.vertices, vertex{point: point, prev: i, next: i})
	return i
}

// insertAfter links a new vertex between at and its successor.
func (p *Polytope) insertAfter(at int, point mgl64.Vec2) int {
	i := len(p.vertices)
	next := p.vertices[at].next
	p.vertices = append(p.vertices, vertex{point: point, prev: at, next: next})
	p.vertices[at].next = i
	p.vertices[next].prev = i
	return i
}

func (p *Polytope) pushEdge(start, end int) {
	heap.Push(&p.edges, edge{
		start:    start,
		end:      end,
		distance: originDistance(p.vertices[start].point, p.vertices[end].point),
		seq:      p.seq,
	})
	p.seq++
}

// closest removes and returns the edge nearest to the origin.
func (p *Polytope) closest() (edge, bool) {
	if len(p.edges) == 0 {
		return edge{}, false
	}
	return heap.Pop(&p.edges).(edge), true
}

// peek returns the edge nearest to the origin without removing it.
func (p *Polytope) peek() (edge, bool) {
	if len(p.edges) == 0 {
		return edge{}, false
	}
	return p.edges[0], true
}

// expand splits e by inserting point between its endpoints.
func (p *Polytope) expand(e edge, point mgl64.Vec2) {
	i := p.insertAfter(e.start, point)
	p.pushEdge(e.start, i)
	p.pushEdge(i, e.end)
}

// normal returns the outward unit normal of e.
func (p *Polytope) normal(e edge) mgl64.Vec2 {
	ab := p.vertices[e.end].point.Sub(p.vertices[e.start].point)
	return actor.Normalize(actor.Perp(ab))
}

// originDistance is the signed distance from the origin to the line through a and b,
// positive when the origin lies on the inner side of a counter-clockwise edge.
func originDistance(a, b mgl64.Vec2) float64 {
	ab := a.Sub(b)
	l := ab.Len()
	if l == 0 {
		return math.Inf(1)
	}
	return -actor.Cross(a, ab) / l
}

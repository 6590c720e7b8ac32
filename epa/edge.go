package epa

// edge is a polytope edge from start to end, both vertex indices.
type edge struct {
	start, end int
	distance   float64
	seq        int
}

// edgeQueue is a min-heap of edges on distance. Equal distances pop in insertion
// order so the chosen normal does not depend on heap layout.
type edgeQueue []edge

func (q edgeQueue) Len() int {
	return len(q)
}

func (q edgeQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance < q[j].distance
	}
	return q[i].seq < q[j].seq
}

func (q edgeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *edgeQueue) Push(x any) {
	*q = append(*q, x.(edge))
}

func (q *edgeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

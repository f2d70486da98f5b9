// Package kahn implements cycle detection and topological sorting over a
// digraph.Digraph via Kahn's algorithm: repeatedly dequeue zero-in-degree
// vertices; whatever refuses to drain identifies a cycle, and a parent
// trace over the stuck vertices reconstructs one concrete witness.
package kahn

import (
	"fmt"

	"github.com/katalvlaran/cyclo/digraph"
)

// detector encapsulates mutable state for a single Detect call.
type detector struct {
	graph  *digraph.Digraph
	opts   Options
	n      int
	inDeg  []int // residual in-degrees, consumed by the drain
	parent []int // predecessor trace, NoParent where unset
	queue  []int // FIFO of ready (zero in-degree) vertices
	res    *Result
}

// Detect classifies g as empty, acyclic or cyclic, applying any number of
// functional Options. When cyclic, the Result carries one witness cycle,
// the stuck vertex set and the parent trace that produced the witness.
// The graph is never mutated: two calls on the same graph yield identical
// results. Returns ErrGraphNil for nil input and the wrapped context error
// if a configured context is canceled mid-drain.
// Complexity: O(n²) time, O(n) extra memory (the matrix itself is O(n²)).
func Detect(g *digraph.Digraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// The zero-vertex graph is a distinguished verdict, not a degenerate
	// acyclic one.
	n := g.VertexCount()
	if n == 0 {
		return &Result{Verdict: VerdictEmpty}, nil
	}

	// Prepare detector state; in-degrees are recomputed fresh per call.
	d := &detector{
		graph:  g,
		opts:   o,
		n:      n,
		inDeg:  g.InDegrees(),
		parent: make([]int, n),
		queue:  make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
		},
	}
	for v := range d.parent {
		d.parent[v] = NoParent
	}

	// Seed with every source vertex, then drain.
	d.seed()
	if err := d.drain(); err != nil {
		return nil, err
	}

	return d.finish(), nil
}

// Sort computes a topological ordering of g on top of the same drain.
// For acyclic graphs the order contains every vertex exactly once with all
// edges pointing forward. The empty graph sorts to an empty order. Cyclic
// graphs yield ErrCycleDetected, wrapped with the witness for context.
func Sort(g *digraph.Digraph, opts ...Option) ([]int, error) {
	res, err := Detect(g, opts...)
	if err != nil {
		return nil, err
	}
	if res.Verdict == VerdictCyclic {
		return nil, fmt.Errorf("kahn: Sort: witness %s: %w", FormatCycle(res.Cycle), ErrCycleDetected)
	}
	if res.Order == nil {
		// VerdictEmpty: vacuously ordered.
		return []int{}, nil
	}

	return res.Order, nil
}

// seed enqueues every vertex with zero in-degree in ascending index order;
// the ascending pass fixes FIFO tie-breaks and thus the whole run.
func (d *detector) seed() {
	for v := 0; v < d.n; v++ {
		if d.inDeg[v] == 0 {
			d.enqueue(v)
		}
	}
}

// enqueue appends v to the work queue and fires the OnEnqueue hook.
func (d *detector) enqueue(v int) {
	d.opts.OnEnqueue(v)
	d.queue = append(d.queue, v)
}

// dequeue pops the first vertex, fires the OnDequeue hook, and returns it.
func (d *detector) dequeue() int {
	u := d.queue[0]
	d.queue = d.queue[1:]
	d.opts.OnDequeue(u)

	return u
}

// drain processes the queue until empty or canceled.
func (d *detector) drain() error {
	for len(d.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-d.opts.Ctx.Done():
			return fmt.Errorf("kahn: canceled after %d vertices: %w", d.res.Processed, d.opts.Ctx.Err())
		default:
		}

		u := d.dequeue()
		d.res.Order = append(d.res.Order, u)
		d.res.Processed++
		d.relax(u)
	}

	return nil
}

// relax scans u's successors in ascending order, decrements each residual
// in-degree, records u as the successor's parent (unconditional overwrite —
// the last writer wins), and enqueues successors that reach zero.
func (d *detector) relax(u int) {
	for v := 0; v < d.n; v++ {
		if !d.graph.HasEdge(u, v) {
			continue
		}
		d.inDeg[v]--
		d.parent[v] = u
		if d.inDeg[v] == 0 {
			d.enqueue(v)
		}
	}
}

// finish turns the drained state into a Result.
func (d *detector) finish() *Result {
	if d.res.Processed == d.n {
		d.res.Verdict = VerdictAcyclic
		d.res.Parent = d.parent

		return d.res
	}

	// At least one vertex never drained: cyclic.
	d.res.Verdict = VerdictCyclic
	d.res.Stuck = d.stuckSet()
	d.repairParents()
	d.res.Cycle = d.reconstruct()
	d.res.Parent = d.parent

	return d.res
}

// stuckSet lists the vertices with residual in-degree > 0, ascending.
func (d *detector) stuckSet() []int {
	stuck := make([]int, 0, d.n-d.res.Processed)
	for v := 0; v < d.n; v++ {
		if d.inDeg[v] > 0 {
			stuck = append(stuck, v)
		}
	}

	return stuck
}

// repairParents rewrites the parent of every stuck vertex so the pointer
// chain never leaves the stuck set. A relaxation writes parent[v] only when
// its source is dequeued, so after an incomplete drain the recorded parent
// of a stuck vertex is either NoParent or an already-processed vertex —
// following it could dead-end outside the residual subgraph. Each stuck
// vertex keeps at least one unrelaxed in-edge whose source is itself stuck,
// which makes the repaired chain total over the stuck set. Sources are
// scanned ascending with last-writer-wins, the same overwrite contract the
// relaxation uses.
func (d *detector) repairParents() {
	isStuck := make([]bool, d.n)
	for _, v := range d.res.Stuck {
		isStuck[v] = true
	}
	for _, v := range d.res.Stuck {
		for u := 0; u < d.n; u++ {
			if isStuck[u] && d.graph.HasEdge(u, v) {
				d.parent[v] = u
			}
		}
	}
}

// reconstruct returns one witness cycle in edge direction, rotated so the
// smallest vertex leads. Must only run after repairParents.
func (d *detector) reconstruct() []int {
	// 1. Walk the parent chain from the first stuck vertex, marking
	//    visited, until some vertex repeats: that vertex lies on the cycle.
	//    The chain stays inside the finite stuck set, so a repeat is
	//    guaranteed.
	cur := d.res.Stuck[0]
	visited := make([]bool, d.n)
	for !visited[cur] {
		visited[cur] = true
		cur = d.parent[cur]
	}
	cycleStart := cur

	// 2. Collect the loop from cycleStart back around to itself.
	cycle := []int{cycleStart}
	for v := d.parent[cycleStart]; v != cycleStart; v = d.parent[v] {
		cycle = append(cycle, v)
	}

	// 3. Parent pointers run against edge direction; reverse into
	//    start→…→start reading order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	// 4. Rotate so the smallest vertex leads; rotation preserves the
	//    cyclic adjacency, it only fixes the starting point.
	return rotateMinFirst(cycle)
}

// rotateMinFirst returns the cycle rotated so its smallest vertex is first.
func rotateMinFirst(cycle []int) []int {
	lead := 0
	for i, v := range cycle {
		if v < cycle[lead] {
			lead = i
		}
	}
	if lead == 0 {
		return cycle
	}
	rotated := make([]int, 0, len(cycle))
	rotated = append(rotated, cycle[lead:]...)
	rotated = append(rotated, cycle[:lead]...)

	return rotated
}

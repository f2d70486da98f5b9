package kahn_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclo/digraph"
	"github.com/katalvlaran/cyclo/kahn"
)

// fourCycleRows is the showcase graph with the loop 1→3→1:
// edges 0→1, 1→2, 1→3, 3→1.
func fourCycleRows() [][]int {
	return [][]int{
		{0, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
	}
}

// diamondRows is an acyclic diamond: 0→1, 0→2, 1→3, 2→3.
func diamondRows() [][]int {
	return [][]int{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
}

// danglingTailRows has the loop 0→1→2→0 plus a dangling tail 2→3→4.
func danglingTailRows() [][]int {
	return [][]int{
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{1, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
	}
}

// mustGraph builds a graph from rows or aborts the test.
func mustGraph(t *testing.T, rows [][]int) *digraph.Digraph {
	t.Helper()
	g, err := digraph.FromMatrix(rows)
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}
	return g
}

// assertClosedWalk fails unless cycle is a genuine closed walk in g:
// every consecutive pair is an edge and the last vertex connects back to
// the first.
func assertClosedWalk(t *testing.T, g *digraph.Digraph, cycle []int) {
	t.Helper()
	if len(cycle) == 0 {
		t.Fatal("witness cycle is empty")
	}
	for k := 0; k+1 < len(cycle); k++ {
		if !g.HasEdge(cycle[k], cycle[k+1]) {
			t.Errorf("witness pair %d→%d is not an edge", cycle[k], cycle[k+1])
		}
	}
	if last := cycle[len(cycle)-1]; !g.HasEdge(last, cycle[0]) {
		t.Errorf("witness wrap-around %d→%d is not an edge", last, cycle[0])
	}
}

// assertTopological fails unless order is a permutation of all vertices
// with every edge pointing forward.
func assertTopological(t *testing.T, g *digraph.Digraph, order []int) {
	t.Helper()
	n := g.VertexCount()
	if len(order) != n {
		t.Fatalf("order length = %d; want %d", len(order), n)
	}
	pos := make([]int, n)
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("order %v is not a permutation of 0..%d", order, n-1)
		}
		seen[v] = true
		pos[v] = i
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) && pos[u] >= pos[v] {
				t.Errorf("edge %d→%d points backward in order %v", u, v, order)
			}
		}
	}
}

// TestDetect_NilGraph verifies nil input is rejected with the sentinel.
func TestDetect_NilGraph(t *testing.T) {
	if _, err := kahn.Detect(nil); !errors.Is(err, kahn.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := kahn.Sort(nil); !errors.Is(err, kahn.ErrGraphNil) {
		t.Errorf("Sort(nil): want ErrGraphNil, got %v", err)
	}
}

// TestDetect_EmptyGraph confirms the zero-vertex graph gets its own
// verdict — never acyclic, never cyclic.
func TestDetect_EmptyGraph(t *testing.T) {
	g := mustGraph(t, nil)
	res, err := kahn.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, kahn.VerdictEmpty, res.Verdict)
	assert.NotEqual(t, kahn.VerdictAcyclic, res.Verdict)
	assert.NotEqual(t, kahn.VerdictCyclic, res.Verdict)
	assert.Zero(t, res.Processed)
	assert.Nil(t, res.Cycle)
	assert.Nil(t, res.Order)
	assert.Nil(t, res.Parent)
	assert.Nil(t, res.Stuck)
}

// TestDetect_FourVertexCycle walks the full Result contract on the
// showcase graph: loop 1→3→1 behind the source vertex 0.
func TestDetect_FourVertexCycle(t *testing.T) {
	g := mustGraph(t, fourCycleRows())
	res, err := kahn.Detect(g)
	require.NoError(t, err)

	assert.Equal(t, kahn.VerdictCyclic, res.Verdict)
	assert.Equal(t, []int{1, 3}, res.Cycle)
	assert.Equal(t, "1 -> 3 -> 1", kahn.FormatCycle(res.Cycle))
	assert.Equal(t, 1, res.Processed)       // only vertex 0 drains
	assert.Equal(t, []int{0}, res.Order)    // the processed prefix
	assert.Equal(t, []int{1, 2, 3}, res.Stuck)
	// vertex 0 keeps no parent; stuck parents point at stuck predecessors
	assert.Equal(t, []int{kahn.NoParent, 3, 1, 1}, res.Parent)

	assertClosedWalk(t, g, res.Cycle)
}

// TestDetect_FourVertexAcyclic checks the diamond DAG drains completely.
func TestDetect_FourVertexAcyclic(t *testing.T) {
	g := mustGraph(t, diamondRows())
	res, err := kahn.Detect(g)
	require.NoError(t, err)

	assert.Equal(t, kahn.VerdictAcyclic, res.Verdict)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Nil(t, res.Cycle)
	assert.Nil(t, res.Stuck)
	// last writer wins: vertex 3 is relaxed by 1 first, then by 2
	assert.Equal(t, []int{kahn.NoParent, 0, 0, 2}, res.Parent)

	assertTopological(t, g, res.Order)
}

// TestDetect_CycleWithDanglingTail confirms the acyclic tail hanging off the
// loop 0→1→2→0 never masks it.
func TestDetect_CycleWithDanglingTail(t *testing.T) {
	g := mustGraph(t, danglingTailRows())
	res, err := kahn.Detect(g)
	require.NoError(t, err)

	assert.Equal(t, kahn.VerdictCyclic, res.Verdict)
	assert.Equal(t, []int{0, 1, 2}, res.Cycle) // exactly the loop vertices
	assert.Equal(t, "0 -> 1 -> 2 -> 0", kahn.FormatCycle(res.Cycle))
	assert.Zero(t, res.Processed) // no vertex ever drains
	assert.Empty(t, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Stuck) // tail counts as stuck too

	assertClosedWalk(t, g, res.Cycle)
}

// TestDetect_DisconnectedComponents verifies the count is global across
// components: a draining acyclic component never masks a cyclic one, and
// several acyclic components together still drain completely.
func TestDetect_DisconnectedComponents(t *testing.T) {
	// component {0,1} is a path, component {2,3} is a 2-cycle
	mixed, err := digraph.FromEdges(4, []digraph.Edge{
		{From: 0, To: 1},
		{From: 2, To: 3}, {From: 3, To: 2},
	})
	require.NoError(t, err)

	res, err := kahn.Detect(mixed)
	require.NoError(t, err)
	assert.Equal(t, kahn.VerdictCyclic, res.Verdict)
	assert.Equal(t, []int{2, 3}, res.Cycle)
	assert.Equal(t, 2, res.Processed) // the path component drains
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{2, 3}, res.Stuck)
	assertClosedWalk(t, mixed, res.Cycle)

	// two disjoint paths: nothing blocks, the whole graph drains
	paths, err := digraph.FromEdges(4, []digraph.Edge{
		{From: 0, To: 1},
		{From: 2, To: 3},
	})
	require.NoError(t, err)

	res, err = kahn.Detect(paths)
	require.NoError(t, err)
	assert.Equal(t, kahn.VerdictAcyclic, res.Verdict)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, []int{0, 2, 1, 3}, res.Order) // FIFO interleaves the seeds
	assertTopological(t, paths, res.Order)
}

// TestDetect_SelfLoop covers the smallest possible cycle.
func TestDetect_SelfLoop(t *testing.T) {
	rows := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	g := mustGraph(t, rows)
	res, err := kahn.Detect(g)
	require.NoError(t, err)

	assert.Equal(t, kahn.VerdictCyclic, res.Verdict)
	assert.Equal(t, []int{1}, res.Cycle)
	assert.Equal(t, "1 -> 1", kahn.FormatCycle(res.Cycle))
	assert.Equal(t, []int{1}, res.Stuck)
	assertClosedWalk(t, g, res.Cycle)
}

// TestDetect_TwoDisjointCycles checks exactly one witness is returned and
// it is the one the ascending reconstruction reaches first.
func TestDetect_TwoDisjointCycles(t *testing.T) {
	g, err := digraph.FromEdges(4, []digraph.Edge{
		{From: 0, To: 1}, {From: 1, To: 0}, // loop A
		{From: 2, To: 3}, {From: 3, To: 2}, // loop B
	})
	require.NoError(t, err)

	res, err := kahn.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, kahn.VerdictCyclic, res.Verdict)
	assert.Equal(t, []int{0, 1}, res.Cycle)
	assertClosedWalk(t, g, res.Cycle)
}

// TestDetect_WitnessProperties runs the closed-walk and min-first-rotation
// contract across a spread of cyclic graphs.
func TestDetect_WitnessProperties(t *testing.T) {
	ring2, _ := digraph.Ring(2)
	ring5, _ := digraph.Ring(5)
	k3, _ := digraph.Complete(3)
	loop, _ := digraph.Ring(1)

	cases := []struct {
		name string
		g    *digraph.Digraph
	}{
		{"Ring2", ring2},
		{"Ring5", ring5},
		{"Complete3", k3},
		{"SelfLoop", loop},
		{"FourVertex", mustGraph(t, fourCycleRows())},
		{"DanglingTail", mustGraph(t, danglingTailRows())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := kahn.Detect(tc.g)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if res.Verdict != kahn.VerdictCyclic {
				t.Fatalf("Verdict = %v; want cyclic", res.Verdict)
			}
			assertClosedWalk(t, tc.g, res.Cycle)
			// rotation contract: the smallest vertex leads
			lead := res.Cycle[0]
			for _, v := range res.Cycle {
				if v < lead {
					t.Errorf("Cycle %v does not lead with its smallest vertex", res.Cycle)
				}
			}
		})
	}
}

// TestDetect_AcyclicProperties runs the topological-order contract across
// a spread of acyclic graphs.
func TestDetect_AcyclicProperties(t *testing.T) {
	path6, _ := digraph.Path(6)
	single, _ := digraph.Path(1)

	cases := []struct {
		name string
		g    *digraph.Digraph
	}{
		{"Path6", path6},
		{"SingleVertex", single},
		{"Diamond", mustGraph(t, diamondRows())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := kahn.Detect(tc.g)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if res.Verdict != kahn.VerdictAcyclic {
				t.Fatalf("Verdict = %v; want acyclic", res.Verdict)
			}
			if res.Processed != tc.g.VertexCount() {
				t.Errorf("Processed = %d; want %d", res.Processed, tc.g.VertexCount())
			}
			assertTopological(t, tc.g, res.Order)
		})
	}
}

// TestDetect_Idempotent verifies two runs on one unmodified graph agree
// and that detection never mutates its input.
func TestDetect_Idempotent(t *testing.T) {
	for _, rows := range [][][]int{fourCycleRows(), diamondRows(), danglingTailRows()} {
		g := mustGraph(t, rows)
		before := g.Matrix()

		first, err := kahn.Detect(g)
		require.NoError(t, err)
		second, err := kahn.Detect(g)
		require.NoError(t, err)

		assert.True(t, reflect.DeepEqual(first, second), "results differ: %+v vs %+v", first, second)
		assert.Equal(t, before, g.Matrix(), "input graph mutated by detection")
	}
}

// TestDetect_Hooks records enqueue/dequeue traffic on the diamond DAG.
func TestDetect_Hooks(t *testing.T) {
	g := mustGraph(t, diamondRows())

	var enq, deq []int
	_, err := kahn.Detect(g,
		kahn.WithOnEnqueue(func(v int) { enq = append(enq, v) }),
		kahn.WithOnDequeue(func(v int) { deq = append(deq, v) }),
	)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueue trace = %v; want %v", enq, want)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(deq, want) {
		t.Errorf("dequeue trace = %v; want %v", deq, want)
	}
}

// TestDetect_ContextCanceled verifies a canceled context aborts the drain.
func TestDetect_ContextCanceled(t *testing.T) {
	g := mustGraph(t, diamondRows())
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before the drain starts

	res, err := kahn.Detect(g, kahn.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
	if res != nil {
		t.Errorf("result = %+v; want nil on cancellation", res)
	}
}

// TestSort covers the topological-sort surface.
func TestSort(t *testing.T) {
	// acyclic: full deterministic order
	order, err := kahn.Sort(mustGraph(t, diamondRows()))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)

	path, _ := digraph.Path(5)
	order, err = kahn.Sort(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	// empty graph: vacuously ordered
	order, err = kahn.Sort(mustGraph(t, nil))
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Empty(t, order)

	// cyclic: sentinel surfaces via errors.Is
	_, err = kahn.Sort(mustGraph(t, fourCycleRows()))
	assert.ErrorIs(t, err, kahn.ErrCycleDetected)
}

// TestVerdict_String pins the log/report wording.
func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "empty", kahn.VerdictEmpty.String())
	assert.Equal(t, "acyclic", kahn.VerdictAcyclic.String())
	assert.Equal(t, "cyclic", kahn.VerdictCyclic.String())
	assert.Equal(t, "Verdict(9)", kahn.Verdict(9).String())
}

// TestFormatCycle pins the arrow-joined closed rendering.
func TestFormatCycle(t *testing.T) {
	assert.Equal(t, "", kahn.FormatCycle(nil))
	assert.Equal(t, "1 -> 1", kahn.FormatCycle([]int{1}))
	assert.Equal(t, "1 -> 3 -> 1", kahn.FormatCycle([]int{1, 3}))
	assert.Equal(t, "0 -> 1 -> 2 -> 0", kahn.FormatCycle([]int{0, 1, 2}))
}

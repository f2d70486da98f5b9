// Package digraph: dense adjacency-matrix model.
// Digraph is a concrete, row-major directed 0/1 graph, storing cells in a
// flat boolean slice for cache friendliness.

package digraph

import (
	"fmt"
	"strings"
)

// matrixHeader and matrixFooter frame the String dump.
const (
	matrixHeader = "Graph Adjacency Matrix:"
	matrixFooter = "-------------------------"
)

// Edge names one directed connection for FromEdges.
type Edge struct {
	From int // source vertex
	To   int // target vertex
}

// Digraph is an immutable directed graph over vertices 0..n-1.
// n is the vertex count and adj holds n*n cells in row-major order:
// adj[u*n+v] == true means a directed edge u→v.
type Digraph struct {
	n   int    // number of vertices
	adj []bool // flat backing storage, length == n*n
}

// FromMatrix builds a Digraph from a square 0/1 adjacency matrix.
// Stage 1 (Validate): every row must hold len(matrix) cells, every cell ∈ {0,1}.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): copy cells in; the input is never retained.
// An empty matrix yields the valid zero-vertex graph.
// Complexity: O(n²) time and memory.
func FromMatrix(matrix [][]int) (*Digraph, error) {
	n := len(matrix)
	// Allocate flat storage up front; zero value means "no edge".
	adj := make([]bool, n*n)

	var i, j int
	for i = 0; i < n; i++ { // iterate over rows
		// Validate row shape before touching its cells.
		if len(matrix[i]) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d cells, want %d: %w", i, len(matrix[i]), n, ErrRaggedMatrix)
		}
		for j = 0; j < n; j++ { // iterate over columns
			switch matrix[i][j] {
			case 0:
				// absent edge, nothing to store
			case 1:
				adj[i*n+j] = true
			default:
				return nil, fmt.Errorf("FromMatrix: cell (%d,%d) = %d: %w", i, j, matrix[i][j], ErrBadCell)
			}
		}
	}

	return &Digraph{n: n, adj: adj}, nil
}

// FromEdges builds a Digraph with n vertices and the given directed edges.
// Stage 1 (Validate): n ≥ 0 and every endpoint within [0, n).
// Stage 2 (Execute): set one cell per edge; duplicates collapse into the
// same cell (the matrix encoding has no multi-edge notion).
// Complexity: O(n² + len(edges)) time, O(n²) memory.
func FromEdges(n int, edges []Edge) (*Digraph, error) {
	// Validate vertex count
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNegativeCount)
	}
	adj := make([]bool, n*n)

	for i, e := range edges {
		// Validate source endpoint
		if e.From < 0 || e.From >= n {
			return nil, fmt.Errorf("FromEdges: edge %d: From=%d outside [0,%d): %w", i, e.From, n, ErrVertexRange)
		}
		// Validate target endpoint
		if e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("FromEdges: edge %d: To=%d outside [0,%d): %w", i, e.To, n, ErrVertexRange)
		}
		adj[e.From*n+e.To] = true
	}

	return &Digraph{n: n, adj: adj}, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Digraph) VertexCount() int {
	return g.n // return stored vertex count
}

// HasEdge reports whether the directed edge u→v exists.
// Out-of-range endpoints report false rather than panicking.
// Complexity: O(1).
func (g *Digraph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u*g.n+v]
}

// EdgeCount returns the number of directed edges (set cells).
// Complexity: O(n²).
func (g *Digraph) EdgeCount() int {
	var count int
	for _, set := range g.adj {
		if set {
			count++
		}
	}

	return count
}

// InDegrees returns a freshly allocated in-degree table:
// InDegrees()[v] = number of vertices u with an edge u→v (column sum).
// The caller owns the slice; the graph caches nothing.
// Complexity: O(n²).
func (g *Digraph) InDegrees() []int {
	deg := make([]int, g.n)
	var u, v int
	for u = 0; u < g.n; u++ { // scan every row
		for v = 0; v < g.n; v++ { // each set cell feeds its column's degree
			if g.adj[u*g.n+v] {
				deg[v]++
			}
		}
	}

	return deg
}

// Matrix returns a deep copy of the adjacency matrix as 0/1 rows.
// Mutating the returned rows never affects the graph.
// Complexity: O(n²) time and memory.
func (g *Digraph) Matrix() [][]int {
	rows := make([][]int, g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		rows[i] = make([]int, g.n)
		for j = 0; j < g.n; j++ {
			if g.adj[i*g.n+j] {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// Clone returns a deep copy of the Digraph.
// Complexity: O(n²) time and memory.
func (g *Digraph) Clone() *Digraph {
	// Allocate new slice for the cell copy
	cp := make([]bool, len(g.adj))
	copy(cp, g.adj)

	return &Digraph{n: g.n, adj: cp}
}

// String implements fmt.Stringer: a header line, one space-joined 0/1 row
// per vertex, and a dashed separator, each terminated by a newline.
// Complexity: O(n²) for string construction.
func (g *Digraph) String() string {
	var b strings.Builder
	b.WriteString(matrixHeader)
	b.WriteByte('\n')

	cells := make([]string, g.n)
	var i, j int
	for i = 0; i < g.n; i++ { // one output line per row
		for j = 0; j < g.n; j++ {
			if g.adj[i*g.n+j] {
				cells[j] = "1"
			} else {
				cells[j] = "0"
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	b.WriteString(matrixFooter)
	b.WriteByte('\n')

	return b.String()
}

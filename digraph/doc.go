// Package digraph provides an immutable directed graph backed by a dense
// square 0/1 adjacency matrix, with strict construction-time validation.
//
// What
//
//   - Vertices are the integers 0..n-1; an edge u→v is a 1 (true) cell at
//     row u, column v of an n×n matrix.
//   - Construct from a full matrix (FromMatrix) or from an edge list
//     (FromEdges); both validate shape and value domains and copy input.
//   - Query with VertexCount, EdgeCount, HasEdge, InDegrees, Matrix, Clone.
//   - A 1 on the diagonal is a self-loop: the smallest possible cycle.
//   - Deterministic matrix dump via String (header, 0/1 rows, separator).
//   - Deterministic shape generators: Ring, Path, Complete.
//
// Why
//
//   - A dense boolean matrix makes edge lookup O(1) and in-degree
//     computation a plain column scan — exactly what in-degree based cycle
//     detection (package kahn) consumes.
//   - Immutability after construction means detection results can never be
//     invalidated by concurrent or later mutation.
//
// Determinism
//
//	Row and column iteration is always ascending; Matrix, InDegrees and
//	String produce identical output for identical graphs, and the
//	generators emit edges in one fixed order.
//
// Limits
//
//	No weights, no parallel edges, no mutation API. The matrix encoding is
//	the whole model: a cell is either 0 or 1.
//
// Complexity (n = |Vertices|)
//
//   - Construction, Clone, Matrix, String, InDegrees: O(n²)
//   - HasEdge: O(1)
//
// Usage
//
//	g, err := digraph.FromMatrix([][]int{
//	    {0, 1, 0, 0},
//	    {0, 0, 1, 1},
//	    {0, 0, 0, 0},
//	    {0, 1, 0, 0},
//	})
//	if err != nil {
//	    // ErrRaggedMatrix or ErrBadCell, wrapped with row/column context
//	}
//	deg := g.InDegrees() // [0 2 1 1]
//
// Errors
//
//   - ErrRaggedMatrix    if a row's length differs from the row count.
//   - ErrBadCell         if a matrix entry is neither 0 nor 1.
//   - ErrNegativeCount   if a constructor receives a negative vertex count.
//   - ErrVertexRange     if an edge endpoint is outside [0, n).
//   - ErrTooFewVertices  if a generator needs more vertices than given.
package digraph

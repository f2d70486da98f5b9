// SPDX-License-Identifier: MIT
// Package: cyclo/digraph
//
// builders.go - deterministic shape generators: Ring(n), Path(n), Complete(n).
//
// Contract:
//   - Ring requires n ≥ 1 (else ErrTooFewVertices); Ring(1) is the single
//     self-loop graph, Ring(2) the two-vertex cycle.
//   - Path and Complete require n ≥ 0 (else ErrNegativeCount via FromEdges);
//     n == 0 yields the valid empty graph.
//   - Edges are emitted in stable increasing source order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Ring/Path: O(n) edges over O(n²) storage.
//   - Complete:  O(n²) edges and storage.
//
// Determinism:
//   - Vertex labels are fixed (0..n-1) and edge emission order is fixed,
//     so equal n always produces byte-identical graphs.

package digraph

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodRing     = "Ring"
	methodPath     = "Path"
	methodComplete = "Complete"
	minRingNodes   = 1
)

// Ring builds the directed cycle C_n: 0→1→…→(n-1)→0.
func Ring(n int) (*Digraph, error) {
	// Validate parameter domain early.
	if n < minRingNodes {
		// Preserve sentinel semantics with deterministic context message.
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
	}

	// Emit ring edges i→(i+1) mod n in increasing i; Ring(1) yields 0→0.
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{From: i, To: (i + 1) % n})
	}

	g, err := FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	return g, nil
}

// Path builds the simple directed path P_n: 0→1→…→(n-1). Acyclic for all n.
func Path(n int) (*Digraph, error) {
	// Emit path edges (i-1)→i in increasing i; n ≤ 1 emits none.
	var edges []Edge
	if n > 1 {
		edges = make([]Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, Edge{From: i - 1, To: i})
		}
	}

	g, err := FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	return g, nil
}

// Complete builds the complete directed graph K_n: every ordered pair u≠v.
// No self-loops are emitted, so K_n stays loop-free (and cyclic for n ≥ 2).
func Complete(n int) (*Digraph, error) {
	var edges []Edge
	if n > 1 {
		edges = make([]Edge, 0, n*(n-1))
		var u, v int
		for u = 0; u < n; u++ { // increasing source order
			for v = 0; v < n; v++ { // increasing target order
				if u == v {
					continue // keep the diagonal clear
				}
				edges = append(edges, Edge{From: u, To: v})
			}
		}
	}

	g, err := FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	return g, nil
}

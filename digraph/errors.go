// SPDX-License-Identifier: MIT
// Package digraph: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// digraph package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions.

package digraph

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "digraph: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned bare only when no
// position context exists; otherwise they are wrapped with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrRaggedMatrix is returned when an input row's length differs from
	// the number of rows, i.e. the matrix is not square.
	ErrRaggedMatrix = errors.New("digraph: matrix is not square")

	// ErrBadCell is returned when a matrix entry is neither 0 nor 1.
	ErrBadCell = errors.New("digraph: matrix cell is not 0 or 1")

	// ErrNegativeCount is returned when a constructor receives n < 0.
	ErrNegativeCount = errors.New("digraph: vertex count must be >= 0")

	// ErrVertexRange is returned when an edge endpoint lies outside [0, n).
	ErrVertexRange = errors.New("digraph: vertex out of range")

	// ErrTooFewVertices is returned by shape generators whose result is not
	// defined for the requested vertex count (e.g. a ring of zero vertices).
	ErrTooFewVertices = errors.New("digraph: too few vertices for this shape")
)

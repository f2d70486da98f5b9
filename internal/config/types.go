// Package config reads and validates YAML graph documents for the cyclo
// binary. A document carries exactly one of two forms: a full 0/1 adjacency
// matrix, or a vertex count plus an edge list. Library packages never touch
// configuration; this is a CLI-boundary concern.
package config

import (
	"errors"

	"github.com/katalvlaran/cyclo/digraph"
)

// Sentinel errors for document-form violations.
var (
	// ErrEmptyDocument is returned when a document describes no graph:
	// neither a matrix nor a vertex count is present.
	ErrEmptyDocument = errors.New("config: document describes no graph")

	// ErrBothForms is returned when a document mixes the matrix form with
	// the vertices/edges form; exactly one must be used.
	ErrBothForms = errors.New("config: matrix and edge forms are mutually exclusive")

	// ErrEdgesWithoutVertices is returned when edges are listed but the
	// vertex count is missing; the edge form needs both.
	ErrEdgesWithoutVertices = errors.New("config: edges listed without a vertex count")
)

// Document is one YAML graph description. The matrix form sets Matrix; the
// edge form sets Vertices (and optionally Edges). Vertices is a pointer so
// an explicit `vertices: 0` — the empty graph — stays distinguishable from
// an absent key; `matrix: []` expresses the same graph in matrix form.
type Document struct {
	// Name is an optional label echoed into logs.
	Name string `yaml:"name,omitempty" validate:"omitempty,max=120"`

	// Matrix is the square 0/1 adjacency matrix; cell [i][j] == 1 means a
	// directed edge i→j. Cell values are checked here, squareness is the
	// graph constructor's contract.
	Matrix [][]int `yaml:"matrix,omitempty" validate:"omitempty,dive,dive,zeroone"`

	// Vertices selects the edge form: the graph has *Vertices vertices
	// labeled 0..*Vertices-1.
	Vertices *int `yaml:"vertices,omitempty" validate:"omitempty,min=0"`

	// Edges lists the directed edges of the edge form; may be empty for a
	// graph of isolated vertices.
	Edges []EdgePair `yaml:"edges,omitempty" validate:"omitempty,dive"`
}

// EdgePair names one directed edge in the edge form.
type EdgePair struct {
	From int `yaml:"from" validate:"min=0"`
	To   int `yaml:"to" validate:"min=0"`
}

// Build converts a validated document into a digraph.Digraph, dispatching on
// the document form. Graph-shape violations (ragged matrix, out-of-range
// endpoints) surface as digraph sentinels — shape validation belongs to the
// constructor, not to this package.
func (d *Document) Build() (*digraph.Digraph, error) {
	switch {
	case d == nil:
		return nil, ErrEmptyDocument
	case d.Matrix != nil:
		return digraph.FromMatrix(d.Matrix)
	case d.Vertices != nil:
		edges := make([]digraph.Edge, len(d.Edges))
		for i, e := range d.Edges {
			edges[i] = digraph.Edge{From: e.From, To: e.To}
		}

		return digraph.FromEdges(*d.Vertices, edges)
	default:
		return nil, ErrEmptyDocument
	}
}

// Package kahn provides tunable options, result types and error definitions
// for in-degree based cycle detection over a digraph.Digraph.
package kahn

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for detection and sorting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("kahn: graph is nil")

	// ErrCycleDetected is returned by Sort when the graph cannot be
	// topologically ordered because it contains a cycle.
	ErrCycleDetected = errors.New("kahn: cycle detected")
)

// NoParent marks a vertex with no recorded predecessor in Result.Parent.
const NoParent = -1

// Verdict classifies a graph after one detection run.
type Verdict uint8

const (
	// VerdictEmpty is the distinguished answer for the zero-vertex graph;
	// it is deliberately neither acyclic nor cyclic.
	VerdictEmpty Verdict = iota

	// VerdictAcyclic means every vertex drained: a topological order exists.
	VerdictAcyclic

	// VerdictCyclic means at least one vertex never drained: a cycle exists.
	VerdictCyclic
)

// String implements fmt.Stringer for log- and report-friendly verdicts.
func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "empty"
	case VerdictAcyclic:
		return "acyclic"
	case VerdictCyclic:
		return "cyclic"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Option configures detection behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks that customize a detection run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a vertex's in-degree reaches zero and it
	// joins the work queue, including the initial seeding pass.
	OnEnqueue func(v int)

	// OnDequeue is called immediately before a vertex is processed.
	OnDequeue func(v int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks (OnEnqueue, OnDequeue).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run as a vertex joins the queue.
func WithOnEnqueue(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run as a vertex leaves the queue.
func WithOnDequeue(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of one detection run:
//   - Verdict: empty, acyclic or cyclic.
//   - Cycle: one witness cycle in edge direction, smallest vertex first;
//     nil unless cyclic, never empty when cyclic. Consecutive entries and
//     the wrap-around pair are all edges of the graph.
//   - Order: the dequeue sequence; a complete topological order when the
//     verdict is acyclic, the processed prefix when cyclic.
//   - Parent: per-vertex predecessor trace, NoParent where none was
//     recorded. This is NOT a predecessor tree: each relaxation overwrites
//     unconditionally, so only the last writer survives; for stuck vertices
//     it holds the highest-indexed stuck predecessor. Sufficient to find
//     some cycle, deliberately not a canonical one.
//   - Processed: vertices drained; equals VertexCount iff no cycle blocked.
//   - Stuck: ascending vertices whose in-degree never reached zero; nil
//     unless cyclic. Every entry lies on a cycle or downstream of one.
//
// All slices are nil when the verdict is VerdictEmpty.
type Result struct {
	Verdict   Verdict
	Cycle     []int
	Order     []int
	Parent    []int
	Processed int
	Stuck     []int
}

// FormatCycle renders a witness cycle as an arrow-joined closed walk,
// repeating the leading vertex at the end: "1 -> 3 -> 1".
// An empty cycle renders as the empty string.
func FormatCycle(cycle []int) string {
	if len(cycle) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range cycle {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" -> ")
	}
	// close the walk on the vertex it started from
	b.WriteString(strconv.Itoa(cycle[0]))

	return b.String()
}

// Package cyclo answers one question about a directed graph, fast and
// deterministically: does it contain a cycle — and if so, which one?
//
// 🚀 What is cyclo?
//
//	A small, focused library built around Kahn's algorithm:
//		• digraph/ — dense 0/1 adjacency-matrix model with strict validation
//		• kahn/    — cycle detection, witness reconstruction & topological sort
//
// ✨ Why choose cyclo?
//
//   - Deterministic – ascending vertex order everywhere; same input, same witness
//   - Honest verdicts – empty, acyclic and cyclic are three distinct answers
//   - Pure Go core – the algorithm packages carry zero dependencies
//   - Extensible – hooks (OnEnqueue, OnDequeue…) for tracing and metrics
//
// A graph is acyclic exactly when repeatedly removing zero-in-degree
// vertices removes everything; whatever refuses to drain pins down a cycle.
// cyclo reports that residue as a closed walk: 1 -> 3 -> 1.
//
// Quick ASCII example:
//
//	    0 ──▶ 1 ──▶ 2
//	          ▲     │
//	          └─────┘
//
//	vertex 0 drains, vertices 1 and 2 are stuck: the witness cycle is [1 2].
//
// The cyclo binary (cmd/cyclo) wraps the library for the command line:
// `cyclo check --config graph.yaml` classifies a YAML-described graph,
// `cyclo demo` walks three built-in showcase graphs.
//
//	go get github.com/katalvlaran/cyclo
package cyclo

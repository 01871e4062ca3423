// Package flowmatch computes maximum bipartite matchings by reducing them to
// single-commodity maximum flow.
//
// 🚀 What is flowmatch?
//
//	A small, dependency-light toolkit that brings together:
//		• matrix:   dense row-major int64 matrices for capacity, flow and residual
//		• flow:     Edmonds-Karp (BFS Ford-Fulkerson) with pluggable observers
//		• builder:  eligibility relation → unit-capacity flow network
//		• match:    matching extraction, Solve / SolveFile / SolveAll
//
// and a command, cmd/flowmatch, that reads a relation file and prints the
// matching as text, JSON, YAML or Graphviz DOT.
//
// Network layout for P left and J right entities:
//
//	         ┌── L1 ──┐
//	source ──┼── L2 ──┼── R1 ──┐
//	         └── …  ──┘   R2 ──┼── sink
//	                      …  ──┘
//
//	node 0 = source, 1..P = left, P+1..P+J = right, P+J+1 = sink;
//	every edge has capacity 1, so each entity is matched at most once.
//
// Quick example:
//
//	b := builder.NewNetworkBuilder()
//	_ = b.Add("A", "X", "Y")
//	_ = b.Add("B", "X")
//	ans, _ := match.Solve(b)
//	// ans.MaxFlow() == 2, ans.Map() == map[A:Y B:X]
//
//	go install github.com/katalvlaran/flowmatch/cmd/flowmatch@latest
package flowmatch

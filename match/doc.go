// Package match reads a maximum bipartite matching out of a solved flow
// network and wraps the whole pipeline (build, solve, extract) behind
// Solve, SolveFile and SolveAll.
//
// A left entity i is matched when flow[source][i] == 1; its partner is the
// single right entity j with flow[i][j] == 1. Unit capacities guarantee at
// most one such j, and the number of matches equals the max-flow value.
//
// Answers iterate in lexicographic order of left labels.
//
// Example:
//
//	b := builder.NewNetworkBuilder()
//	_ = b.Add("A", "X", "Y")
//	_ = b.Add("B", "X")
//	ans, err := match.Solve(b)
//	if err != nil {
//		return err
//	}
//	for _, p := range ans.Matches() {
//		fmt.Printf("%s-->%s\n", p.Left, p.Right)
//	}
package match

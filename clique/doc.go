// Package clique enumerates cliques of a simple undirected core.Graph.
//
// What
//
//   - All: plain backtracking. Reports every non-empty clique the search
//     reaches, maximal or not. Repeats are kept, never deduplicated.
//   - Maximal: Bron–Kerbosch with pivoting. Reports exactly the maximal cliques.
//   - Maximum: the largest maximal clique (first found on ties).
//   - Analyze: runs either algorithm and summarizes count, largest size and
//     cliques of at least a given size.
//
// Conventions
//
//   - A single vertex is a clique of size 1, so an edgeless graph with n ≥ 1
//     has n maximal cliques and a maximum clique of size 1.
//   - n == 0 yields no cliques and an empty maximum clique.
//   - Results are vset.Set values over the graph's own indices. Each search
//     works on g.Snapshot(); the input graph is never mutated.
//
// Options
//
//	clique.WithContext(ctx)   // checked once per search frame
//	clique.WithOnClique(fn)   // observe each clique; an error aborts
//	clique.WithLimit(k)       // stop quietly after k cliques
//
// Errors
//
//	ErrGraphNil, ErrDirected (both wrap the core sentinels), ErrOptionViolation,
//	ErrUnknownAlgorithm, ctx.Err(), or whatever OnClique returns.
//
// Complexity
//
//	Worst case O(3^(n/3)) maximal cliques (Moon–Moser), each found in O(n²).
//	Callers that need a bound should pass a context deadline or WithLimit.
package clique

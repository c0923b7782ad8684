// Package lvcover is an in-memory toolkit for the classic covering problems on
// small dense graphs: cliques, independent sets, bipartite matchings and
// minimum vertex covers.
//
// What is inside
//
//	• Core primitives: a thread-safe adjacency-matrix Graph with simple-graph guarantees
//	• Vertex sets: bounded insertion-ordered sets shared by every solver
//	• Cliques: exhaustive backtracking, Bron–Kerbosch with pivoting, maximum clique
//	• Independent sets: graph complement and maximum independent set
//	• Bipartite graphs: BFS two-coloring with conflict reporting
//	• Matchings: Hopcroft–Karp and a greedy maximal matching
//	• Vertex covers: exact (via MIS), König, MaxSAT and a 2-approximation
//
// Packages
//
//	core/        - Graph, Edge, options and sentinel errors
//	vset/        - Set: bounded vertex sets
//	clique/      - All, Maximal, Maximum, Analyze
//	independent/ - Complement, MaximumIndependentSet, MinimumVertexCover
//	bipartite/   - Partition, IsBipartite, ConflictError
//	matching/    - HopcroftKarp, MaximumBipartite, Greedy
//	cover/       - Solve and the individual strategies, Verify
//	builder/     - deterministic and seeded fixture graphs
//	converters/  - gonum bridge and YAML documents
//	cmd/lvcover  - command-line front end
//
// Quick start
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(4))
//	res, _ := cover.Solve(g, cover.Options{Strategy: cover.StrategyKonig})
//	fmt.Println(res.Cover) // {0, 2}
//
// The clique, independent-set and MaxSAT solvers are exponential in the worst
// case; the first two accept a context.Context for cancellation.
package lvcover

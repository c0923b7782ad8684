// Package cover builds vertex covers of a simple undirected core.Graph.
//
// A vertex cover is a set of vertices touching every edge. Four constructions
// share one output contract: a *vset.Set of vertex ids on which Verify succeeds.
//
//	Strategy        Graphs      Cost        Result
//	--------------  ----------  ----------  -------------------------------
//	ExactViaMIS     any         exponential minimum (V \ max independent set)
//	BipartiteKonig  bipartite   O(E·√V)     minimum (König's theorem)
//	Approx          any         O(n²)       ≤ 2 × minimum (maximal matching)
//	MaxSAT          any         exponential minimum (gophersat MaxSAT)
//
// König construction
//
//	After a maximum matching between the two sides, search from every free
//	left vertex: left → right along non-matching edges, right → left along
//	the matching edge. With Z the visited set, the cover is
//	(Left \ Z) ∪ (Right ∩ Z) and its size equals the matching size.
//
// Failure policy
//
//	Nil or directed graphs fail with ErrGraphNil / ErrDirected. Non-bipartite
//	input to BipartiteKonig fails with bipartite.ErrNotBipartite. A graph with
//	no vertices yields an empty cover from every strategy.
//
// Solve
//
//	res, err := cover.Solve(g, cover.Options{
//		Strategy: cover.StrategyKonig,
//		Ctx:      ctx,
//		Logger:   log, // optional, e.g. *logging.Logger
//	})
package cover

// Package builder assembles fixture graphs for the vertex-cover and clique
// solvers from small functional-options building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   create a core.Graph and run constructors in order.
//     – Apply:        run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption:        mutates builderConfig before use.
//     – WithSeed / WithRand:  RNG for the stochastic constructors.
//     – WithRegularAttempts:  bound on RandomRegular reshuffles.
//   - Deterministic constructors:
//     – Empty, Path, Cycle, Star, Wheel, Complete, CompleteBipartite.
//   - Stochastic constructors:
//     – RandomSparse (G(n,p)), RandomBipartite, RandomRegular.
//
// Guarantees:
//
//   - Composition: every constructor appends its vertices after those already
//     present, so BuildGraph(nil, nil, Cycle(4), Star(3)) is the disjoint union
//     C4 + K_{1,2} on vertices 0..6.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Invalid build parameters are reported before the graph is touched,
//     as sentinel errors wrapped with the constructor name.
//   - Same seed and same constructor order ⇒ identical graph.
package builder

// Package matching computes matchings on a simple undirected core.Graph.
//
// What
//
//   - HopcroftKarp: maximum matching between two disjoint vertex lists,
//     considering only edges that cross them. Result pairs are stored by list
//     position; Pairs() translates them back to vertex ids.
//   - MaximumBipartite: bipartite.Partition followed by HopcroftKarp.
//   - Greedy: an index-order maximal matching, the basis of the
//     2-approximate vertex cover.
//   - (*Matching).Validate: checks that both pair arrays mirror each other and
//     that every pair is a real edge.
//
// Usage
//
//	m, sides, err := matching.MaximumBipartite(g, matching.WithContext(ctx))
//	if err != nil {
//		// ErrGraphNil, ErrDirected, bipartite.ErrNotBipartite, ctx.Err()
//	}
//	for _, e := range m.Pairs() {
//		fmt.Println(e.From, "–", e.To)
//	}
//
// Complexity
//
//	HopcroftKarp runs O(√V) phases of O(E) each. Greedy is O(n²).
package matching

package matching

import "github.com/katalvlaran/lvcover/core"

// Greedy returns a maximal (not necessarily maximum) matching: vertices are
// scanned in index order and each free vertex takes its first free neighbor.
// No two free vertices remain adjacent afterwards.
//
// Errors: ErrGraphNil, ErrDirected.
// Complexity: O(n²).
func Greedy(g *core.Graph) ([]core.Edge, error) {
	if err := core.CheckUndirected("Greedy", g, ErrGraphNil, ErrDirected); err != nil {
		return nil, err
	}
	adj := g.Snapshot()
	matched := make([]bool, adj.Order())
	var out []core.Edge
	for u, row := range adj {
		if matched[u] {
			continue
		}
		for v, ok := range row {
			if ok && !matched[v] {
				matched[u], matched[v] = true, true
				out = append(out, core.Edge{From: u, To: v})
				break
			}
		}
	}

	return out, nil
}

package converters

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvcover/core"
)

// FromGonum copies an undirected gonum graph into a core.Graph.
// Nodes are re-indexed in ascending ID order; ids[i] is the gonum ID of
// vertex i.
//
// Errors: ErrGraphNil, or a wrapped core error (self-loops are rejected).
func FromGonum(src graph.Undirected) (*core.Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrGraphNil
	}

	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g, err := core.NewGraph(len(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", err)
	}
	for u, id := range ids {
		for _, nb := range graph.NodesOf(src.From(id)) {
			v := index[nb.ID()]
			if v < u {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, ids, nil
}

// ToGonum exports g as a simple.UndirectedGraph whose node IDs equal the
// vertex indices. Isolated vertices are kept.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if err := core.CheckUndirected("ToGonum", g, ErrGraphNil, ErrDirected); err != nil {
		return nil, err
	}

	dst := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return dst, nil
}

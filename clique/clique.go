// SPDX-License-Identifier: MIT
//
// File: clique.go
// Role: Exhaustive and pivoted (Bron–Kerbosch) clique enumeration over a
// private adjacency snapshot.
// Protocol:
//   - Every frame works on the triple C (current clique), P (candidates) and
//     X (excluded). Child P and X are fresh sets; C is shared and restored
//     with RemoveLast after each branch.

package clique

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

// errLimitReached stops the recursion when Options.Limit is hit; never escapes the package.
var errLimitReached = errors.New("clique: limit reached")

// search carries the per-call state of one enumeration.
type search struct {
	adj  core.Adjacency
	n    int
	opts Options
	out  []*vset.Set
}

// All enumerates cliques by plain backtracking.
//
// Implementation:
//   - Every frame with a non-empty C reports it, so every clique reachable
//     from the search order is reported, maximal or not.
//   - P is consumed front to back: branch on P[0] with P∩N(v), X∩N(v), then
//     move v from P to X preserving the order of the remaining candidates.
//   - A clique can be reported more than once; results are not deduplicated.
//
// Errors: ErrGraphNil, ErrDirected, ErrOptionViolation, ctx.Err(), hook errors.
// Complexity: exponential; O(3^(n/3)) frames for the maximal part alone.
func All(g *core.Graph, opts ...Option) ([]*vset.Set, error) {
	s, err := newSearch("All", g, opts)
	if err != nil {
		return nil, err
	}
	c, p, x := s.rootSets()
	if err = s.exhaustive(c, p, x); err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}

	return s.out, nil
}

// Maximal enumerates exactly the maximal cliques using Bron–Kerbosch with pivoting.
//
// Implementation:
//   - Report C when P and X are both empty.
//   - Pivot u: scan P then X, keep the first vertex with the strictly largest |N(u)∩P|.
//   - Branch only on a frozen copy of P \ N(u). After each branch v leaves P
//     (its slot is refilled by the last candidate) and joins X.
//
// An empty graph (n == 0) has no cliques.
//
// Errors: ErrGraphNil, ErrDirected, ErrOptionViolation, ctx.Err(), hook errors.
// Complexity: O(3^(n/3)) worst case.
func Maximal(g *core.Graph, opts ...Option) ([]*vset.Set, error) {
	s, err := newSearch("Maximal", g, opts)
	if err != nil {
		return nil, err
	}
	c, p, x := s.rootSets()
	if err = s.maximal(c, p, x); err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}

	return s.out, nil
}

// Maximum returns the largest maximal clique; ties go to the first one found.
// Singletons count as cliques, so an edgeless graph with n ≥ 1 yields one
// vertex. For n == 0 the result is an empty set.
func Maximum(g *core.Graph, opts ...Option) (*vset.Set, error) {
	all, err := Maximal(g, opts...)
	if err != nil {
		return nil, err
	}
	best := largest(all)
	if best == nil {
		return vset.New(0)
	}

	return best, nil
}

// Analyze runs the chosen algorithm and summarizes it: total count, largest
// size and every clique with at least minSize members.
//
// Errors: ErrUnknownAlgorithm, ErrOptionViolation if minSize < 0, plus those of All/Maximal.
func Analyze(g *core.Graph, algo Algorithm, minSize int, opts ...Option) (Summary, error) {
	if minSize < 0 {
		return Summary{}, fmt.Errorf("Analyze: %w: minSize cannot be negative (%d)", ErrOptionViolation, minSize)
	}
	var (
		all []*vset.Set
		err error
	)
	switch algo {
	case Exhaustive:
		all, err = All(g, opts...)
	case Pivot:
		all, err = Maximal(g, opts...)
	default:
		return Summary{}, fmt.Errorf("Analyze: %v: %w", algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Algorithm: algo, Count: len(all), MinSize: minSize}
	for _, c := range all {
		if c.Len() > sum.MaxSize {
			sum.MaxSize = c.Len()
		}
		if c.Len() >= minSize {
			sum.Cliques = append(sum.Cliques, c)
		}
	}

	return sum, nil
}

// IsClique reports whether every pair of distinct vertices in vs is adjacent in g.
// Out-of-range vertices make the answer false.
func IsClique(g *core.Graph, vs []int) bool {
	if g == nil {
		return false
	}
	n := g.Order()
	for i, u := range vs {
		if u < 0 || u >= n {
			return false
		}
		for _, v := range vs[i+1:] {
			if u != v && !g.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

// newSearch validates the graph, applies options and takes the snapshot.
func newSearch(method string, g *core.Graph, opts []Option) (*search, error) {
	if err := core.CheckUndirected(method, g, ErrGraphNil, ErrDirected); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", method, o.err)
	}
	adj := g.Snapshot()

	return &search{adj: adj, n: adj.Order(), opts: o}, nil
}

// rootSets returns C = ∅, P = {0..n-1}, X = ∅, each with capacity n.
func (s *search) rootSets() (c, p, x *vset.Set) {
	c, _ = vset.New(s.n)
	p, _ = vset.New(s.n)
	x, _ = vset.New(s.n)
	for v := 0; v < s.n; v++ {
		p.Add(v)
	}

	return c, p, x
}

func (s *search) exhaustive(c, p, x *vset.Set) error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}
	if c.Len() > 0 {
		if err := s.record(c); err != nil {
			return err
		}
	}

	for p.Len() > 0 {
		v := p.At(0)
		pp, xx := s.restrict(v, p), s.restrict(v, x)

		c.Add(v)
		err := s.exhaustive(c, pp, xx)
		c.RemoveLast()
		if err != nil {
			return err
		}

		p.Delete(v)
		x.Add(v)
	}

	return nil
}

func (s *search) maximal(c, p, x *vset.Set) error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}
	if p.Len() == 0 && x.Len() == 0 {
		if c.Len() == 0 {
			return nil
		}
		return s.record(c)
	}

	pivot, best := -1, -1
	for _, from := range [2]*vset.Set{p, x} {
		for i := 0; i < from.Len(); i++ {
			u := from.At(i)
			if k := s.countAdjacent(u, p); k > best {
				pivot, best = u, k
			}
		}
	}

	candidates := make([]int, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		if v := p.At(i); !s.adj[pivot][v] {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		pp, xx := s.restrict(v, p), s.restrict(v, x)

		c.Add(v)
		err := s.maximal(c, pp, xx)
		c.RemoveLast()
		if err != nil {
			return err
		}

		p.SwapDelete(v)
		x.Add(v)
	}

	return nil
}

// restrict returns the members of from adjacent to v, in from's order.
func (s *search) restrict(v int, from *vset.Set) *vset.Set {
	out, _ := vset.New(s.n)
	row := s.adj[v]
	for i := 0; i < from.Len(); i++ {
		if w := from.At(i); row[w] {
			out.Add(w)
		}
	}

	return out
}

// countAdjacent returns |N(u) ∩ p|.
func (s *search) countAdjacent(u int, p *vset.Set) int {
	k := 0
	row := s.adj[u]
	for i := 0; i < p.Len(); i++ {
		if row[p.At(i)] {
			k++
		}
	}

	return k
}

// record stores a right-sized copy of c and feeds it to the hook.
func (s *search) record(c *vset.Set) error {
	if s.opts.Limit > 0 && len(s.out) >= s.opts.Limit {
		return errLimitReached
	}
	found, err := vset.FromSlice(c.Len(), c.Vertices())
	if err != nil {
		return err
	}
	if err = s.opts.OnClique(found.Vertices()); err != nil {
		return err
	}
	s.out = append(s.out, found)

	return nil
}

// largest returns the first set of strictly maximum size, or nil if all are empty.
func largest(sets []*vset.Set) *vset.Set {
	var best *vset.Set
	size := 0
	for _, c := range sets {
		if c.Len() > size {
			best, size = c, c.Len()
		}
	}

	return best
}

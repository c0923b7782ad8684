package bipartite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// Sentinel errors for bipartite checks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("bipartite: %w", core.ErrGraphNil)

	// ErrDirected is returned for directed input.
	ErrDirected = fmt.Errorf("bipartite: %w", core.ErrDirected)

	// ErrNotBipartite is returned when an odd cycle exists.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")
)

// ConflictError reports the edge whose endpoints received the same side.
// It unwraps to ErrNotBipartite.
type ConflictError struct {
	U, V int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bipartite: edge %d–%d joins vertices of the same side", e.U, e.V)
}

// Unwrap lets errors.Is match ErrNotBipartite.
func (e *ConflictError) Unwrap() error {
	return ErrNotBipartite
}

// Side names one half of a partition.
type Side uint8

const (
	// Left holds every BFS root, isolated vertices included.
	Left Side = iota + 1
	// Right holds the vertices discovered across an edge from Left.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Sides is a pair of membership masks over 0..n-1.
// Invariant: for every v exactly one of Left[v], Right[v] is true.
type Sides struct {
	Left  []bool
	Right []bool
}

// LeftVertices returns the Left side in ascending order.
func (s *Sides) LeftVertices() []int { return collect(s.Left) }

// RightVertices returns the Right side in ascending order.
func (s *Sides) RightVertices() []int { return collect(s.Right) }

// Side returns which half v belongs to, or 0 if v is out of range.
func (s *Sides) Side(v int) Side {
	switch {
	case v < 0 || v >= len(s.Left):
		return 0
	case s.Left[v]:
		return Left
	default:
		return Right
	}
}

// Partition 2-colors g.
//
// Errors:
//   - ErrGraphNil, ErrDirected.
//   - *ConflictError (errors.Is ErrNotBipartite) on an odd cycle.
//
// Complexity: O(n²).
func Partition(g *core.Graph) (*Sides, error) {
	if err := core.CheckUndirected("Partition", g, ErrGraphNil, ErrDirected); err != nil {
		return nil, err
	}
	adj := g.Snapshot()
	n := adj.Order()

	color := make([]Side, n)
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if color[root] != 0 {
			continue
		}
		color[root] = Left
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj.Neighbors(u) {
				switch color[v] {
				case 0:
					color[v] = opposite(color[u])
					queue = append(queue, v)
				case color[u]:
					return nil, &ConflictError{U: u, V: v}
				}
			}
		}
	}

	sides := &Sides{Left: make([]bool, n), Right: make([]bool, n)}
	for v, c := range color {
		sides.Left[v] = c == Left
		sides.Right[v] = c == Right
	}

	return sides, nil
}

// IsBipartite reports whether Partition succeeds on g.
func IsBipartite(g *core.Graph) bool {
	_, err := Partition(g)

	return err == nil
}

func opposite(s Side) Side {
	if s == Left {
		return Right
	}

	return Left
}

func collect(mask []bool) []int {
	out := make([]int, 0, len(mask))
	for v, in := range mask {
		if in {
			out = append(out, v)
		}
	}

	return out
}

package cover

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/vset"
)

// MaxSAT returns a minimum vertex cover found by a MaxSAT solver.
//
// Encoding: one boolean x_v per non-isolated vertex; a hard clause (x_u ∨ x_v)
// per edge; a unit-weight soft clause ¬x_v per vertex, so the optimum cost is the
// cover size. A graph without edges short-circuits to the empty cover.
//
// Errors: ErrGraphNil, ErrDirected, ErrSolverFailed.
func MaxSAT(g *core.Graph) (*vset.Set, error) {
	if err := validate("MaxSAT", g); err != nil {
		return nil, err
	}
	n := g.Order()
	c, err := vset.New(n)
	if err != nil {
		return nil, err
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return c, nil
	}

	touched := make([]bool, n)
	constrs := make([]maxsat.Constr, 0, len(edges)+n)
	for _, e := range edges {
		constrs = append(constrs, maxsat.HardClause(maxsat.Var(varName(e.From)), maxsat.Var(varName(e.To))))
		touched[e.From], touched[e.To] = true, true
	}
	for v, ok := range touched {
		if ok {
			constrs = append(constrs, maxsat.SoftClause(maxsat.Not(varName(v))))
		}
	}

	model, _ := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, fmt.Errorf("MaxSAT: %w", ErrSolverFailed)
	}
	for v := 0; v < n; v++ {
		if model[varName(v)] {
			c.Add(v)
		}
	}

	return c, nil
}

func varName(v int) string {
	return "x" + strconv.Itoa(v)
}

package cover_test

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/cover"
)

// ExampleSolve compares the strategies on the star K1,3.
func ExampleSolve() {
	//	  1
	//	  │
	//	2─0─3
	g, _ := core.FromEdges(4, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}})
	for _, s := range []cover.Strategy{cover.StrategyExact, cover.StrategyKonig, cover.StrategyApprox} {
		res, err := cover.Solve(g, cover.Options{Strategy: s})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(s, res.Cover, res.Optimal)
	}
	// Output:
	// exact {0} true
	// konig {0} true
	// approx {0, 1} false
}

// ExampleVerify reports the first uncovered edge.
func ExampleVerify() {
	g, _ := core.FromEdges(3, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	fmt.Println(cover.Verify(g, []int{0}))
	// Output:
	// cover: edge 1–2 has no endpoint in the cover
}

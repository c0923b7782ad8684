package main

import "github.com/urfave/cli/v2"

var (
	// flagLogLevel sets the go-logging level for diagnostic output.
	flagLogLevel = cli.StringFlag{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
		Value:   "info",
	}

	// flagGraph names a YAML graph document; "-" reads stdin.
	flagGraph = cli.StringFlag{
		Name:    "graph",
		Aliases: []string{"g"},
		Usage:   "path to a YAML graph document (\"-\" for stdin)",
	}

	// flagGen describes a generated graph, e.g. "cycle:5+star:3".
	flagGen = cli.StringFlag{
		Name:  "gen",
		Usage: "generator recipe: name:args joined by '+' (empty:n path:n cycle:n star:n wheel:n complete:n kbip:n1,n2 sparse:n,p bipartite:n1,n2,p regular:n,d)",
	}

	// flagSeed feeds the stochastic generators.
	flagSeed = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for random generators",
		Value: 1,
	}

	// flagTimeout bounds the exponential searches.
	flagTimeout = cli.DurationFlag{
		Name:  "timeout",
		Usage: "abort the search after this long (0 = no limit)",
	}

	// flagStrategy selects the vertex cover strategy.
	flagStrategy = cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"s"},
		Usage:   "cover strategy: exact, konig, approx, maxsat or all",
		Value:   "exact",
	}

	// flagAlgorithm selects the clique enumeration algorithm.
	flagAlgorithm = cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "clique algorithm: pivot (maximal cliques) or exhaustive (every clique)",
		Value:   "pivot",
	}

	// flagMinSize filters the listed cliques.
	flagMinSize = cli.IntFlag{
		Name:  "min",
		Usage: "list only cliques with at least this many vertices",
		Value: 1,
	}

	// flagLimit caps the number of enumerated cliques.
	flagLimit = cli.IntFlag{
		Name:  "limit",
		Usage: "stop after this many cliques (0 = no limit)",
	}
)

// sourceFlags are shared by every command that reads a graph.
var sourceFlags = []cli.Flag{&flagGraph, &flagGen, &flagSeed}

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvcover/bipartite"
	"github.com/katalvlaran/lvcover/clique"
	"github.com/katalvlaran/lvcover/converters"
	"github.com/katalvlaran/lvcover/cover"
	"github.com/katalvlaran/lvcover/independent"
	"github.com/katalvlaran/lvcover/matching"
)

// strategyAll runs every cover strategy side by side.
const strategyAll = "all"

// cmdCover computes a vertex cover.
// lvcover cover --gen "cycle:4" --strategy all
var cmdCover = cli.Command{
	Action:      coverAction,
	Name:        "cover",
	Usage:       "Computes a vertex cover of the graph.",
	Description: "Builds a vertex cover with the selected strategy and verifies it covers every edge.",
	Flags:       append([]cli.Flag{&flagStrategy, &flagTimeout}, sourceFlags...),
}

// cmdClique enumerates cliques.
var cmdClique = cli.Command{
	Action:      cliqueAction,
	Name:        "clique",
	Usage:       "Enumerates cliques of the graph.",
	Description: "Lists maximal cliques (pivot) or every clique reached by backtracking (exhaustive).",
	Flags:       append([]cli.Flag{&flagAlgorithm, &flagMinSize, &flagLimit, &flagTimeout}, sourceFlags...),
}

// cmdIndependent finds a maximum independent set.
var cmdIndependent = cli.Command{
	Action:      independentAction,
	Name:        "mis",
	Usage:       "Finds a maximum independent set and its complementary cover.",
	Description: "Searches for a maximum clique of the complement graph.",
	Flags:       append([]cli.Flag{&flagTimeout}, sourceFlags...),
}

// cmdBipartite partitions the graph and matches across the sides.
var cmdBipartite = cli.Command{
	Action:      bipartiteAction,
	Name:        "bipartite",
	Usage:       "Two-colors the graph and computes a maximum matching.",
	Description: "Fails with the conflicting edge when the graph has an odd cycle.",
	Flags:       append([]cli.Flag{&flagTimeout}, sourceFlags...),
}

// cmdGenerate writes a generated graph as YAML.
// lvcover generate --gen "sparse:10,0.3" --seed 7 > g.yaml
var cmdGenerate = cli.Command{
	Action:      generateAction,
	Name:        "generate",
	Usage:       "Writes a generated graph as a YAML document.",
	Description: "The document can be fed back to any other command with --graph.",
	Flags:       []cli.Flag{&flagGen, &flagSeed},
}

// withTimeout derives the command context from --timeout.
func withTimeout(ctx *cli.Context) (context.Context, context.CancelFunc) {
	if d := ctx.Duration(flagTimeout.Name); d > 0 {
		return context.WithTimeout(ctx.Context, d)
	}

	return context.WithCancel(ctx.Context)
}

func coverAction(ctx *cli.Context) error {
	log := newLogger(ctx)
	g, err := loadGraph(ctx, log)
	if err != nil {
		return err
	}
	runCtx, cancel := withTimeout(ctx)
	defer cancel()

	name := strings.ToLower(strings.TrimSpace(ctx.String(flagStrategy.Name)))
	if name == strategyAll {
		rows := make([][]string, 0, 4)
		for _, s := range []cover.Strategy{cover.StrategyExact, cover.StrategyKonig, cover.StrategyApprox, cover.StrategyMaxSAT} {
			res, err := cover.Solve(g, cover.Options{Strategy: s, Ctx: runCtx, Logger: log})
			if err != nil {
				log.Warningf("strategy %s: %v", s, err)
				rows = append(rows, []string{s.String(), "-", strconv.FormatBool(s.Optimal()), "-", err.Error()})
				continue
			}
			rows = append(rows, []string{
				s.String(),
				strconv.Itoa(res.Cover.Len()),
				strconv.FormatBool(res.Optimal),
				strconv.Itoa(res.MatchingSize),
				res.Cover.String(),
			})
		}
		table(ctx.App.Writer, []string{"Strategy", "Size", "Optimal", "Matching", "Cover"}, rows)
		return nil
	}

	s, err := cover.ParseStrategy(name)
	if err != nil {
		return err
	}
	res, err := cover.Solve(g, cover.Options{Strategy: s, Ctx: runCtx, Logger: log})
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	output(w, "Strategy:\t%s\n", bold("%s", res.Strategy))
	output(w, "Optimal:\t%s\n", bold("%v", res.Optimal))
	output(w, "Size:\t\t%s\n", bold("%d", res.Cover.Len()))
	if res.MatchingSize > 0 {
		output(w, "Matching:\t%s\n", bold("%d", res.MatchingSize))
	}
	output(w, "Cover:\t\t%s\n", bold("%s", res.Cover))

	return nil
}

func cliqueAction(ctx *cli.Context) error {
	log := newLogger(ctx)
	g, err := loadGraph(ctx, log)
	if err != nil {
		return err
	}
	runCtx, cancel := withTimeout(ctx)
	defer cancel()

	var algo clique.Algorithm
	switch strings.ToLower(ctx.String(flagAlgorithm.Name)) {
	case clique.Pivot.String():
		algo = clique.Pivot
	case clique.Exhaustive.String():
		algo = clique.Exhaustive
	default:
		return fmt.Errorf("algorithm %q: %w", ctx.String(flagAlgorithm.Name), clique.ErrUnknownAlgorithm)
	}

	sum, err := clique.Analyze(g, algo, ctx.Int(flagMinSize.Name),
		clique.WithContext(runCtx), clique.WithLimit(ctx.Int(flagLimit.Name)))
	if err != nil {
		return err
	}
	log.Debugf("clique: algorithm=%s reported=%d listed=%d", sum.Algorithm, sum.Count, len(sum.Cliques))

	w := ctx.App.Writer
	output(w, "Algorithm:\t%s\n", bold("%s", sum.Algorithm))
	output(w, "Cliques:\t%s\n", bold("%d", sum.Count))
	output(w, "Max size:\t%s\n", bold("%d", sum.MaxSize))

	rows := make([][]string, 0, len(sum.Cliques))
	for i, c := range sum.Cliques {
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(c.Len()), c.String()})
	}
	table(w, []string{"#", "Size", "Vertices"}, rows)

	return nil
}

func independentAction(ctx *cli.Context) error {
	log := newLogger(ctx)
	g, err := loadGraph(ctx, log)
	if err != nil {
		return err
	}
	runCtx, cancel := withTimeout(ctx)
	defer cancel()

	mis, err := independent.MaximumIndependentSet(g, clique.WithContext(runCtx))
	if err != nil {
		return err
	}
	vc, err := independent.MinimumVertexCover(g, clique.WithContext(runCtx))
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	output(w, "Independent set:\t%s (%s)\n", bold("%s", mis), bold("%d", mis.Len()))
	output(w, "Vertex cover:\t\t%s (%s)\n", bold("%s", vc), bold("%d", vc.Len()))

	return nil
}

func bipartiteAction(ctx *cli.Context) error {
	log := newLogger(ctx)
	g, err := loadGraph(ctx, log)
	if err != nil {
		return err
	}
	runCtx, cancel := withTimeout(ctx)
	defer cancel()

	m, sides, err := matching.MaximumBipartite(g, matching.WithContext(runCtx))
	if err != nil {
		var conflict *bipartite.ConflictError
		if errors.As(err, &conflict) {
			log.Warningf("odd cycle through edge %d–%d", conflict.U, conflict.V)
		}
		return err
	}
	log.Debugf("matching: size=%d phases=%d", m.Size, m.Phases)

	w := ctx.App.Writer
	output(w, "Left:\t\t%s\n", bold("%v", sides.LeftVertices()))
	output(w, "Right:\t\t%s\n", bold("%v", sides.RightVertices()))
	output(w, "Matching:\t%s\n", bold("%d", m.Size))

	rows := make([][]string, 0, m.Size)
	for _, e := range m.Pairs() {
		rows = append(rows, []string{strconv.Itoa(e.From), strconv.Itoa(e.To)})
	}
	table(w, []string{"Left", "Right"}, rows)

	return nil
}

func generateAction(ctx *cli.Context) error {
	recipe := ctx.String(flagGen.Name)
	if recipe == "" {
		return errNoSource
	}
	g, err := generate(recipe, ctx.Int64(flagSeed.Name))
	if err != nil {
		return err
	}

	return converters.EncodeYAML(ctx.App.Writer, g)
}

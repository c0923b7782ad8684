package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/converters"
	"github.com/katalvlaran/lvcover/core"
)

var (
	errNoSource     = errors.New("either --graph or --gen is required")
	errBothSources  = errors.New("--graph and --gen are mutually exclusive")
	errBadGenerator = errors.New("invalid generator recipe")
)

// loadGraph resolves the graph named by --graph or --gen.
func loadGraph(ctx *cli.Context, log *logging.Logger) (*core.Graph, error) {
	path, recipe := ctx.String(flagGraph.Name), ctx.String(flagGen.Name)
	switch {
	case path == "" && recipe == "":
		return nil, errNoSource
	case path != "" && recipe != "":
		return nil, errBothSources
	}

	var (
		g   *core.Graph
		err error
	)
	if recipe != "" {
		g, err = generate(recipe, ctx.Int64(flagSeed.Name))
	} else {
		g, err = readGraph(ctx.App.Reader, path)
	}
	if err != nil {
		return nil, err
	}
	log.Infof("graph loaded: n=%d edges=%d directed=%v", g.Order(), g.EdgeCount(), g.Directed())

	return g, nil
}

// readGraph decodes a YAML document from path, or from stdin for "-".
func readGraph(stdin io.Reader, path string) (*core.Graph, error) {
	if path == "-" {
		return converters.DecodeYAML(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := converters.DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// generate builds the disjoint union of every step of the recipe.
func generate(recipe string, seed int64) (*core.Graph, error) {
	var cons []builder.Constructor
	for _, step := range strings.Split(recipe, "+") {
		c, err := parseStep(strings.TrimSpace(step))
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}

	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, cons...)
}

// parseStep turns "name:a,b" into its constructor.
func parseStep(step string) (builder.Constructor, error) {
	name, rawArgs, _ := strings.Cut(step, ":")
	var args []string
	if rawArgs != "" {
		args = strings.Split(rawArgs, ",")
	}

	var (
		p    = stepParser{step: step, args: args}
		c    builder.Constructor
		want int
	)
	switch strings.ToLower(name) {
	case "empty":
		c, want = builder.Empty(p.intArg(0)), 1
	case "path":
		c, want = builder.Path(p.intArg(0)), 1
	case "cycle":
		c, want = builder.Cycle(p.intArg(0)), 1
	case "star":
		c, want = builder.Star(p.intArg(0)), 1
	case "wheel":
		c, want = builder.Wheel(p.intArg(0)), 1
	case "complete":
		c, want = builder.Complete(p.intArg(0)), 1
	case "kbip":
		c, want = builder.CompleteBipartite(p.intArg(0), p.intArg(1)), 2
	case "sparse":
		c, want = builder.RandomSparse(p.intArg(0), p.floatArg(1)), 2
	case "bipartite":
		c, want = builder.RandomBipartite(p.intArg(0), p.intArg(1), p.floatArg(2)), 3
	case "regular":
		c, want = builder.RandomRegular(p.intArg(0), p.intArg(1)), 2
	default:
		return nil, fmt.Errorf("%q: unknown generator %q: %w", step, name, errBadGenerator)
	}
	if err := p.done(want); err != nil {
		return nil, err
	}

	return c, nil
}

// stepParser reads positional arguments and remembers the first failure.
type stepParser struct {
	step string
	args []string
	err  error
}

func (p *stepParser) arg(i int) string {
	if i >= len(p.args) {
		if p.err == nil {
			p.err = fmt.Errorf("%q: missing argument #%d: %w", p.step, i+1, errBadGenerator)
		}
		return ""
	}

	return strings.TrimSpace(p.args[i])
}

func (p *stepParser) intArg(i int) int {
	s := p.arg(i)
	v, err := strconv.Atoi(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%q: argument #%d: %v: %w", p.step, i+1, err, errBadGenerator)
	}

	return v
}

func (p *stepParser) floatArg(i int) float64 {
	s := p.arg(i)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%q: argument #%d: %v: %w", p.step, i+1, err, errBadGenerator)
	}

	return v
}

// done reports the first parse failure or an argument count mismatch.
func (p *stepParser) done(want int) error {
	if p.err != nil {
		return p.err
	}
	if len(p.args) != want {
		return fmt.Errorf("%q: want %d arguments, got %d: %w", p.step, want, len(p.args), errBadGenerator)
	}

	return nil
}

// Package main defines the lvcover entry point: vertex cover, clique,
// independent set and bipartite matching tools over YAML or generated graphs.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is the CLI release reported by --version.
const Version = "0.3.0"

// newApp assembles the application and all of its sub-commands.
func newApp() *cli.App {
	return &cli.App{
		Name:      "lvcover",
		HelpName:  "lvcover",
		Usage:     "finds vertex covers, cliques, independent sets and bipartite matchings",
		Copyright: "(c) 2025 katalvlaran",
		Version:   Version,
		Flags: []cli.Flag{
			&flagLogLevel,
		},
		Commands: []*cli.Command{
			&cmdCover,
			&cmdClique,
			&cmdIndependent,
			&cmdBipartite,
			&cmdGenerate,
		},
	}
}

// main implements the lvcover application entry point
func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

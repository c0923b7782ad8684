package converters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

var (
	// ErrGraphNil mirrors core.ErrGraphNil for converter inputs.
	ErrGraphNil = fmt.Errorf("converters: %w", core.ErrGraphNil)

	// ErrDirected mirrors core.ErrDirected; gonum export is undirected only.
	ErrDirected = fmt.Errorf("converters: %w", core.ErrDirected)

	// ErrMalformedEdge indicates a document edge that is not a vertex pair.
	ErrMalformedEdge = errors.New("converters: edge must list exactly two vertices")

	// ErrDecode indicates the YAML stream could not be parsed.
	ErrDecode = errors.New("converters: cannot decode graph document")
)

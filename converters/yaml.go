package converters

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcover/core"
)

// Document is the on-disk form of a graph:
//
//	order: 4
//	edges: [[0, 1], [1, 2], [2, 3], [0, 3]]
//
// Directed and Bidirectional map onto core.WithDirected and
// core.WithBidirectional; both default to false.
type Document struct {
	Order         int     `yaml:"order"`
	Directed      bool    `yaml:"directed,omitempty"`
	Bidirectional bool    `yaml:"bidirectional,omitempty"`
	Edges         [][]int `yaml:"edges,flow"`
}

// NewDocument captures g in edge-list form.
func NewDocument(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	doc := &Document{
		Order:         g.Order(),
		Directed:      g.Directed(),
		Bidirectional: g.Bidirectional(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []int{e.From, e.To})
	}

	return doc, nil
}

// Graph materializes the document. Repeated edges collapse into one.
//
// Errors: ErrMalformedEdge, or a wrapped core error for negative order,
// out-of-range vertices and self-loops.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Bidirectional {
		opts = append(opts, core.WithBidirectional())
	}
	edges := make([]core.Edge, 0, len(d.Edges))
	for i, pair := range d.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("edge #%d %v: %w", i, pair, ErrMalformedEdge)
		}
		edges = append(edges, core.Edge{From: pair[0], To: pair[1]})
	}

	return core.FromEdges(d.Order, edges, opts...)
}

// DecodeYAML reads one Document from r and builds its graph.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc.Graph()
}

// EncodeYAML writes g to w as a Document.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	doc, err := NewDocument(g)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

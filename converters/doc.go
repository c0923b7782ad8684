// Package converters moves core.Graph values across package and process
// boundaries:
//   - gonum/graph: FromGonum / ToGonum bridge to simple.UndirectedGraph,
//     used as an independent oracle for clique enumeration.
//   - YAML: Document, DecodeYAML and EncodeYAML give the lvcover CLI a
//     plain-text graph format.
//
// Vertices are always dense indices 0..n-1; FromGonum returns the original
// node IDs alongside so callers can map results back.
package converters

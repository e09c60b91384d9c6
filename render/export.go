package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// JSONRenderer serializes the laid-out graph as indented JSON.
type JSONRenderer struct{}

// Name returns the backend's format name.
func (r *JSONRenderer) Name() string { return "json" }

// Render emits nodes and edges in id order so output is stable across runs.
func (r *JSONRenderer) Render(g *models.Graph, opts *Options) ([]byte, error) {
	type jsonGraph struct {
		UID   string         `json:"uid"`
		Name  string         `json:"name"`
		Nodes []*models.Node `json:"nodes"`
		Edges []*models.Edge `json:"edges"`
	}

	out := jsonGraph{UID: g.UID, Name: g.Name}
	for _, id := range g.SortedNodeIDs() {
		out.Nodes = append(out.Nodes, g.Nodes[id])
	}
	for _, id := range g.SortedEdgeIDs() {
		out.Edges = append(out.Edges, g.Edges[id])
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	return data, nil
}

// DOTRenderer exports the graph in Graphviz DOT format. Positions are
// attached as pos attributes so layout survives the export.
type DOTRenderer struct{}

// Name returns the backend's format name.
func (r *DOTRenderer) Name() string { return "dot" }

// Render emits a digraph with one node statement per node and one edge
// statement per edge.
func (r *DOTRenderer) Render(g *models.Graph, opts *Options) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "digraph %q {\n", g.Name)
	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		fmt.Fprintf(&buf, "  n%d [label=%q, pos=\"%.2f,%.2f\"];\n", n.ID, n.Label, n.Pos.X, n.Pos.Y)
	}
	for _, id := range g.SortedEdgeIDs() {
		e := g.Edges[id]
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", e.From, e.To, e.Label)
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

package render

import (
	"bytes"
	"fmt"

	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// Node and edge colors. Hovered nodes, and edges touching a hovered node,
// render in the highlight color.
const (
	nodeFill      = "#4285f4"
	nodeStroke    = "#2a2a2a"
	edgeStroke    = "#888888"
	highlightFill = "#ea4335"
	labelFill     = "#333333"
)

// SVGRenderer produces a standalone SVG snapshot of the graph.
type SVGRenderer struct{}

// Name returns the backend's format name.
func (r *SVGRenderer) Name() string { return "svg" }

// Render draws edges first, then nodes, then labels, so nodes sit on top of
// their edges and labels stay legible.
func (r *SVGRenderer) Render(g *models.Graph, opts *Options) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)

	for _, id := range g.SortedEdgeIDs() {
		e := g.Edges[id]
		from, ok := g.Nodes[e.From]
		if !ok {
			continue
		}
		to, ok := g.Nodes[e.To]
		if !ok {
			continue
		}
		x1, y1 := project(from.Pos, opts.Bound, opts.Width, opts.Height)
		x2, y2 := project(to.Pos, opts.Bound, opts.Width, opts.Height)

		stroke := edgeStroke
		if highlighted(e.From, opts) || highlighted(e.To, opts) {
			stroke = highlightFill
		}
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5"/>`+"\n",
			x1, y1, x2, y2, stroke)
	}

	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		x, y := project(n.Pos, opts.Bound, opts.Width, opts.Height)

		fill := nodeFill
		if highlighted(id, opts) {
			fill = highlightFill
		}
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%g" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			x, y, opts.NodeSize, fill, nodeStroke)

		if opts.ShowLabels {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="12" fill="%s">%s</text>`+"\n",
				x+opts.NodeSize+3, y+4, labelFill, escapeXML(n.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

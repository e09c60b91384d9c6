package render

import (
	"bytes"

	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// Glyphs used by the character-canvas renderer.
const (
	GlyphNode    = '●'
	GlyphHovered = '◉'
	GlyphEdge    = '·'
)

// ASCIIRenderer projects the graph onto a character canvas. The interactive
// demo uses the same canvas logic through Canvas to apply its own styling.
type ASCIIRenderer struct {
	// Columns and Rows set the canvas size; zero values fall back to 80x40.
	Columns int
	Rows    int
}

// Name returns the backend's format name.
func (r *ASCIIRenderer) Name() string { return "ascii" }

// Render draws the graph and returns the canvas joined with newlines.
func (r *ASCIIRenderer) Render(g *models.Graph, opts *Options) ([]byte, error) {
	cols, rows := r.Columns, r.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 40
	}

	canvas := Canvas(g, opts, cols, rows)

	var buf bytes.Buffer
	for _, row := range canvas {
		buf.WriteString(string(row))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Canvas projects the graph onto a cols x rows rune grid: edges as dotted
// lines, nodes as filled circles (hovered nodes with a distinct glyph), and
// labels to the right of each node when they fit.
func Canvas(g *models.Graph, opts *Options, cols, rows int) [][]rune {
	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, cols)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	cell := func(n *models.Node) (int, int) {
		x, y := project(n.Pos, opts.Bound, float64(cols-1), float64(rows-1))
		return int(x + 0.5), int(y + 0.5)
	}

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
		x1, y1 := cell(from)
		x2, y2 := cell(to)
		drawLine(canvas, cols, rows, x1, y1, x2, y2, GlyphEdge)
	}

	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		x, y := cell(n)

		glyph := GlyphNode
		if highlighted(id, opts) {
			glyph = GlyphHovered
		}
		set(canvas, x, y, glyph, cols, rows)

		if opts.ShowLabels {
			for i, r := range n.Label {
				set(canvas, x+2+i, y, r, cols, rows)
			}
		}
	}

	return canvas
}

func set(canvas [][]rune, x, y int, c rune, cols, rows int) {
	if x >= 0 && x < cols && y >= 0 && y < rows {
		canvas[y][x] = c
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm.
func drawLine(canvas [][]rune, cols, rows, x1, y1, x2, y2 int, c rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		set(canvas, x1, y1, c, cols, rows)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

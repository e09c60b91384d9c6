// Package render turns a laid-out graph into output artifacts. Rendering is
// a pure projection: nothing here feeds back into the simulation.
package render

import (
	"fmt"
	"strings"

	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// Options configures rendering output.
type Options struct {
	Width      float64         // output width in pixels (SVG)
	Height     float64         // output height in pixels (SVG)
	Bound      float64         // side length of the graph's layout square
	Background string          // background color
	NodeSize   float64         // node draw radius
	ShowLabels bool            // draw node labels
	Highlight  []models.NodeID // nodes to render hovered
}

// NewDefaultOptions returns options matching the interactive demo's layout
// square and draw radius.
func NewDefaultOptions() *Options {
	return &Options{
		Width:      800,
		Height:     800,
		Bound:      600,
		Background: "#f8f8f8",
		NodeSize:   10,
		ShowLabels: true,
	}
}

// Renderer is a rendering backend.
type Renderer interface {
	// Render produces the output artifact for the graph.
	Render(g *models.Graph, opts *Options) ([]byte, error)

	// Name returns the backend's format name.
	Name() string
}

// GetRenderer returns the backend for the given format.
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "ascii":
		return &ASCIIRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "dot":
		return &DOTRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// project maps a graph-space point (y up, origin bottom-left of the layout
// square) onto an output surface of the given size (y down, origin top-left).
func project(p geometry.Point, bound, width, height float64) (float64, float64) {
	return p.X / bound * width, (bound - p.Y) / bound * height
}

// highlighted reports whether id is in the highlight set.
func highlighted(id models.NodeID, opts *Options) bool {
	for _, h := range opts.Highlight {
		if h == id {
			return true
		}
	}
	return false
}

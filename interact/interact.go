// Package interact is the per-frame entry point of the application. Each
// frame the host supplies the elapsed time and pointer state; Step either
// advances the physics simulation or performs hit testing and drag editing,
// depending on the current mode, and reports which nodes the host should
// highlight.
//
// The model is single-threaded and single-writer: the caller owns the State
// and threads it through Step sequentially. Nothing here retains state
// across calls.
package interact

import (
	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
	"github.com/deadfoxygrandpa/phybas-graviz/physics"
)

const (
	// TargetFPS is the frame rate the host clock aims for.
	TargetFPS = 30.0
	// MaxFrameDelta is the stability guard against huge timesteps after a
	// stall: frames whose elapsed time exceeds the target period by more
	// than half a period are dropped rather than integrated.
	MaxFrameDelta = 1.5 / TargetFPS
	// BoundSize is the side length of the square layout area. Pointer
	// coordinates arriving from the host are already clamped into it.
	BoundSize = 600.0
	// HitRadius is the node draw radius used for pointer hit testing. It
	// matches the radius the rendering collaborators draw nodes with.
	HitRadius = 10.0
)

// Frame carries one frame's worth of host input. Pointer is already in graph
// space: origin at the center of the layout square, y axis flipped relative
// to raw device coordinates, clamped to the layout bounds.
type Frame struct {
	DT          float64
	Running     bool
	PointerDown bool
	Pointer     geometry.Point
}

// Step advances the program by one frame and returns the next state along
// with the nodes currently under the pointer. The returned state is the same
// graph mutated in place; the State value itself carries the mode and drag
// bookkeeping forward.
func Step(st models.State, f Frame) (models.State, []models.NodeID) {
	if f.Running {
		// The keyboard toggle wins over any drag in progress.
		st.Mode = models.ModeSimulation
		st.Selected = models.NoNode
		st.Dragging = false
	} else {
		st.Mode = models.ModeEdit
	}

	switch st.Mode {
	case models.ModeSimulation:
		if f.DT <= MaxFrameDelta {
			physics.Step(st.Graph, f.DT)
		}
		return st, HitTest(st, f.Pointer)
	case models.ModeEdit:
		return stepEdit(st, f)
	}
	return st, nil
}

// stepEdit runs the edit-mode state machine for one frame.
func stepEdit(st models.State, f Frame) (models.State, []models.NodeID) {
	switch {
	case st.Dragging && f.PointerDown:
		// Active drag: pin the node to the pointer, bypassing the
		// integrator entirely. Velocity is deliberately untouched so the
		// node resumes its motion when simulation restarts.
		if n, ok := st.Graph.Nodes[st.Selected]; ok {
			n.Pos = f.Pointer
		}
		return st, []models.NodeID{st.Selected}

	case st.Dragging && !f.PointerDown:
		// Drag released. The node is reported hovered for one more frame
		// for highlight continuity, then the selection clears.
		released := st.Selected
		st.Selected = models.NoNode
		st.Dragging = false
		return st, []models.NodeID{released}

	case f.PointerDown:
		// Fresh press: pick at most one node under the pointer.
		hits := HitTest(st, f.Pointer)
		if len(hits) == 0 {
			return st, nil
		}
		st.Selected = hits[0]
		st.Dragging = true
		if n, ok := st.Graph.Nodes[st.Selected]; ok {
			n.Pos = f.Pointer
		}
		return st, []models.NodeID{st.Selected}

	default:
		return st, HitTest(st, f.Pointer)
	}
}

// HitTest returns the nodes whose draw radius contains the pointer, in
// ascending id order. While a drag is active the result is short-circuited
// to the dragged node regardless of where the pointer has moved, so a drag
// sticks even when the pointer outruns the node.
func HitTest(st models.State, pointer geometry.Point) []models.NodeID {
	if st.Dragging && st.Selected != models.NoNode {
		return []models.NodeID{st.Selected}
	}
	var hits []models.NodeID
	for _, id := range st.Graph.SortedNodeIDs() {
		if st.Graph.Nodes[id].Pos.Sub(pointer).Mag() <= HitRadius {
			hits = append(hits, id)
		}
	}
	return hits
}

// ToGraphSpace translates raw device coordinates into graph space: the
// origin moves to the center of the layout square, the y axis flips to match
// the simulation's orientation, and the result is clamped to the layout
// bounds. Hosts call this on pointer positions before building a Frame.
func ToGraphSpace(x, y, width, height float64) geometry.Point {
	gx := (x-width/2)*(BoundSize/width) + BoundSize/2
	gy := (height/2-y)*(BoundSize/height) + BoundSize/2
	return geometry.Point{X: gx, Y: gy}.Clamp(BoundSize)
}

// Package models provides the graph data structures shared by the physics
// simulation, the interaction layer, and the rendering collaborators.
package models

import (
	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
)

// NodeID identifies a node within a single graph. IDs are assigned by the
// graph-construction collaborator, never by the simulation core.
type NodeID int64

// EdgeID identifies an edge within a single graph.
type EdgeID int64

// NoNode is the NodeID used when no node is selected.
const NoNode NodeID = -1

// Node is a labeled point mass in the simulation. Out and In hold the ids of
// the edges leaving and entering the node; both sets are built once at
// construction time and treated as read-only afterwards.
type Node struct {
	ID    NodeID              `json:"id"`
	Label string              `json:"label"`
	Pos   geometry.Point      `json:"pos"`
	Vel   geometry.Vector     `json:"vel"`
	Out   map[EdgeID]struct{} `json:"-"`
	In    map[EdgeID]struct{} `json:"-"`
}

// Edge is a directed, labeled connection between two nodes. The physics
// simulation treats any edge between a pair of nodes as a bidirectional
// spring regardless of its direction.
type Edge struct {
	ID    EdgeID `json:"id"`
	From  NodeID `json:"from"`
	To    NodeID `json:"to"`
	Label string `json:"label"`
}

// Graph is a collection of nodes and edges with denormalized adjacency sets
// on both sides for O(1) adjacency tests.
type Graph struct {
	UID   string           `json:"uid"`
	Name  string           `json:"name"`
	Nodes map[NodeID]*Node `json:"nodes"`
	Edges map[EdgeID]*Edge `json:"edges"`
}

// Mode selects the per-frame behavior of the program.
type Mode int

const (
	// ModeSimulation advances the physics integrator every frame.
	ModeSimulation Mode = iota
	// ModeEdit pauses the integrator and lets the pointer drag nodes.
	ModeEdit
)

// String returns the mode name for logging and status display.
func (m Mode) String() string {
	switch m {
	case ModeSimulation:
		return "simulation"
	case ModeEdit:
		return "edit"
	}
	return "unknown"
}

// State is the single program state owned by the host application and
// threaded through the frame step sequentially. Selected and Dragging encode
// the Edit-mode drag: Selected is NoNode unless a drag is active.
type State struct {
	Graph    *Graph
	Mode     Mode
	Selected NodeID
	Dragging bool
}

// NewState wraps g in an initial simulation-mode state.
func NewState(g *Graph) State {
	return State{Graph: g, Mode: ModeSimulation, Selected: NoNode}
}

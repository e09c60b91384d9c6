package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrDanglingEdge indicates an edge referencing a node that is not in
	// the graph.
	ErrDanglingEdge = errors.New("models: edge references missing node")
	// ErrDanglingAdjacency indicates an adjacency set entry referencing a
	// missing edge, or an edge missing from the sets it should appear in.
	ErrDanglingAdjacency = errors.New("models: adjacency set out of sync with edge table")
)

// NewGraph creates an empty named graph with a unique UID.
func NewGraph(name string) *Graph {
	return &Graph{
		UID:   uuid.New().String(),
		Name:  name,
		Nodes: make(map[NodeID]*Node),
		Edges: make(map[EdgeID]*Edge),
	}
}

// NewNode creates an unconnected node. Position and velocity start at zero;
// initial placement is the caller's concern.
func NewNode(id NodeID, label string) *Node {
	return &Node{
		ID:    id,
		Label: label,
		Out:   make(map[EdgeID]struct{}),
		In:    make(map[EdgeID]struct{}),
	}
}

// AddNode inserts n into the graph.
func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
}

// Connect adds a directed edge and records it in the source's outgoing set
// and the target's incoming set, keeping both sides of the adjacency cache in
// sync. Both endpoints must already be in the graph.
func (g *Graph) Connect(id EdgeID, from, to NodeID, label string) (*Edge, error) {
	src, ok := g.Nodes[from]
	if !ok {
		return nil, fmt.Errorf("%w: source %d", ErrDanglingEdge, from)
	}
	dst, ok := g.Nodes[to]
	if !ok {
		return nil, fmt.Errorf("%w: target %d", ErrDanglingEdge, to)
	}

	e := &Edge{ID: id, From: from, To: to, Label: label}
	g.Edges[id] = e
	src.Out[id] = struct{}{}
	dst.In[id] = struct{}{}
	return e, nil
}

// Validate checks the adjacency-consistency invariant: every edge appears in
// exactly the outgoing set of its source and the incoming set of its target,
// and no adjacency set references a missing edge. Graphs handed to the
// simulation core must pass; the core itself never re-checks or repairs.
func (g *Graph) Validate() error {
	for id, e := range g.Edges {
		src, ok := g.Nodes[e.From]
		if !ok {
			return fmt.Errorf("%w: edge %d source %d", ErrDanglingEdge, id, e.From)
		}
		dst, ok := g.Nodes[e.To]
		if !ok {
			return fmt.Errorf("%w: edge %d target %d", ErrDanglingEdge, id, e.To)
		}
		if _, ok := src.Out[id]; !ok {
			return fmt.Errorf("%w: edge %d missing from node %d outgoing set", ErrDanglingAdjacency, id, e.From)
		}
		if _, ok := dst.In[id]; !ok {
			return fmt.Errorf("%w: edge %d missing from node %d incoming set", ErrDanglingAdjacency, id, e.To)
		}
	}
	for _, n := range g.Nodes {
		for id := range n.Out {
			e, ok := g.Edges[id]
			if !ok || e.From != n.ID {
				return fmt.Errorf("%w: node %d outgoing edge %d", ErrDanglingAdjacency, n.ID, id)
			}
		}
		for id := range n.In {
			e, ok := g.Edges[id]
			if !ok || e.To != n.ID {
				return fmt.Errorf("%w: node %d incoming edge %d", ErrDanglingAdjacency, n.ID, id)
			}
		}
	}
	return nil
}

package models

import (
	"fmt"
	"sort"
)

// FindNodeByID returns the node with the given id.
func (g *Graph) FindNodeByID(id NodeID) (*Node, error) {
	n, ok := g.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("node with ID %d not found", id)
	}
	return n, nil
}

// FindEdgeByID returns the edge with the given id.
func (g *Graph) FindEdgeByID(id EdgeID) (*Edge, error) {
	e, ok := g.Edges[id]
	if !ok {
		return nil, fmt.Errorf("edge with ID %d not found", id)
	}
	return e, nil
}

// Connected reports whether any edge joins a and b, in either direction. The
// spring force treats every such edge as bidirectional, so a single test
// covers both orientations.
func (g *Graph) Connected(a, b NodeID) bool {
	na, ok := g.Nodes[a]
	if !ok {
		return false
	}
	for id := range na.Out {
		if g.Edges[id].To == b {
			return true
		}
	}
	for id := range na.In {
		if g.Edges[id].From == b {
			return true
		}
	}
	return false
}

// ConnectingEdges returns every edge between a and b regardless of direction.
func (g *Graph) ConnectingEdges(a, b NodeID) []*Edge {
	na, ok := g.Nodes[a]
	if !ok {
		return nil
	}
	var edges []*Edge
	for id := range na.Out {
		if e := g.Edges[id]; e.To == b {
			edges = append(edges, e)
		}
	}
	for id := range na.In {
		if e := g.Edges[id]; e.From == b {
			edges = append(edges, e)
		}
	}
	return edges
}

// Neighbors returns the ids of all nodes sharing an edge with id, sorted for
// deterministic iteration.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	n, ok := g.Nodes[id]
	if !ok {
		return nil
	}
	seen := make(map[NodeID]struct{})
	for eid := range n.Out {
		seen[g.Edges[eid].To] = struct{}{}
	}
	for eid := range n.In {
		seen[g.Edges[eid].From] = struct{}{}
	}
	delete(seen, id)

	out := make([]NodeID, 0, len(seen))
	for nid := range seen {
		out = append(out, nid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortedNodeIDs returns every node id in ascending order. Map iteration order
// is not deterministic, so anything that needs a stable order (hit testing,
// rendering, tests) goes through this.
func (g *Graph) SortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedEdgeIDs returns every edge id in ascending order.
func (g *Graph) SortedEdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(g.Edges))
	for id := range g.Edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

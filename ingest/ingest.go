// Package ingest builds graphs from declarative descriptions: in-memory
// node/edge record lists and a plain text interchange format. It is the only
// place node and edge identifiers are assigned; every graph it produces
// satisfies the adjacency-consistency invariant the simulation core relies
// on, so the core never validates or repairs graphs itself.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

var (
	// ErrDuplicateNode indicates a node id appearing twice in the input.
	ErrDuplicateNode = errors.New("ingest: duplicate node id")
	// ErrUnknownEndpoint indicates an edge referencing a node id that was
	// never declared.
	ErrUnknownEndpoint = errors.New("ingest: edge references unknown node")
	// ErrMalformedRecord indicates a text line that does not parse as a
	// node or edge record.
	ErrMalformedRecord = errors.New("ingest: malformed record")
	// ErrMissingSeparator indicates text input with no node/edge separator
	// line.
	ErrMissingSeparator = errors.New("ingest: missing section separator")
)

// NodeRecord describes one node of a graph under construction.
type NodeRecord struct {
	ID    int64
	Label string
}

// EdgeRecord describes one directed edge of a graph under construction.
type EdgeRecord struct {
	From  int64
	To    int64
	Label string
}

// FromRecords builds a graph from node and edge records. Edge ids are
// assigned sequentially from 1 in record order. Duplicate node ids and edges
// referencing undeclared nodes are rejected.
func FromRecords(name string, nodes []NodeRecord, edges []EdgeRecord) (*models.Graph, error) {
	g := models.NewGraph(name)

	for _, r := range nodes {
		id := models.NodeID(r.ID)
		if _, exists := g.Nodes[id]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, r.ID)
		}
		g.AddNode(models.NewNode(id, r.Label))
	}

	for i, r := range edges {
		eid := models.EdgeID(i + 1)
		if _, err := g.Connect(eid, models.NodeID(r.From), models.NodeID(r.To), r.Label); err != nil {
			return nil, fmt.Errorf("%w: %d -> %d", ErrUnknownEndpoint, r.From, r.To)
		}
	}

	return g, nil
}

// ParseText reads the plain text interchange format: a node section with one
// "id label" record per line, a separator line consisting only of dashes,
// and an edge section with one "fromId toId label" record per line. Labels
// run to the end of the line and may contain spaces. Blank lines are
// skipped. Malformed records are rejected with their line number.
func ParseText(name string, r io.Reader) (*models.Graph, error) {
	var (
		nodes []NodeRecord
		edges []EdgeRecord
	)

	scanner := bufio.NewScanner(r)
	inEdges := false
	sawSeparator := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isSeparator(line) {
			inEdges = true
			sawSeparator = true
			continue
		}

		if !inEdges {
			rec, err := parseNodeLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			nodes = append(nodes, rec)
		} else {
			rec, err := parseEdgeLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			edges = append(edges, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading input: %w", err)
	}
	if !sawSeparator {
		return nil, ErrMissingSeparator
	}

	return FromRecords(name, nodes, edges)
}

// isSeparator reports whether line is a section separator: one or more
// dashes and nothing else.
func isSeparator(line string) bool {
	return strings.Trim(line, "-") == ""
}

func parseNodeLine(line string) (NodeRecord, error) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) != 2 {
		return NodeRecord{}, fmt.Errorf("%w: want \"id label\", got %q", ErrMalformedRecord, line)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return NodeRecord{}, fmt.Errorf("%w: bad node id %q", ErrMalformedRecord, parts[0])
	}
	return NodeRecord{ID: id, Label: strings.TrimSpace(parts[1])}, nil
}

func parseEdgeLine(line string) (EdgeRecord, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return EdgeRecord{}, fmt.Errorf("%w: want \"fromId toId label\", got %q", ErrMalformedRecord, line)
	}
	from, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("%w: bad source id %q", ErrMalformedRecord, parts[0])
	}
	to, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("%w: bad target id %q", ErrMalformedRecord, parts[1])
	}
	return EdgeRecord{From: from, To: to, Label: strings.TrimSpace(parts[2])}, nil
}

// Sample returns the built-in demo graph used when no input file is given.
func Sample() *models.Graph {
	nodes := []NodeRecord{
		{ID: 1, Label: "Dreams"},
		{ID: 2, Label: "Illusions"},
		{ID: 3, Label: "Memories"},
		{ID: 4, Label: "Reality"},
		{ID: 5, Label: "Surrealism"},
	}
	edges := []EdgeRecord{
		{From: 1, To: 2, Label: "fades into"},
		{From: 2, To: 3, Label: "distorts"},
		{From: 3, To: 4, Label: "anchors"},
		{From: 4, To: 5, Label: "inspires"},
		{From: 5, To: 1, Label: "feeds"},
		{From: 2, To: 5, Label: "echoes"},
	}
	g, err := FromRecords("sample", nodes, edges)
	if err != nil {
		// The sample is compiled in; a failure here is a programming error.
		panic(err)
	}
	return g
}

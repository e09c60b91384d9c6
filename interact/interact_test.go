package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/ingest"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

func testState(t *testing.T) models.State {
	t.Helper()

	g, err := ingest.FromRecords("t",
		[]ingest.NodeRecord{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}, {ID: 3, Label: "c"}},
		[]ingest.EdgeRecord{{From: 1, To: 2, Label: "ab"}})
	require.NoError(t, err)

	g.Nodes[1].Pos = geometry.Point{X: 100, Y: 100}
	g.Nodes[2].Pos = geometry.Point{X: 300, Y: 300}
	g.Nodes[3].Pos = geometry.Point{X: 500, Y: 100}
	return models.NewState(g)
}

func TestSimulationStepAdvancesPhysics(t *testing.T) {
	st := testState(t)

	next, _ := Step(st, Frame{DT: 1.0 / 30, Running: true})

	require.Equal(t, models.ModeSimulation, next.Mode)
	// Nodes 1 and 2 are connected and 200*sqrt(2) apart, well beyond rest
	// length, so both must have moved.
	assert.NotEqual(t, geometry.Point{X: 100, Y: 100}, next.Graph.Nodes[1].Pos)
	assert.NotEqual(t, geometry.Point{X: 300, Y: 300}, next.Graph.Nodes[2].Pos)
}

func TestFrameGuardDropsOversizedDelta(t *testing.T) {
	st := testState(t)
	before := st.Graph.Nodes[1].Pos

	next, _ := Step(st, Frame{DT: 1.0, Running: true})

	assert.Equal(t, before, next.Graph.Nodes[1].Pos, "oversized frame must be dropped, not integrated")
}

func TestEditModePinsSelectedNode(t *testing.T) {
	st := testState(t)
	st.Mode = models.ModeEdit
	st.Selected = 2
	st.Dragging = true
	st.Graph.Nodes[2].Vel = geometry.Vector{X: 7, Y: -9}

	pointer := geometry.Point{X: 450, Y: 120}
	next, hovered := Step(st, Frame{DT: 1.0 / 30, PointerDown: true, Pointer: pointer})

	assert.Equal(t, pointer, next.Graph.Nodes[2].Pos, "position must equal the pointer exactly")
	assert.Equal(t, geometry.Vector{X: 7, Y: -9}, next.Graph.Nodes[2].Vel, "velocity must be untouched")
	assert.Equal(t, []models.NodeID{2}, hovered)
	assert.True(t, next.Dragging)
}

func TestEditModeFreshPressSelectsLowestID(t *testing.T) {
	st := testState(t)
	// Stack two nodes under the pointer; the tie-break is lowest id.
	st.Graph.Nodes[3].Pos = st.Graph.Nodes[1].Pos

	pointer := st.Graph.Nodes[1].Pos
	next, hovered := Step(st, Frame{DT: 1.0 / 30, PointerDown: true, Pointer: pointer})

	assert.Equal(t, models.NodeID(1), next.Selected)
	assert.True(t, next.Dragging)
	assert.Equal(t, []models.NodeID{1}, hovered)
}

func TestEditModePressOnEmptySpaceSelectsNothing(t *testing.T) {
	st := testState(t)

	next, hovered := Step(st, Frame{DT: 1.0 / 30, PointerDown: true, Pointer: geometry.Point{X: 0, Y: 599}})

	assert.Equal(t, models.NoNode, next.Selected)
	assert.False(t, next.Dragging)
	assert.Empty(t, hovered)
}

func TestDragSticksOutsideNodeRadius(t *testing.T) {
	st := testState(t)
	st.Mode = models.ModeEdit
	st.Selected = 1
	st.Dragging = true

	// Pointer is nowhere near node 1's old position; the drag still owns it.
	pointer := geometry.Point{X: 550, Y: 550}
	next, hovered := Step(st, Frame{DT: 1.0 / 30, PointerDown: true, Pointer: pointer})

	assert.Equal(t, []models.NodeID{1}, hovered)
	assert.Equal(t, pointer, next.Graph.Nodes[1].Pos)
}

func TestReleaseReportsHoverForOneMoreFrame(t *testing.T) {
	st := testState(t)
	st.Mode = models.ModeEdit
	st.Selected = 1
	st.Dragging = true

	// Release far away from every node.
	pointer := geometry.Point{X: 550, Y: 550}
	next, hovered := Step(st, Frame{DT: 1.0 / 30, PointerDown: false, Pointer: pointer})

	assert.Equal(t, []models.NodeID{1}, hovered, "released node stays hovered for one frame")
	assert.Equal(t, models.NoNode, next.Selected)
	assert.False(t, next.Dragging)

	// The following frame has nothing under the pointer.
	_, hovered = Step(next, Frame{DT: 1.0 / 30, PointerDown: false, Pointer: pointer})
	assert.Empty(t, hovered)
}

func TestRunningToggleCancelsDrag(t *testing.T) {
	st := testState(t)
	st.Mode = models.ModeEdit
	st.Selected = 2
	st.Dragging = true

	next, _ := Step(st, Frame{DT: 1.0 / 30, Running: true, PointerDown: true})

	assert.Equal(t, models.ModeSimulation, next.Mode)
	assert.Equal(t, models.NoNode, next.Selected)
	assert.False(t, next.Dragging)
}

func TestHitTestReturnsAllNodesUnderPointer(t *testing.T) {
	st := testState(t)
	st.Graph.Nodes[3].Pos = geometry.Point{X: 100 + HitRadius/2, Y: 100}

	hits := HitTest(st, geometry.Point{X: 100, Y: 100})
	assert.Equal(t, []models.NodeID{1, 3}, hits)
}

func TestStepEmptyGraph(t *testing.T) {
	st := models.NewState(models.NewGraph("empty"))

	next, hovered := Step(st, Frame{DT: 1.0 / 30, Running: true})
	assert.Empty(t, hovered)
	assert.Empty(t, next.Graph.Nodes)

	next, hovered = Step(st, Frame{DT: 1.0 / 30, PointerDown: true})
	assert.Empty(t, hovered)
	assert.Equal(t, models.NoNode, next.Selected)
}

func TestToGraphSpace(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want geometry.Point
	}{
		{"center", 400, 300, geometry.Point{X: 300, Y: 300}},
		{"top-left", 0, 0, geometry.Point{X: 0, Y: 600}},
		{"bottom-right", 800, 600, geometry.Point{X: 600, Y: 0}},
		{"off-screen clamps", 10000, -10000, geometry.Point{X: 600, Y: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToGraphSpace(tt.x, tt.y, 800, 600)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

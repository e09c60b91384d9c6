// Package physics implements the force-directed layout simulation: pairwise
// repulsion, edge-gated spring attraction, quadratic fluid drag, and the
// semi-implicit Euler integrator that turns those forces into motion.
//
// All forces for a frame are computed from a snapshot of the graph taken at
// the start of the step; positions and velocities are only written after
// every force has been computed. A step with a non-positive time delta is an
// identity operation.
package physics

import (
	"math"

	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// Simulation constants. These are load-bearing: changing any of them changes
// every layout the engine produces.
const (
	// NodeMass is the inertial mass of every node.
	NodeMass = 10.0
	// NodeRadius is the physical radius of a node, used for the drag
	// cross-section and as the base hit-test radius.
	NodeRadius = 3.0
	// RepulsionConstant scales the Coulomb-like pairwise repulsion.
	RepulsionConstant = 1_000_000.0
	// SpringConstant is the Hooke stiffness of every edge spring.
	SpringConstant = 50.0
	// SpringLength is the rest length of every edge spring. Connected nodes
	// exactly this far apart feel no spring force.
	SpringLength = 60.0
	// FluidDensity is the density factor of the medium the nodes move
	// through, scaled down to keep the simulation lively.
	FluidDensity = 998.2071 * (1.0 / 3000.0)
	// DragCoefficient is the drag coefficient of a sphere.
	DragCoefficient = 0.47
	// MinDistance is the smallest separation used in the inverse-square
	// repulsion. Distances below it are clamped so two nearly coincident
	// nodes exchange a huge but finite force. Exactly coincident nodes have
	// no defined direction to push along and exchange no force at all.
	MinDistance = 0.001
)

// CrossSection is the cross-sectional area a node presents to the fluid.
var CrossSection = math.Pi * NodeRadius * NodeRadius

// snapshot is the pre-step view of a node that all force computation reads.
type snapshot struct {
	pos geometry.Point
	vel geometry.Vector
}

// RepulsionOn returns the net Coulomb-like repulsion acting on node id from
// every other node in the graph. A node never repels itself.
func RepulsionOn(g *models.Graph, id models.NodeID) geometry.Vector {
	n := g.Nodes[id]
	var total geometry.Vector
	for _, other := range g.Nodes {
		if other.ID == n.ID {
			continue
		}
		dist, dir := other.Pos.Sub(n.Pos).BreakDown()
		if dist < MinDistance {
			dist = MinDistance
		}
		mag := -RepulsionConstant / (dist * dist)
		total = total.Add(dir.Scale(mag))
	}
	return total
}

// AttractionOn returns the net spring force acting on node id. Only pairs
// joined by at least one edge, in either direction, attract; the spring is
// stretched beyond SpringLength when the force pulls and compressed below it
// when the force pushes.
func AttractionOn(g *models.Graph, id models.NodeID) geometry.Vector {
	n := g.Nodes[id]
	var total geometry.Vector
	for _, other := range g.Nodes {
		if other.ID == n.ID {
			continue
		}
		if !g.Connected(n.ID, other.ID) {
			continue
		}
		dist, dir := other.Pos.Sub(n.Pos).BreakDown()
		mag := SpringConstant * (dist - SpringLength)
		total = total.Add(dir.Scale(mag))
	}
	return total
}

// DragOn returns the quadratic fluid drag opposing the node's current
// velocity. A resting node feels no drag.
func DragOn(n *models.Node) geometry.Vector {
	speed, dir := n.Vel.BreakDown()
	mag := -(speed * speed * FluidDensity * DragCoefficient * CrossSection / 2)
	return dir.Scale(mag)
}

// forces holds the three per-node force contributions for one frame.
type forces struct {
	repulsion  geometry.Vector
	attraction geometry.Vector
	drag       geometry.Vector
}

// Step advances the simulation by dt seconds. Forces are computed once from
// the pre-step state, then four ordered stages run per node: the repulsion,
// attraction, and drag forces each convert into a velocity delta, and the
// resulting velocity converts into a position delta. The drag stage clamps
// so a node's speed never increases and its motion never reverses within a
// single step.
//
// A dt of zero or less leaves the graph untouched.
func Step(g *models.Graph, dt float64) {
	if dt <= 0 {
		return
	}

	pre := make(map[models.NodeID]snapshot, len(g.Nodes))
	for id, n := range g.Nodes {
		pre[id] = snapshot{pos: n.Pos, vel: n.Vel}
	}

	net := make(map[models.NodeID]forces, len(g.Nodes))
	for id, n := range g.Nodes {
		net[id] = forces{
			repulsion:  RepulsionOn(g, id),
			attraction: AttractionOn(g, id),
			drag:       DragOn(n),
		}
	}

	for id, n := range g.Nodes {
		f := net[id]
		vel := pre[id].vel

		vel = vel.Add(velocityDelta(f.repulsion, dt))
		vel = vel.Add(velocityDelta(f.attraction, dt))
		vel = applyDrag(vel, f.drag, dt)

		n.Vel = vel
		n.Pos = pre[id].pos.Add(vel.Scale(dt))
	}
}

// velocityDelta converts a force into the velocity change it produces over
// dt on a node of NodeMass.
func velocityDelta(f geometry.Vector, dt float64) geometry.Vector {
	mag, dir := f.BreakDown()
	return dir.Scale(mag * dt / NodeMass)
}

// applyDrag applies the drag stage to vel. Drag is antiparallel to the
// velocity the force was computed from, so an oversized delta would push the
// node backwards through rest; the clamp stops the node dead instead. The
// post-drag speed never exceeds the pre-drag speed.
func applyDrag(vel, drag geometry.Vector, dt float64) geometry.Vector {
	preSpeed := vel.Mag()
	delta := velocityDelta(drag, dt)
	if delta.Mag() >= preSpeed {
		return geometry.Vector{}
	}
	next := vel.Add(delta)
	if next.Mag() > preSpeed {
		_, dir := next.BreakDown()
		return dir.Scale(preSpeed)
	}
	return next
}

package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/deadfoxygrandpa/phybas-graviz/geometry"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
)

// Scatter assigns an initial position inside [0, bound] x [0, bound] to every
// node, sampling a seeded simplex noise field so placement is deterministic
// for a given seed but spatially uncorrelated enough that no two nodes start
// coincident in practice. Velocities are zeroed.
func Scatter(g *models.Graph, bound float64, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for i, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		t := float64(i) * 0.7548776662466927 // plastic-number stride, low-discrepancy
		n.Pos = geometry.Point{
			X: noise.Eval2(t, 0.5) * bound,
			Y: noise.Eval2(0.5, t) * bound,
		}
		n.Vel = geometry.Vector{}
	}
}

package engine

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// twoStepPassOne pushes outward in the directions whose target has a
// smaller or equal coordinate (south/south-east/south-west/west),
// traversing fluid nodes left-to-right, bottom-to-top so that every
// destination slot is overwritten only after its own outgoing push has
// already happened.
var twoStepPassOne = [4]int{0, 1, 2, 3}

// twoStepPassTwo pushes outward in the remaining directions
// (east/north-west/north/north-east), traversing in the opposite order.
var twoStepPassTwo = [4]int{5, 6, 7, 8}

// TwoStep is the separated outstream/bounce-back/collide engine (spec
// 4.5.2): a single buffer, streamed by two ordered push passes to
// satisfy in-place ordering, then halfway bounce-back, then collision.
type TwoStep struct {
	setup Setup
	grid  lattice.Grid
	buf   []float64
	obs   Observables
}

// NewTwoStep allocates the single buffer and fills it with equilibrium.
func NewTwoStep(setup Setup, initialRho float64, initialU lbm.Vec2) *TwoStep {
	grid := setup.Config.Grid
	n := grid.N()
	e := &TwoStep{
		setup: setup,
		grid:  grid,
		buf:   make([]float64, lattice.NumDirections*n),
		obs:   newObservables(n),
	}
	view := setup.Config.NewView(e.buf)
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, initialU, initialRho)
	for node := 0; node < n; node++ {
		view.Scatter(node, f)
	}
	boundary.InitializeInOut(grid, view, setup.Params)
	return e
}

func (e *TwoStep) Velocity() []lbm.Vec2 { return e.obs.Velocity }
func (e *TwoStep) Density() []float64   { return e.obs.Density }

func (e *TwoStep) Step() error {
	view := e.setup.Config.NewView(e.buf)
	nodes := e.setup.FluidNodes

	for _, node := range nodes {
		for _, d := range twoStepPassOne {
			neighbor := e.grid.Neighbor(node, d)
			view.Set(neighbor, d, view.Get(node, d))
		}
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		for _, d := range twoStepPassTwo {
			neighbor := e.grid.Neighbor(node, d)
			view.Set(neighbor, d, view.Get(node, d))
		}
	}

	boundary.PostStreamReflect(e.grid, view, e.setup.Adjacency)
	boundary.GhostInstream(e.grid, view)

	for _, node := range nodes {
		f := view.Gather(node)
		rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
		view.Scatter(node, f)
		e.obs.record(node, rho, u)
	}

	boundary.ApplyInletOutlet(e.grid, view, e.setup.Policy, e.setup.Params)
	return nil
}

package engine

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// swapActiveDirs are the only directions streamed by value-swap; their
// inverses (0,1,2,3) are restored afterwards rather than swapped again,
// so no (node,neighbor) pair is ever touched twice in the same step.
var swapActiveDirs = [4]int{5, 6, 7, 8}
var swapRestoreDirs = [4]int{0, 1, 2, 3}

// Swap is the in-place, swap-based streaming engine (spec 4.5.3): a
// single buffer, streamed as a sequence of value swaps that leave each
// node holding a known permutation, which is then restored.
type Swap struct {
	setup Setup
	grid  lattice.Grid
	buf   []float64
	obs   Observables
}

// NewSwap allocates the single buffer and fills it with equilibrium.
func NewSwap(setup Setup, initialRho float64, initialU lbm.Vec2) *Swap {
	grid := setup.Config.Grid
	n := grid.N()
	e := &Swap{
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

func (e *Swap) Velocity() []lbm.Vec2 { return e.obs.Velocity }
func (e *Swap) Density() []float64   { return e.obs.Density }

func (e *Swap) Step() error {
	view := e.setup.Config.NewView(e.buf)
	nodes := e.setup.FluidNodes

	boundary.GhostEmplace(e.grid, view, e.setup.Adjacency)
	// The inlet/outlet ghosts are not fluid nodes, so the swaps whose
	// active direction starts at a ghost and enters the interior are
	// made here.
	for y := 1; y <= e.grid.H-2; y++ {
		for _, nd := range [3][2]int{{e.grid.Node(1, y), 0}, {e.grid.Node(1, y), 3}, {e.grid.Node(e.grid.W-2, y), 2}} {
			node, d := nd[0], nd[1]
			neighbor := e.grid.Neighbor(node, d)
			a, b := view.Get(node, d), view.Get(neighbor, lattice.Invert(d))
			view.Set(node, d, b)
			view.Set(neighbor, lattice.Invert(d), a)
		}
	}

	for _, node := range nodes {
		for _, d := range swapActiveDirs {
			inv := lattice.Invert(d)
			neighbor := e.grid.Neighbor(node, d)
			a := view.Get(node, d)
			b := view.Get(neighbor, inv)
			view.Set(node, d, b)
			view.Set(neighbor, inv, a)
		}
	}

	for _, node := range nodes {
		for _, d := range swapRestoreDirs {
			inv := lattice.Invert(d)
			a := view.Get(node, d)
			b := view.Get(node, inv)
			view.Set(node, d, b)
			view.Set(node, inv, a)
		}
	}

	for _, node := range nodes {
		f := view.Gather(node)
		rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
		view.Scatter(node, f)
		e.obs.record(node, rho, u)
	}

	boundary.ApplyInletOutlet(e.grid, view, e.setup.Policy, e.setup.Params)
	e.forceCorners(view)
	return nil
}

// forceCorners overwrites the four outermost grid corners with the
// canonical inlet/outlet equilibrium, the same values ApplyInletOutlet
// writes on the wall rows.
func (e *Swap) forceCorners(view lattice.View) {
	grid := e.grid
	p := e.setup.Params
	var f [lattice.NumDirections]float64

	lattice.EquilibriumAll(&f, p.InletVelocity, p.InletDensity)
	view.Scatter(grid.Node(0, 0), f)
	view.Scatter(grid.Node(0, grid.H-1), f)

	lattice.EquilibriumAll(&f, p.OutletVelocity, p.OutletDensity)
	view.Scatter(grid.Node(grid.W-1, 0), f)
	view.Scatter(grid.Node(grid.W-1, grid.H-1), f)
}

package engine

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// TwoLattice is the double-buffered stream+collide engine (spec 4.5.1).
// Because the destination buffer is distinct from the source, fluid
// node iteration order is irrelevant: every destination value is pulled
// from the source, never overwritten in place.
type TwoLattice struct {
	setup Setup
	grid  lattice.Grid
	src   []float64
	dst   []float64
	obs   Observables
}

// NewTwoLattice allocates both buffers and fills them with the policy's
// reference equilibrium everywhere, including ghost rows/columns.
func NewTwoLattice(setup Setup, initialRho float64, initialU lbm.Vec2) *TwoLattice {
	grid := setup.Config.Grid
	n := grid.N()
	e := &TwoLattice{
		setup: setup,
		grid:  grid,
		src:   make([]float64, lattice.NumDirections*n),
		dst:   make([]float64, lattice.NumDirections*n),
		obs:   newObservables(n),
	}
	view := setup.Config.NewView(e.src)
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, initialU, initialRho)
	for node := 0; node < n; node++ {
		view.Scatter(node, f)
	}
	copy(e.dst, e.src)
	boundary.InitializeInOut(grid, setup.Config.NewView(e.src), setup.Params)
	boundary.InitializeInOut(grid, setup.Config.NewView(e.dst), setup.Params)
	return e
}

func (e *TwoLattice) Velocity() []lbm.Vec2 { return e.obs.Velocity }
func (e *TwoLattice) Density() []float64   { return e.obs.Density }

// Step realises: ghost-emplace on source, pull-stream into destination,
// collide in destination (capturing observables), apply the inlet/
// outlet policy to destination, then swap the buffer roles.
func (e *TwoLattice) Step() error {
	srcView := e.setup.Config.NewView(e.src)
	dstView := e.setup.Config.NewView(e.dst)

	boundary.GhostEmplace(e.grid, srcView, e.setup.Adjacency)

	for _, node := range e.setup.FluidNodes {
		for d := 0; d < lattice.NumDirections; d++ {
			from := e.grid.Neighbor(node, lattice.Invert(d))
			dstView.Set(node, d, srcView.Get(from, d))
		}
	}

	for _, node := range e.setup.FluidNodes {
		f := dstView.Gather(node)
		rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
		dstView.Scatter(node, f)
		e.obs.record(node, rho, u)
	}

	boundary.ApplyInletOutlet(e.grid, dstView, e.setup.Policy, e.setup.Params)

	e.src, e.dst = e.dst, e.src
	return nil
}

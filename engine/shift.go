package engine

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// Shift is the shifted in-place streaming engine (spec 4.5.4): a single
// larger buffer of logical size 9*(N+offset), read from one offset and
// written to the other, alternating each step. The offset equals
// Config.ShiftOffset (W+1); the extra tail prevents write/read aliasing
// at the grid seams.
type Shift struct {
	setup  Setup
	grid   lattice.Grid
	buf    []float64
	n      int // logical stride used by Stream/Bundle layouts: N_grid + offset
	parity int // 0 = even step (read@0, write@offset, reverse order)
	obs    Observables
}

// NewShift allocates the shift-sized buffer and fills the logical N_grid
// region with equilibrium; the offset tail starts zeroed and is written
// before it is ever read, on the first step.
func NewShift(setup Setup, initialRho float64, initialU lbm.Vec2) *Shift {
	grid := setup.Config.Grid
	offset := setup.Config.ShiftOffset
	n := grid.N() + offset
	e := &Shift{
		setup: setup,
		grid:  grid,
		buf:   make([]float64, lattice.NumDirections*n),
		n:     n,
		obs:   newObservables(grid.N()),
	}
	view := lattice.NewViewOffset(e.buf, setup.Config.Layout, n, 0)
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, initialU, initialRho)
	for node := 0; node < grid.N(); node++ {
		view.Scatter(node, f)
	}
	boundary.InitializeInOut(grid, view, setup.Params)
	return e
}

func (e *Shift) Velocity() []lbm.Vec2 { return e.obs.Velocity }
func (e *Shift) Density() []float64   { return e.obs.Density }

func (e *Shift) Step() error {
	offset := e.setup.Config.ShiftOffset
	var readOffset, writeOffset int
	if e.parity == 0 {
		readOffset, writeOffset = 0, offset
	} else {
		readOffset, writeOffset = offset, 0
	}
	readView := lattice.NewViewOffset(e.buf, e.setup.Config.Layout, e.n, readOffset)
	writeView := lattice.NewViewOffset(e.buf, e.setup.Config.Layout, e.n, writeOffset)

	boundary.GhostEmplace(e.grid, readView, e.setup.Adjacency)

	nodes := e.setup.FluidNodes
	visit := func(node int) {
		for d := 0; d < lattice.NumDirections; d++ {
			src := e.grid.Neighbor(node, lattice.Invert(d))
			writeView.Set(node, d, readView.Get(src, d))
		}
		f := writeView.Gather(node)
		rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
		writeView.Scatter(node, f)
		e.obs.record(node, rho, u)
	}
	if e.parity == 0 {
		for i := len(nodes) - 1; i >= 0; i-- {
			visit(nodes[i])
		}
	} else {
		for _, node := range nodes {
			visit(node)
		}
	}

	boundary.ApplyInletOutlet(e.grid, writeView, e.setup.Policy, e.setup.Params)
	e.forceOutletCorners(writeView)

	e.parity = 1 - e.parity
	return nil
}

// forceOutletCorners overwrites the two outlet-column corner nodes with
// canonical outlet equilibrium, the same values ApplyInletOutlet writes
// on the wall rows.
func (e *Shift) forceOutletCorners(view lattice.View) {
	grid := e.grid
	p := e.setup.Params
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, p.OutletVelocity, p.OutletDensity)
	view.Scatter(grid.Node(grid.W-1, 0), f)
	view.Scatter(grid.Node(grid.W-1, grid.H-1), f)
}

package parallel

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

var parallelSwapActiveDirs = [4]int{5, 6, 7, 8}
var parallelSwapRestoreDirs = [4]int{0, 1, 2, 3}

// Swap is the parallel in-place, swap-based streaming engine. As with
// TwoStep, folding each buffer row into the strip above it keeps every
// strip's swap operations confined to node pairs it alone owns.
type Swap struct {
	setup      Setup
	grid       lattice.Grid
	buf        []float64
	velocity   []lbm.Vec2
	density    []float64
	stripFluid [][]int
	stripAdj   []*boundary.Adjacency
}

func NewSwap(setup Setup, initialRho float64, initialU lbm.Vec2) *Swap {
	grid := setup.Config.Grid
	n := grid.N()
	e := &Swap{
		setup:    setup,
		grid:     grid,
		buf:      make([]float64, lattice.NumDirections*n),
		velocity: make([]lbm.Vec2, n),
		density:  make([]float64, n),
	}
	view := setup.Config.NewView(e.buf)
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, initialU, initialRho)
	for node := 0; node < n; node++ {
		view.Scatter(node, f)
	}
	boundary.InitializeInOut(grid, view, setup.Params)

	for _, s := range setup.Strips {
		e.stripFluid = append(e.stripFluid, stripNodes(setup.FluidNodes, s))
		e.stripAdj = append(e.stripAdj, setup.Adjacency.Slice(s.First, s.Last))
	}
	return e
}

func (e *Swap) Velocity() []lbm.Vec2 { return e.velocity }
func (e *Swap) Density() []float64   { return e.density }

func (e *Swap) Step() error {
	view := e.setup.Config.NewView(e.buf)

	Dispatch(e.setup.Strips, func(s Strip) {
		boundary.GhostEmplace(e.grid, view, e.stripAdj[s.Index])
		for y := s.RowLo; y <= s.ComputeRowHi; y++ {
			for _, nd := range [3][2]int{{e.grid.Node(1, y), 0}, {e.grid.Node(1, y), 3}, {e.grid.Node(e.grid.W-2, y), 2}} {
				node, d := nd[0], nd[1]
				neighbor := e.grid.Neighbor(node, d)
				a, b := view.Get(node, d), view.Get(neighbor, lattice.Invert(d))
				view.Set(node, d, b)
				view.Set(neighbor, lattice.Invert(d), a)
			}
		}
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		for _, node := range e.stripFluid[s.Index] {
			for _, d := range parallelSwapActiveDirs {
				inv := lattice.Invert(d)
				neighbor := e.grid.Neighbor(node, d)
				a := view.Get(node, d)
				b := view.Get(neighbor, inv)
				view.Set(node, d, b)
				view.Set(neighbor, inv, a)
			}
		}
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		for _, node := range e.stripFluid[s.Index] {
			for _, d := range parallelSwapRestoreDirs {
				inv := lattice.Invert(d)
				a := view.Get(node, d)
				b := view.Get(node, inv)
				view.Set(node, d, b)
				view.Set(node, inv, a)
			}
		}
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		for _, node := range e.stripFluid[s.Index] {
			f := view.Gather(node)
			rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
			view.Scatter(node, f)
			e.density[node] = rho
			e.velocity[node] = u
		}
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		for y := s.RowLo; y <= s.ComputeRowHi; y++ {
			boundary.ApplyInletOutletRow(e.grid, view, e.setup.Policy, e.setup.Params, y)
		}
	})
	e.forceCorners(view)
	return nil
}

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

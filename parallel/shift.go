package parallel

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// Shift is the parallel shifted in-place streaming engine. Each strip is
// given its own offset lane spaced shift_offset apart — subdomain_offset
// = strip_index * shift_offset — so that no two strips' writes and reads
// ever touch the same physical slot, the same structural argument the
// sequential shift engine uses for a single lane, generalised to S lanes.
// A buffer-row sync pass copies the seam row's current values from the
// strip above's lane into the strip below's lane before each streaming
// pass, since the two strips read that row through different lanes.
type Shift struct {
	setup    Setup
	grid     lattice.Grid
	buf      []float64
	laneN    int
	parity   int
	velocity []lbm.Vec2
	density  []float64

	stripFluid [][]int
	stripAdj   []*boundary.Adjacency
}

func NewShift(setup Setup, initialRho float64, initialU lbm.Vec2) *Shift {
	grid := setup.Config.Grid
	offset := setup.Config.ShiftOffset
	count := len(setup.Strips)
	laneN := grid.N() + (count+1)*offset

	e := &Shift{
		setup:    setup,
		grid:     grid,
		buf:      make([]float64, lattice.NumDirections*laneN),
		laneN:    laneN,
		velocity: make([]lbm.Vec2, grid.N()),
		density:  make([]float64, grid.N()),
	}

	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, initialU, initialRho)
	for _, s := range setup.Strips {
		nodes := stripNodes(setup.FluidNodes, s)
		e.stripFluid = append(e.stripFluid, nodes)
		e.stripAdj = append(e.stripAdj, setup.Adjacency.Slice(s.First, s.Last))

		view := lattice.NewViewOffset(e.buf, setup.Config.Layout, laneN, e.readBase(s.Index, 0))
		for _, node := range nodes {
			view.Scatter(node, f)
		}
		boundary.InitializeInOut(grid, view, setup.Params)
	}
	return e
}

func (e *Shift) Velocity() []lbm.Vec2 { return e.velocity }
func (e *Shift) Density() []float64   { return e.density }

func (e *Shift) readBase(stripIndex, parity int) int {
	offset := e.setup.Config.ShiftOffset
	if parity == 0 {
		return stripIndex * offset
	}
	return (stripIndex + 1) * offset
}

func (e *Shift) writeBase(stripIndex, parity int) int {
	offset := e.setup.Config.ShiftOffset
	if parity == 0 {
		return (stripIndex + 1) * offset
	}
	return stripIndex * offset
}

func (e *Shift) view(base int) lattice.View {
	return lattice.NewViewOffset(e.buf, e.setup.Config.Layout, e.laneN, base)
}

func (e *Shift) Step() error {
	parity := e.parity
	strips := e.setup.Strips

	Dispatch(strips, func(s Strip) {
		boundary.GhostEmplace(e.grid, e.view(e.readBase(s.Index, parity)), e.stripAdj[s.Index])
	})

	DispatchBuffers(e.setup.Buffers, func(b BufferRow) {
		aboveView := e.view(e.readBase(b.Above, parity))
		belowView := e.view(e.readBase(b.Below, parity))
		for x := 1; x <= e.grid.W-2; x++ {
			node := e.grid.Node(x, b.Row)
			belowView.Scatter(node, aboveView.Gather(node))
		}
	})

	Dispatch(strips, func(s Strip) {
		readView := e.view(e.readBase(s.Index, parity))
		writeView := e.view(e.writeBase(s.Index, parity))
		nodes := e.stripFluid[s.Index]

		visit := func(node int) {
			for d := 0; d < lattice.NumDirections; d++ {
				src := e.grid.Neighbor(node, lattice.Invert(d))
				writeView.Set(node, d, readView.Get(src, d))
			}
			f := writeView.Gather(node)
			rho, u := lattice.CollideObserve(&f, e.setup.Config.Tau)
			writeView.Scatter(node, f)
			e.density[node] = rho
			e.velocity[node] = u
		}
		if parity == 0 {
			for i := len(nodes) - 1; i >= 0; i-- {
				visit(nodes[i])
			}
		} else {
			for _, node := range nodes {
				visit(node)
			}
		}
	})

	Dispatch(strips, func(s Strip) {
		writeView := e.view(e.writeBase(s.Index, parity))
		for y := s.RowLo; y <= s.ComputeRowHi; y++ {
			boundary.ApplyInletOutletRow(e.grid, writeView, e.setup.Policy, e.setup.Params, y)
		}
	})

	e.forceOutletCorners(parity)
	e.parity = 1 - parity
	return nil
}

// forceOutletCorners overwrites the two outlet-column ghost corners in
// whichever lane the adjacent strip (strip 0 for the top row, the last
// strip for the bottom row) will read as its lane on the next step.
func (e *Shift) forceOutletCorners(parity int) {
	grid := e.grid
	p := e.setup.Params
	var f [lattice.NumDirections]float64
	lattice.EquilibriumAll(&f, p.OutletVelocity, p.OutletDensity)

	first, last := 0, len(e.setup.Strips)-1
	e.view(e.writeBase(first, parity)).Scatter(grid.Node(grid.W-1, 0), f)
	e.view(e.writeBase(last, parity)).Scatter(grid.Node(grid.W-1, grid.H-1), f)
}

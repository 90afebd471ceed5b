package parallel

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// TwoStep is the parallel separated outstream/bounce-back/collide engine.
//
// Bounce-back, ghost-instream, collision and inlet/outlet all stay on the
// buffer-row fold (Strip.ComputeRowHi): none of them write into a
// neighboring strip's rows, so handing the folded buffer row to whichever
// strip sits above it is race-free. Streaming is not: two-step pushes
// each node's outgoing values into its neighbor, so the buffer row's push
// writes into the strip below it, which is concurrently pushing (and
// reading) that very row. Per
// original_source/parallel_implementation/src/parallel_outstream_framework.cpp
// (step 2.2a), the buffer row is given its own push pass, run before or
// after the ordinary per-strip pass so neither side can read a seam slot
// the other has already overwritten:
//
//   - pass one pushes toward smaller y/x, so the global order that keeps
//     every node's own outgoing push ahead of being overwritten is
//     ascending; buffers (the smaller-y side of a seam) push first, then
//     strips push ascending within themselves.
//   - pass two pushes toward larger y/x, so the required order is
//     descending; strips push descending within themselves first, then
//     buffers push.
type TwoStep struct {
	setup       Setup
	grid        lattice.Grid
	buf         []float64
	velocity    []lbm.Vec2
	density     []float64
	stripFluid  [][]int // folded buffer row included; bounce-back/collide/inlet-outlet
	stripPush   [][]int // folded buffer row excluded; streaming only
	stripAdj    []*boundary.Adjacency
	bufferFluid map[int][]int // buffer row -> its own fluid nodes, by Row
}

func NewTwoStep(setup Setup, initialRho float64, initialU lbm.Vec2) *TwoStep {
	grid := setup.Config.Grid
	n := grid.N()
	e := &TwoStep{
		setup:       setup,
		grid:        grid,
		buf:         make([]float64, lattice.NumDirections*n),
		velocity:    make([]lbm.Vec2, n),
		density:     make([]float64, n),
		bufferFluid: make(map[int][]int, len(setup.Buffers)),
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
		e.stripPush = append(e.stripPush, rowRangeNodes(setup.FluidNodes, grid, s.RowLo, s.RowHi))
		e.stripAdj = append(e.stripAdj, setup.Adjacency.Slice(s.First, s.Last))
	}
	for _, b := range setup.Buffers {
		e.bufferFluid[b.Row] = rowRangeNodes(setup.FluidNodes, grid, b.Row, b.Row)
	}
	return e
}

func (e *TwoStep) Velocity() []lbm.Vec2 { return e.velocity }
func (e *TwoStep) Density() []float64   { return e.density }

var parallelTwoStepPassOne = [4]int{0, 1, 2, 3}
var parallelTwoStepPassTwo = [4]int{5, 6, 7, 8}

func pushAscending(grid lattice.Grid, view lattice.View, nodes []int, dirs [4]int) {
	for _, node := range nodes {
		for _, d := range dirs {
			neighbor := grid.Neighbor(node, d)
			view.Set(neighbor, d, view.Get(node, d))
		}
	}
}

func pushDescending(grid lattice.Grid, view lattice.View, nodes []int, dirs [4]int) {
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		for _, d := range dirs {
			neighbor := grid.Neighbor(node, d)
			view.Set(neighbor, d, view.Get(node, d))
		}
	}
}

func (e *TwoStep) Step() error {
	view := e.setup.Config.NewView(e.buf)

	DispatchBuffers(e.setup.Buffers, func(b BufferRow) {
		pushAscending(e.grid, view, e.bufferFluid[b.Row], parallelTwoStepPassOne)
	})
	Dispatch(e.setup.Strips, func(s Strip) {
		pushAscending(e.grid, view, e.stripPush[s.Index], parallelTwoStepPassOne)
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		pushDescending(e.grid, view, e.stripPush[s.Index], parallelTwoStepPassTwo)
	})
	DispatchBuffers(e.setup.Buffers, func(b BufferRow) {
		pushDescending(e.grid, view, e.bufferFluid[b.Row], parallelTwoStepPassTwo)
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		boundary.PostStreamReflect(e.grid, view, e.stripAdj[s.Index])
	})

	Dispatch(e.setup.Strips, func(s Strip) {
		for y := s.RowLo; y <= s.ComputeRowHi; y++ {
			boundary.GhostInstreamRow(e.grid, view, y)
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
	return nil
}

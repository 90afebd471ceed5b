package parallel

import (
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// Setup bundles everything a parallel engine constructor needs: the
// sequential Setup's fields plus the strip/buffer-row partition.
type Setup struct {
	Config     lattice.Config
	Adjacency  *boundary.Adjacency
	FluidNodes []int
	Policy     boundary.Policy
	Params     boundary.Params
	Strips     []Strip
	Buffers    []BufferRow
}

// stripNodes returns the subset of fluidNodes whose index lies in
// [s.First, s.Last], preserving order. fluidNodes is assumed sorted
// ascending, which pm.FluidNodes()/grid.FluidNodes() guarantee.
func stripNodes(fluidNodes []int, s Strip) []int {
	out := make([]int, 0, s.Last-s.First+1)
	for _, n := range fluidNodes {
		if n >= s.First && n <= s.Last {
			out = append(out, n)
		}
	}
	return out
}

// rowRangeNodes returns the subset of fluidNodes whose grid row lies in
// [rowLo, rowHi] inclusive, preserving order. Unlike stripNodes this
// filters by row rather than node-index range, so it can select a
// strip's own rows with a buffer row excluded, or a single buffer row
// on its own.
func rowRangeNodes(fluidNodes []int, grid lattice.Grid, rowLo, rowHi int) []int {
	out := make([]int, 0, rowHi-rowLo+1)
	for _, n := range fluidNodes {
		_, y := grid.XY(n)
		if y >= rowLo && y <= rowHi {
			out = append(out, n)
		}
	}
	return out
}

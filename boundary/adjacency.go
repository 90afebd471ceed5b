package boundary

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/lattice"
)

// Adjacency is the border-adjacency ("border swap") index: the precomputed
// list of fluid nodes and directions that require boundary treatment.
// It is stored structure-of-arrays, per design notes, rather than as a
// list of variable-length per-node records: Nodes holds one entry per
// flagged fluid node, DirOffsets is its prefix-sum into Dirs, and Dirs
// holds the flagged streaming directions back to back. This is tighter
// in cache and trivially iterable in parallel.
type Adjacency struct {
	Nodes      []int
	DirOffsets []int // len(Nodes)+1, prefix sum
	Dirs       []uint8
}

// Len returns the number of flagged fluid nodes.
func (a *Adjacency) Len() int { return len(a.Nodes) }

// DirsFor returns the flagged directions for the i'th entry.
func (a *Adjacency) DirsFor(i int) []uint8 {
	return a.Dirs[a.DirOffsets[i]:a.DirOffsets[i+1]]
}

// Build scans each fluid node of pm, in canonical row-major order; for
// each of the eight streaming directions it checks whether the neighbour
// is a non-inout ghost (top/bottom wall, or a solid cell, but never the
// left/right inlet/outlet columns). Directions that qualify are recorded
// with the node. Nodes with zero qualifying directions are omitted.
func Build(grid lattice.Grid, pm *PhaseMap) *Adjacency {
	a := &Adjacency{DirOffsets: []int{0}}
	for _, node := range pm.FluidNodes() {
		start := len(a.Dirs)
		for _, d := range lattice.StreamingDirections() {
			n := grid.Neighbor(node, d)
			if pm.isNonInOutGhost(n) {
				a.Dirs = append(a.Dirs, uint8(d))
			}
		}
		if len(a.Dirs) > start {
			a.Nodes = append(a.Nodes, node)
			a.DirOffsets = append(a.DirOffsets, len(a.Dirs))
		}
	}
	return a
}

// ValidateNonEmpty checks the invariant that every adjacency entry has at
// least one flagged direction; it is a debug assertion rather than a hot
// path check, since Build never emits an empty entry itself.
func (a *Adjacency) ValidateNonEmpty() error {
	for i, node := range a.Nodes {
		if len(a.DirsFor(i)) == 0 {
			return lbm.NewInvariantError(lbm.ErrEmptyAdjacencyEntry, node, -1)
		}
	}
	return nil
}

// Slice returns the subset of entries whose node lies in [first,last]
// (inclusive), the "subdomain-wise" adjacency used to give each parallel
// strip its own bounce-back pass without touching other strips' nodes.
// Node ranges are assumed contiguous in the canonical fluid-node order,
// as guaranteed by the strip partitioning in package parallel.
func (a *Adjacency) Slice(first, last int) *Adjacency {
	out := &Adjacency{DirOffsets: []int{0}}
	for i, node := range a.Nodes {
		if node < first || node > last {
			continue
		}
		dirs := a.DirsFor(i)
		out.Nodes = append(out.Nodes, node)
		out.Dirs = append(out.Dirs, dirs...)
		out.DirOffsets = append(out.DirOffsets, len(out.Dirs))
	}
	return out
}

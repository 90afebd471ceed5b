// Package boundary builds the border-adjacency ("border swap") index from
// a phase map, realises halfway bounce-back in its two forms, and
// implements the three inlet/outlet policies.
package boundary

import "github.com/spatialmodel/lbm/lattice"

// PhaseMap is an immutable-after-setup per-node solid/fluid flag. Solids
// occur on the top/bottom ghost rows by construction, and optionally
// within the interior to model obstacles.
type PhaseMap struct {
	grid  lattice.Grid
	solid []bool
}

// NewPhaseMap builds a phase map for grid with the top and bottom ghost
// rows marked solid, matching the no-slip wall convention of the domain.
func NewPhaseMap(grid lattice.Grid) *PhaseMap {
	pm := &PhaseMap{grid: grid, solid: make([]bool, grid.N())}
	for x := 0; x < grid.W; x++ {
		pm.solid[grid.Node(x, 0)] = true
		pm.solid[grid.Node(x, grid.H-1)] = true
	}
	return pm
}

// SetSolid marks (x,y) as solid, for modeling an interior obstacle.
func (pm *PhaseMap) SetSolid(x, y int) {
	pm.solid[pm.grid.Node(x, y)] = true
}

// IsSolid reports whether node is solid.
func (pm *PhaseMap) IsSolid(node int) bool { return pm.solid[node] }

// FluidNodes enumerates the interior nodes that are not marked solid, in
// the grid's canonical row-major order. This is the iteration order used
// by every engine; solid interior nodes (obstacles) are excluded and
// never carry observable values.
func (pm *PhaseMap) FluidNodes() []int {
	all := pm.grid.FluidNodes()
	out := make([]int, 0, len(all))
	for _, n := range all {
		if !pm.solid[n] {
			out = append(out, n)
		}
	}
	return out
}

// isNonInOutGhost reports whether neighbor is a ghost cell that should be
// handled by bounce-back rather than by the inlet/outlet mechanism: the
// top/bottom wall ring, or a solid cell marked within the domain, but
// never the left/right inlet/outlet columns.
func (pm *PhaseMap) isNonInOutGhost(node int) bool {
	x, y := pm.grid.XY(node)
	if pm.grid.IsInOutColumn(x) {
		return false
	}
	return pm.grid.IsWallRow(y) || pm.solid[node]
}

package boundary

import "github.com/spatialmodel/lbm/lattice"

// GhostEmplace realises halfway bounce-back in its pre-stream form: for
// each (node, d) in the adjacency index, it copies the value at
// (node, d) into the ghost slot at (neighbour(node, d), invert(d)). After
// this pass, an ordinary instream sweep reads correct reflected values
// from ghosts. Used by the two-lattice, swap and shift engines.
func GhostEmplace(grid lattice.Grid, v lattice.View, adj *Adjacency) {
	for i, node := range adj.Nodes {
		for _, d8 := range adj.DirsFor(i) {
			d := int(d8)
			ghost := grid.Neighbor(node, d)
			v.Set(ghost, lattice.Invert(d), v.Get(node, d))
		}
	}
}

// SwapBounceBack realises halfway bounce-back as a value swap rather
// than a copy: for each flagged direction d at each border node, it
// swaps values[node,d] <-> values[neighbour(node,d), invert(d)].
// Applying it twice restores the original values.
func SwapBounceBack(grid lattice.Grid, v lattice.View, adj *Adjacency) {
	for i, node := range adj.Nodes {
		for _, d8 := range adj.DirsFor(i) {
			d := int(d8)
			inv := lattice.Invert(d)
			neighbor := grid.Neighbor(node, d)
			a := v.Get(node, d)
			b := v.Get(neighbor, inv)
			v.Set(node, d, b)
			v.Set(neighbor, inv, a)
		}
	}
}

// PostStreamReflect realises halfway bounce-back in its post-stream
// form: for each (node, d) in the adjacency index, it overwrites
// (node, invert(d)) with the value the push pass left in the ghost at
// (neighbour(node, d), d). Used by the two-step engine, which streams by
// pushing values outward first.
func PostStreamReflect(grid lattice.Grid, v lattice.View, adj *Adjacency) {
	for i, node := range adj.Nodes {
		for _, d8 := range adj.DirsFor(i) {
			d := int(d8)
			inv := lattice.Invert(d)
			src := grid.Neighbor(node, d)
			v.Set(node, inv, v.Get(src, d))
		}
	}
}

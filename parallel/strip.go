// Package parallel subdivides the grid into horizontal strips separated
// by single-row communication buffers and dispatches per-strip work to
// goroutines, grounded on the teacher's Calculations dispatch
// (spatialmodel-inmap's run.go): one goroutine per strip (or per buffer
// row), each assigned a disjoint slice of work, synchronised by a
// sync.WaitGroup barrier rather than locks.
package parallel

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/lattice"
)

// Strip is one horizontal subdomain: the interior row range
// [RowLo, RowHi] (grid y-coordinates, inclusive) it owns outright, plus
// ComputeRowHi which additionally folds in the trailing buffer row (when
// one exists below this strip). [First, Last] is the node-index range
// over RowLo..ComputeRowHi, used to slice the border-adjacency index and
// the fluid-node list for this strip alone. Buffer rows are assumed free
// of solid obstacles, so they never need their own adjacency entries.
//
// The fold gives every strip a genuinely disjoint output range for
// bounce-back, ghost-instream, collision and inlet/outlet, none of which
// write into a neighboring strip's rows. Two-lattice's instream-based
// streaming only reads across the seam, and swap's cross-seam write
// lands in slots ({0,1,2}) the neighboring strip never concurrently
// touches in that same phase, so both use the fold as-is. Two-step's
// push-based streaming is different: each pass both reads and writes the
// seam row's slots, so a strip finishing its pass concurrently with the
// neighboring strip's own pass races (and, worse, depends on which strip
// gets there first, giving wrong results). Two-step needs its own
// buffer-row exchange (see parallel.TwoStep), the same way the shift
// engine already does with its offset lanes.
type Strip struct {
	Index           int
	RowLo, RowHi    int
	ComputeRowHi    int
	First, Last     int
}

// BufferRow is the single grid row of y-coordinate Row that separates
// strip Above from strip Below.
type BufferRow struct {
	Row         int
	Above, Below int
}

// Partition divides a grid's interior into count equal-height strips
// separated by count-1 single-row buffers, per spec: H = S*h + (S-1) + 2.
// It solves for h given H and count and fails if the geometry does not
// divide exactly.
func Partition(grid lattice.Grid, count int) ([]Strip, []BufferRow, error) {
	if count <= 0 {
		return nil, nil, lbm.NewConfigError(lbm.ErrStripGeometry, "subdomain_count", count)
	}
	interior := grid.H - 2
	remainder := interior - (count - 1)
	if remainder <= 0 || remainder%count != 0 {
		return nil, nil, lbm.NewConfigError(lbm.ErrStripGeometry, "subdomain_height", [2]int{grid.H, count})
	}
	h := remainder / count

	strips := make([]Strip, count)
	var buffers []BufferRow
	row := 1
	for s := 0; s < count; s++ {
		lo := row
		hi := row + h - 1
		computeHi := hi
		if s < count-1 {
			computeHi = hi + 1
		}
		strips[s] = Strip{
			Index:        s,
			RowLo:        lo,
			RowHi:        hi,
			ComputeRowHi: computeHi,
			First:        grid.Node(1, lo),
			Last:         grid.Node(grid.W-2, computeHi),
		}
		row = hi + 1
		if s < count-1 {
			buffers = append(buffers, BufferRow{Row: row, Above: s, Below: s + 1})
			row++
		}
	}
	return strips, buffers, nil
}

// StripHeight returns the common interior row count h of strips, which
// Partition guarantees is uniform across all strips.
func StripHeight(strips []Strip) int {
	if len(strips) == 0 {
		return 0
	}
	return strips[0].RowHi - strips[0].RowLo + 1
}

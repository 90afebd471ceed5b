package boundary_test

import (
	"testing"

	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// TestAdjacencyCompleteness realises testable property #11: every fluid
// node adjacent to a wall or solid cell appears in the adjacency index
// with exactly the directions whose neighbour is a non-inlet/outlet
// ghost, and no entry is ever empty.
func TestAdjacencyCompleteness(t *testing.T) {
	grid, err := lattice.NewGrid(6, 5)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	pm.SetSolid(3, 2)
	adj := boundary.Build(grid, pm)

	if err := adj.ValidateNonEmpty(); err != nil {
		t.Fatalf("ValidateNonEmpty: %v", err)
	}

	flagged := make(map[int][]uint8)
	for i, node := range adj.Nodes {
		flagged[node] = adj.DirsFor(i)
	}

	for _, node := range pm.FluidNodes() {
		x, y := grid.XY(node)
		var want []uint8
		for _, d := range lattice.StreamingDirections() {
			n := grid.Neighbor(node, d)
			nx, ny := grid.XY(n)
			if grid.IsInOutColumn(nx) {
				continue
			}
			if grid.IsWallRow(ny) || pm.IsSolid(n) {
				want = append(want, uint8(d))
			}
		}
		got := flagged[node]
		if len(want) == 0 {
			if len(got) != 0 {
				t.Errorf("node %d (%d,%d) unexpectedly flagged: %v", node, x, y, got)
			}
			continue
		}
		if len(got) != len(want) {
			t.Errorf("node %d (%d,%d): want dirs %v, got %v", node, x, y, want, got)
			continue
		}
		for i := range want {
			if want[i] != got[i] {
				t.Errorf("node %d (%d,%d): want dirs %v, got %v", node, x, y, want, got)
				break
			}
		}
	}
}

func TestAdjacencySlice(t *testing.T) {
	grid, err := lattice.NewGrid(6, 5)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)

	mid := grid.Node(grid.W/2, grid.H/2)
	lower := adj.Slice(0, mid)
	upper := adj.Slice(mid+1, grid.N()-1)

	if lower.Len()+upper.Len() != adj.Len() {
		t.Fatalf("slice partition lost entries: %d+%d != %d", lower.Len(), upper.Len(), adj.Len())
	}
	for _, node := range lower.Nodes {
		if node > mid {
			t.Errorf("lower slice contains out-of-range node %d", node)
		}
	}
	for _, node := range upper.Nodes {
		if node <= mid {
			t.Errorf("upper slice contains out-of-range node %d", node)
		}
	}
}

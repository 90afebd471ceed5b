package lattice

import "testing"

func TestNeighborReciprocity(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, node := range g.FluidNodes() {
		for d := 0; d < NumDirections; d++ {
			n := g.Neighbor(node, d)
			back := g.Neighbor(n, Invert(d))
			if back != node {
				t.Errorf("neighbor(neighbor(%d,%d),invert)=%d, want %d", node, d, back, node)
			}
		}
	}
}

func TestNewGridRejectsTooSmall(t *testing.T) {
	if _, err := NewGrid(2, 5); err == nil {
		t.Fatal("expected error for grid narrower than 3")
	}
	if _, err := NewGrid(5, 2); err == nil {
		t.Fatal("expected error for grid shorter than 3")
	}
}

func TestFluidNodesAreInterior(t *testing.T) {
	g, err := NewGrid(6, 5)
	if err != nil {
		t.Fatal(err)
	}
	nodes := g.FluidNodes()
	if want := (6 - 2) * (5 - 2); len(nodes) != want {
		t.Fatalf("len(FluidNodes()) = %d, want %d", len(nodes), want)
	}
	for _, n := range nodes {
		x, y := g.XY(n)
		if !g.InInterior(x, y) {
			t.Errorf("fluid node (%d,%d) not in interior", x, y)
		}
	}
}

func TestNodeXYRoundTrip(t *testing.T) {
	g, _ := NewGrid(8, 6)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			node := g.Node(x, y)
			gx, gy := g.XY(node)
			if gx != x || gy != y {
				t.Errorf("XY(Node(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

package lattice

import "github.com/spatialmodel/lbm"

// Layout selects one of the three equivalent distribution-storage
// schemes. The index function is the only thing that differs across
// layouts; engine code never branches on Layout itself.
type Layout int

const (
	// Collision lays out all nine values of a node contiguously:
	// 9*node + dir. Best for collision-heavy traversals.
	Collision Layout = iota
	// Stream lays out all values of one direction contiguously across
	// the grid: dir*N + node. Best for per-direction streaming sweeps.
	Stream
	// Bundle groups directions into the three y-bands {0,1,2}, {3,4,5},
	// {6,7,8}: 3*floor(dir/3)*N + 3*node + (dir mod 3).
	Bundle
)

// ParseLayout maps a configuration string onto a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "collision":
		return Collision, nil
	case "stream":
		return Stream, nil
	case "bundle":
		return Bundle, nil
	default:
		return 0, lbm.NewConfigError(lbm.ErrUnknownLayout, "access_pattern", s)
	}
}

func (l Layout) String() string {
	switch l {
	case Collision:
		return "collision"
	case Stream:
		return "stream"
	case Bundle:
		return "bundle"
	default:
		return "unknown"
	}
}

// Index returns the storage offset for (node, dir) under layout l, given
// the total fluid+ghost node count n.
func (l Layout) Index(node, dir, n int) int {
	switch l {
	case Collision:
		return NumDirections*node + dir
	case Stream:
		return dir*n + node
	case Bundle:
		band := dir / 3
		return 3*band*n + 3*node + dir%3
	default:
		panic("lattice: invalid layout")
	}
}

// Grid describes the static rectangular geometry of the domain: width W,
// height H, with the outermost ring reserved as ghost nodes (top/bottom
// solid walls, left/right inlet/outlet columns). The interior fluid
// region is x in [1,W-2], y in [1,H-2].
type Grid struct {
	W, H int
}

// NewGrid validates and constructs a Grid. Dimensions below 3x3 leave no
// interior fluid nodes and are a configuration error.
func NewGrid(w, h int) (Grid, error) {
	if w < 3 || h < 3 {
		return Grid{}, lbm.NewConfigError(lbm.ErrGridTooSmall, "grid", [2]int{w, h})
	}
	return Grid{W: w, H: h}, nil
}

// N is the total number of nodes (fluid + ghost) in the grid.
func (g Grid) N() int { return g.W * g.H }

// Node returns the linear row-major index of (x,y).
func (g Grid) Node(x, y int) int { return x + y*g.W }

// XY returns the (x,y) coordinates of a linear node index.
func (g Grid) XY(node int) (x, y int) { return node % g.W, node / g.W }

// Neighbor returns the unchecked neighbour of node in direction d. The
// caller guarantees the result lies within the allocated array; the
// ghost ring makes every fluid-node neighbour valid.
func (g Grid) Neighbor(node, d int) int {
	return node + dyOf(d)*g.W + dxOf(d)
}

// InInterior reports whether (x,y) lies in the simulated fluid region.
func (g Grid) InInterior(x, y int) bool {
	return x >= 1 && x <= g.W-2 && y >= 1 && y <= g.H-2
}

// IsEdge reports whether (x,y) lies on the interior's boundary ring.
func (g Grid) IsEdge(x, y int) bool {
	if !g.InInterior(x, y) {
		return false
	}
	return x == 1 || x == g.W-2 || y == 1 || y == g.H-2
}

// IsWallRow reports whether y is a top/bottom solid ghost row.
func (g Grid) IsWallRow(y int) bool { return y == 0 || y == g.H-1 }

// IsInOutColumn reports whether x is the left/right inlet/outlet ghost
// column.
func (g Grid) IsInOutColumn(x int) bool { return x == 0 || x == g.W-1 }

// FluidNodes enumerates the interior fluid-node indices in row-major
// order: the canonical iteration order used by every engine.
func (g Grid) FluidNodes() []int {
	nodes := make([]int, 0, (g.W-2)*(g.H-2))
	for y := 1; y <= g.H-2; y++ {
		for x := 1; x <= g.W-2; x++ {
			nodes = append(nodes, g.Node(x, y))
		}
	}
	return nodes
}

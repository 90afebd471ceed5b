package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/spatialmodel/lbm/lattice"
)

// Console renders one node's nine-direction distribution as a 3x3 block
// of values (direction d at row d/3, column d%3, matching the dx/dy
// layout lattice.constants.go uses), colouring the origin node, a named
// far-corner node, and any buffer rows, per the three text-colour codes
// the optional console contract names.
type Console struct {
	w          io.Writer
	origin     int
	farCorner  int
	bufferRows map[int]bool
}

// NewConsole builds a Console writing to w. origin and farCorner are
// node indices; bufferRows lists the row indices (grid y coordinates)
// the parallel framework inserted between strips.
func NewConsole(w io.Writer, origin, farCorner int, bufferRows []int) *Console {
	rows := make(map[int]bool, len(bufferRows))
	for _, y := range bufferRows {
		rows[y] = true
	}
	return &Console{w: w, origin: origin, farCorner: farCorner, bufferRows: rows}
}

var (
	originColor = color.New(color.FgGreen, color.Bold)
	cornerColor = color.New(color.FgYellow, color.Bold)
	bufferColor = color.New(color.FgCyan)
)

// PrintNode writes node's 3x3 distribution block, preceded by a
// colour-coded marker line identifying the node's role, if any.
func (c *Console) PrintNode(grid lattice.Grid, v lattice.View, node int) {
	x, y := grid.XY(node)
	switch {
	case node == c.origin:
		originColor.Fprintf(c.w, "[origin x=%d y=%d]\n", x, y)
	case node == c.farCorner:
		cornerColor.Fprintf(c.w, "[far-corner x=%d y=%d]\n", x, y)
	case c.bufferRows[y]:
		bufferColor.Fprintf(c.w, "[buffer x=%d y=%d]\n", x, y)
	default:
		fmt.Fprintf(c.w, "[x=%d y=%d]\n", x, y)
	}

	f := v.Gather(node)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			d := row*3 + col
			fmt.Fprintf(c.w, "%10s", strconv.FormatFloat(f[d], 'g', 4, 64))
		}
		fmt.Fprintln(c.w)
	}
}

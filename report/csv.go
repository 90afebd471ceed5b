// Package report writes simulation results: a streaming CSV writer for
// the canonical (iteration, x, y, vx, vy, density) result table, and an
// optional ANSI console pretty-printer.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spatialmodel/lbm/lattice"
	"github.com/spatialmodel/lbm/sim"
)

// CSVWriter streams result rows to w one iteration at a time rather than
// buffering the whole table, the same streaming-over-buffering posture
// the teacher's shapefile Output writer takes with its cell iterator.
type CSVWriter struct {
	w    *csv.Writer
	grid lattice.Grid
}

// NewCSVWriter wraps w and immediately writes the header row.
func NewCSVWriter(w io.Writer, grid lattice.Grid) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w), grid: grid}
	if err := cw.w.Write([]string{"iteration", "x", "y", "vx", "vy", "density"}); err != nil {
		return nil, err
	}
	return cw, nil
}

// WriteIteration writes one row per fluid node in res.
func (cw *CSVWriter) WriteIteration(res sim.IterationResult, fluid []int) error {
	row := make([]string, 6)
	row[0] = strconv.Itoa(res.Iteration)
	for i, node := range fluid {
		x, y := cw.grid.XY(node)
		row[1] = strconv.Itoa(x)
		row[2] = strconv.Itoa(y)
		row[3] = strconv.FormatFloat(res.Velocity[i].X, 'g', -1, 64)
		row[4] = strconv.FormatFloat(res.Velocity[i].Y, 'g', -1, 64)
		row[5] = strconv.FormatFloat(res.Density[i], 'g', -1, 64)
		if err := cw.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult streams every captured iteration of res.
func (cw *CSVWriter) WriteResult(res *sim.Result) error {
	for _, it := range res.Iterations {
		if err := cw.WriteIteration(it, res.FluidNodes); err != nil {
			return err
		}
	}
	cw.w.Flush()
	return cw.w.Error()
}

// Flush flushes any buffered rows; call after the last WriteIteration.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

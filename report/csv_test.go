package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/lattice"
	"github.com/spatialmodel/lbm/report"
	"github.com/spatialmodel/lbm/sim"
)

func TestCSVWriterHeaderOnly(t *testing.T) {
	grid, err := lattice.NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	var buf bytes.Buffer
	if _, err := report.NewCSVWriter(&buf, grid); err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if !strings.Contains(buf.String(), "iteration,x,y,vx,vy,density") {
		t.Fatalf("missing header, got %q", buf.String())
	}
}

func TestCSVWriterWriteResult(t *testing.T) {
	grid, err := lattice.NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	var buf bytes.Buffer
	cw, err := report.NewCSVWriter(&buf, grid)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	fluid := []int{grid.Node(1, 1), grid.Node(2, 1)}
	res := &sim.Result{
		FluidNodes: fluid,
		Iterations: []sim.IterationResult{
			{Iteration: 1, Velocity: []lbm.Vec2{{X: 0.01}, {X: 0.02}}, Density: []float64{1.0, 1.01}},
		},
	}
	if err := cw.WriteResult(res); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows): %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "1,1,1,0.01,0,1") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

package sim_test

import (
	"math"
	"strings"
	"testing"

	"github.com/spatialmodel/lbm/config"
	"github.com/spatialmodel/lbm/sim"
)

func mustConfig(t *testing.T, csv string) *config.Data {
	t.Helper()
	d, err := config.Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("config.Read: %v", err)
	}
	return d
}

func TestRunSequentialTwoLattice(t *testing.T) {
	d := mustConfig(t, `algorithm,sequential_two_lattice
horizontal_nodes,10
vertical_nodes,10
time_steps,10
inlet_velocity,0.05:0.0
outlet_velocity,0.05:0.0
`)
	res, err := sim.Run(d, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.FluidNodes) == 0 {
		t.Fatal("no fluid nodes")
	}
}

func TestRunCapturesIterationsWhenRequested(t *testing.T) {
	d := mustConfig(t, `algorithm,sequential_two_step
horizontal_nodes,8
vertical_nodes,8
time_steps,5
results_to_csv,true
`)
	res, err := sim.Run(d, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Iterations) != 5 {
		t.Fatalf("len(Iterations) = %d, want 5", len(res.Iterations))
	}
	last := res.Iterations[len(res.Iterations)-1]
	for _, rho := range last.Density {
		if math.IsNaN(rho) {
			t.Fatal("density is NaN")
		}
	}
}

func TestRunParallelMatchesLoggerOptional(t *testing.T) {
	d := mustConfig(t, `algorithm,parallel_two_step
horizontal_nodes,12
vertical_nodes,13
subdomain_count,2
time_steps,8
`)
	logger := sim.NewLogger(false)
	res, err := sim.Run(d, logger)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.FluidNodes) == 0 {
		t.Fatal("no fluid nodes")
	}
}

package engine_test

import (
	"testing"

	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/engine"
	"github.com/spatialmodel/lbm/lattice"
)

func mustSetup(t *testing.T, w, h int, layout lattice.Layout) engine.Setup {
	t.Helper()
	grid, err := lattice.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cfg, err := lattice.NewConfig(grid, 0.8, layout, false)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)
	params := boundary.Params{
		InletVelocity:   lbm.Vec2{X: 0.05},
		OutletVelocity:  lbm.Vec2{X: 0.05},
		InletDensity:    1.0,
		OutletDensity:   1.0,
		TurbulentFactor: 1.1,
	}
	return engine.Setup{
		Config:     cfg,
		Adjacency:  adj,
		FluidNodes: pm.FluidNodes(),
		Policy:     boundary.VelInDenOut,
		Params:     params,
	}
}

func newAllEngines(t *testing.T, w, h int, layout lattice.Layout) map[string]engine.Engine {
	t.Helper()
	setup := mustSetup(t, w, h, layout)
	u0 := lbm.Vec2{X: 0.02}
	return map[string]engine.Engine{
		"two_lattice": engine.NewTwoLattice(setup, 1.0, u0),
		"two_step":    engine.NewTwoStep(setup, 1.0, u0),
		"swap":        engine.NewSwap(setup, 1.0, u0),
		"shift":       engine.NewShift(setup, 1.0, u0),
	}
}

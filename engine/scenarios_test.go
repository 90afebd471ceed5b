package engine_test

import (
	"math"
	"testing"

	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/engine"
	"github.com/spatialmodel/lbm/lattice"
)

// TestScenarioS1SingleStep reproduces scenario S1: a single two-lattice
// step from rest (outlet ghost at zero velocity too), with a fixed inlet
// velocity under vel-in/den-out, makes the first interior column's u_x
// strictly positive and leaves every other interior column's u_x at zero.
func TestScenarioS1SingleStep(t *testing.T) {
	grid, err := lattice.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := lattice.NewConfig(grid, 1.4, lattice.Collision, false)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)
	params := boundary.Params{
		InletVelocity:  lbm.Vec2{X: 0.1},
		OutletVelocity: lbm.Vec2{},
		InletDensity:   1.0,
		OutletDensity:  1.0,
	}
	setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: pm.FluidNodes(), Policy: boundary.VelInDenOut, Params: params}

	e := engine.NewTwoLattice(setup, 1.0, lbm.Vec2{})
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	for x := 1; x <= grid.W-2; x++ {
		for y := 1; y <= grid.H-2; y++ {
			node := grid.Node(x, y)
			ux := e.Velocity()[node].X
			if x == 1 {
				if ux <= 0 {
					t.Errorf("interior column x=1: expected strictly positive u_x at node %d, got %v", node, ux)
				}
			} else {
				if math.Abs(ux) > 1e-12 {
					t.Errorf("interior column x=%d: expected u_x==0 at node %d, got %v", x, node, ux)
				}
			}
		}
	}
}

// TestScenarioS5SolidObstacle reproduces the obstacle part of scenario
// S5: a three-node solid obstacle inside the interior keeps zero
// observable velocity at its own nodes (they are excluded from
// FluidNodes and never written) after 100 two-step steps. The fluid
// nodes around the obstacle are not checked.
func TestScenarioS5SolidObstacle(t *testing.T) {
	grid, err := lattice.NewGrid(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := lattice.NewConfig(grid, 1.4, lattice.Collision, false)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	cx, cy := 10, 10
	pm.SetSolid(cx, cy)
	pm.SetSolid(cx+1, cy)
	pm.SetSolid(cx, cy+1)
	adj := boundary.Build(grid, pm)
	params := boundary.Params{
		InletVelocity:  lbm.Vec2{X: 0.05},
		OutletVelocity: lbm.Vec2{X: 0.05},
		InletDensity:   1.0,
		OutletDensity:  1.0,
	}
	setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: pm.FluidNodes(), Policy: boundary.VelInDenOut, Params: params}

	e := engine.NewTwoStep(setup, 1.0, lbm.Vec2{X: 0.02})
	for i := 0; i < 100; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	obstacle := map[int]bool{
		grid.Node(cx, cy):   true,
		grid.Node(cx+1, cy): true,
		grid.Node(cx, cy+1): true,
	}
	for node := range obstacle {
		v := e.Velocity()[node]
		if v.X != 0 || v.Y != 0 {
			t.Errorf("obstacle node %d: expected zero observable velocity, got %+v", node, v)
		}
	}
}

// TestScenarioS2AllEnginesAgree reproduces scenario S2: 20 steps on a
// 10x10 grid under vel-in/den-out, all four sequential engines under the
// collision layout matching to 1e-9.
func TestScenarioS2AllEnginesAgree(t *testing.T) {
	grid, err := lattice.NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := lattice.NewConfig(grid, 1.4, lattice.Collision, false)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)
	params := boundary.Params{
		InletVelocity:  lbm.Vec2{X: 0.05},
		OutletVelocity: lbm.Vec2{X: 0.05},
		InletDensity:   1.0,
		OutletDensity:  1.0,
	}
	setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: pm.FluidNodes(), Policy: boundary.VelInDenOut, Params: params}

	engines := map[string]engine.Engine{
		"two_lattice": engine.NewTwoLattice(setup, 1.0, lbm.Vec2{}),
		"two_step":    engine.NewTwoStep(setup, 1.0, lbm.Vec2{}),
		"swap":        engine.NewSwap(setup, 1.0, lbm.Vec2{}),
		"shift":       engine.NewShift(setup, 1.0, lbm.Vec2{}),
	}
	for i := 0; i < 20; i++ {
		for name, e := range engines {
			if err := e.Step(); err != nil {
				t.Fatalf("%s step %d: %v", name, i, err)
			}
		}
	}

	ref := engines["two_lattice"]
	for name, e := range engines {
		if name == "two_lattice" {
			continue
		}
		for _, node := range pm.FluidNodes() {
			if diff := math.Abs(ref.Density()[node] - e.Density()[node]); diff > 1e-9 {
				t.Errorf("%s: density mismatch at node %d: %v vs %v", name, node, ref.Density()[node], e.Density()[node])
			}
			rv, ev := ref.Velocity()[node], e.Velocity()[node]
			if math.Abs(rv.X-ev.X) > 1e-9 || math.Abs(rv.Y-ev.Y) > 1e-9 {
				t.Errorf("%s: velocity mismatch at node %d: %+v vs %+v", name, node, rv, ev)
			}
		}
	}
}

// TestScenarioS4LayoutEquivalence reproduces scenario S4: the shift
// engine on a 15x15 grid under each of the three layouts produces
// identical observables after 40 steps.
func TestScenarioS4LayoutEquivalence(t *testing.T) {
	grid, err := lattice.NewGrid(15, 15)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)
	params := boundary.Params{
		InletVelocity:  lbm.Vec2{X: 0.04},
		OutletVelocity: lbm.Vec2{X: 0.04},
		InletDensity:   1.0,
		OutletDensity:  1.0,
	}

	var reference engine.Engine
	for _, layout := range []lattice.Layout{lattice.Collision, lattice.Stream, lattice.Bundle} {
		cfg, err := lattice.NewConfig(grid, 1.4, layout, false)
		if err != nil {
			t.Fatal(err)
		}
		setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: pm.FluidNodes(), Policy: boundary.VelInDenOut, Params: params}
		e := engine.NewShift(setup, 1.0, lbm.Vec2{})
		for i := 0; i < 40; i++ {
			if err := e.Step(); err != nil {
				t.Fatalf("layout %v step %d: %v", layout, i, err)
			}
		}
		if reference == nil {
			reference = e
			continue
		}
		for _, node := range pm.FluidNodes() {
			if diff := math.Abs(reference.Density()[node] - e.Density()[node]); diff > 1e-9 {
				t.Errorf("layout %v: density mismatch at node %d: %v vs %v", layout, node, reference.Density()[node], e.Density()[node])
			}
			rv, ev := reference.Velocity()[node], e.Velocity()[node]
			if math.Abs(rv.X-ev.X) > 1e-9 || math.Abs(rv.Y-ev.Y) > 1e-9 {
				t.Errorf("layout %v: velocity mismatch at node %d: %+v vs %+v", layout, node, rv, ev)
			}
		}
	}
}

// TestScenarioS6MassBalance reproduces scenario S6: under vel-in/den-out
// on a 40x10 channel (40 wide in the flow direction, 10 tall), after 200
// two-step steps the sum of interior densities is within 0.1% of
// W_int*H_int*InletDensity.
func TestScenarioS6MassBalance(t *testing.T) {
	grid, err := lattice.NewGrid(40, 10)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := lattice.NewConfig(grid, 1.4, lattice.Collision, false)
	if err != nil {
		t.Fatal(err)
	}
	pm := boundary.NewPhaseMap(grid)
	adj := boundary.Build(grid, pm)
	const inletDensity = 1.0
	params := boundary.Params{
		InletVelocity:  lbm.Vec2{X: 0.05},
		OutletVelocity: lbm.Vec2{X: 0.05},
		InletDensity:   inletDensity,
		OutletDensity:  inletDensity,
	}
	fluid := pm.FluidNodes()
	setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: fluid, Policy: boundary.VelInDenOut, Params: params}

	e := engine.NewTwoStep(setup, inletDensity, lbm.Vec2{})
	for i := 0; i < 200; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	var sum float64
	for _, node := range fluid {
		sum += e.Density()[node]
	}
	wInt, hInt := grid.W-2, grid.H-2
	want := float64(wInt*hInt) * inletDensity
	if diff := math.Abs(sum-want) / want; diff > 0.001 {
		t.Errorf("mass balance: sum=%v want~%v (diff %.4f%%)", sum, want, diff*100)
	}
}

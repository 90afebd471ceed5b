// Package sim wires a config.Data into the matching engine/parallel
// construction, drives the iteration loop, and captures per-step
// observables for reporting.
package sim

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/config"
	"github.com/spatialmodel/lbm/engine"
	"github.com/spatialmodel/lbm/parallel"
)

// Engine is the common interface every sequential and parallel engine
// satisfies; sim drives the simulation purely through it.
type Engine interface {
	Step() error
	Velocity() []lbm.Vec2
	Density() []float64
}

// Build constructs the engine named by d.Algorithm, along with the
// fluid-node list the caller iterates for reporting. The initial
// condition is equilibrium at rest, density 1, matching the teacher's
// ResetCells-style zeroed start.
func Build(d *config.Data) (Engine, []int, error) {
	cfg, err := d.LatticeConfig()
	if err != nil {
		return nil, nil, err
	}
	pm := boundary.NewPhaseMap(cfg.Grid)
	adj := boundary.Build(cfg.Grid, pm)
	fluid := pm.FluidNodes()

	const rho0 = 1.0
	u0 := lbm.Vec2{}

	if d.Algorithm.Parallel() {
		strips, buffers, err := parallel.Partition(cfg.Grid, d.SubdomainCount)
		if err != nil {
			return nil, nil, err
		}
		setup := parallel.Setup{
			Config: cfg, Adjacency: adj, FluidNodes: fluid,
			Policy: d.Policy, Params: d.Params,
			Strips: strips, Buffers: buffers,
		}
		e, err := buildParallel(d.Algorithm, setup, rho0, u0)
		return e, fluid, err
	}

	setup := engine.Setup{Config: cfg, Adjacency: adj, FluidNodes: fluid, Policy: d.Policy, Params: d.Params}
	e, err := buildSequential(d.Algorithm, setup, rho0, u0)
	return e, fluid, err
}

func buildSequential(alg config.Algorithm, setup engine.Setup, rho0 float64, u0 lbm.Vec2) (Engine, error) {
	switch alg {
	case config.SequentialTwoLattice:
		return engine.NewTwoLattice(setup, rho0, u0), nil
	case config.SequentialTwoStep:
		return engine.NewTwoStep(setup, rho0, u0), nil
	case config.SequentialSwap:
		return engine.NewSwap(setup, rho0, u0), nil
	case config.SequentialShift:
		return engine.NewShift(setup, rho0, u0), nil
	default:
		return nil, lbm.NewConfigError(lbm.ErrUnknownAlgorithm, "algorithm", alg.String())
	}
}

func buildParallel(alg config.Algorithm, setup parallel.Setup, rho0 float64, u0 lbm.Vec2) (Engine, error) {
	switch alg {
	case config.ParallelTwoLattice, config.ParallelTwoLatticeFramework:
		return parallel.NewTwoLattice(setup, rho0, u0), nil
	case config.ParallelTwoStep:
		return parallel.NewTwoStep(setup, rho0, u0), nil
	case config.ParallelSwap:
		return parallel.NewSwap(setup, rho0, u0), nil
	case config.ParallelShift:
		return parallel.NewShift(setup, rho0, u0), nil
	default:
		return nil, lbm.NewConfigError(lbm.ErrUnknownAlgorithm, "algorithm", alg.String())
	}
}

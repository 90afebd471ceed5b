// Package engine implements the four sequential streaming disciplines —
// two-lattice, two-step, swap and shift — as distinct
// memory-layout/traversal schemes for the same physical update. Engine
// code never branches on lattice.Layout; it only calls through
// lattice.View, which is layout-agnostic.
package engine

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// Engine advances the simulation by one discrete time step and exposes
// the resulting observable arrays.
type Engine interface {
	Step() error
	Velocity() []lbm.Vec2
	Density() []float64
}

// Observables holds the per-node velocity/density arrays captured at the
// end of a step, sized by the grid's total node count (fluid interior
// entries are populated; ghost and solid entries are left at zero).
type Observables struct {
	Velocity []lbm.Vec2
	Density  []float64
}

func newObservables(n int) Observables {
	return Observables{Velocity: make([]lbm.Vec2, n), Density: make([]float64, n)}
}

func (o Observables) record(node int, rho float64, u lbm.Vec2) {
	o.Density[node] = rho
	o.Velocity[node] = u
}

// Setup bundles everything an engine constructor needs: geometry,
// numerics, the precomputed border adjacency, the fluid-node iteration
// order, and the inlet/outlet policy/parameters.
type Setup struct {
	Config     lattice.Config
	Adjacency  *boundary.Adjacency
	FluidNodes []int
	Policy     boundary.Policy
	Params     boundary.Params
}

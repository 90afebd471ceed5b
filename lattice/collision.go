package lattice

import "github.com/spatialmodel/lbm"

// Collide applies local BGK relaxation to a node's nine values in place,
// replacing each f_d with f_d - (1/tau)*(f_d - f_eq_d). Collision only
// touches the node passed in; it has no knowledge of neighbours.
func Collide(f *[NumDirections]float64, tau float64) {
	rho, u := Macroscopic(f)
	invTau := 1. / tau
	for d := 0; d < NumDirections; d++ {
		feq := Equilibrium(d, u, rho)
		f[d] -= invTau * (f[d] - feq)
	}
}

// CollideObserve is Collide but also returns the macroscopic density and
// velocity computed from f *before* relaxation, which is what the
// engines capture as the step's observable state.
func CollideObserve(f *[NumDirections]float64, tau float64) (rho float64, u lbm.Vec2) {
	rho, u = Macroscopic(f)
	invTau := 1. / tau
	for d := 0; d < NumDirections; d++ {
		feq := Equilibrium(d, u, rho)
		f[d] -= invTau * (f[d] - feq)
	}
	return rho, u
}

package lattice

import "github.com/spatialmodel/lbm"

// Equilibrium returns the Maxwell-Boltzmann equilibrium distribution
// value for direction d given velocity u and density rho:
//
//	f_eq_d = w_d * (rho + 3*(e_d.u) + 9/2*(e_d.u)^2 - 3/2*(u.u))
func Equilibrium(d int, u lbm.Vec2, rho float64) float64 {
	e := directionVectors[d]
	eu := e.Dot(u)
	uu := u.Dot(u)
	return weights[d] * (rho + 3*eu + 4.5*eu*eu - 1.5*uu)
}

// EquilibriumAll fills dst with the full nine-value equilibrium
// distribution for (u, rho).
func EquilibriumAll(dst *[NumDirections]float64, u lbm.Vec2, rho float64) {
	for d := 0; d < NumDirections; d++ {
		dst[d] = Equilibrium(d, u, rho)
	}
}

// Density sums the nine distribution values at a node.
func Density(f *[NumDirections]float64) float64 {
	var sum float64
	for d := 0; d < NumDirections; d++ {
		sum += f[d]
	}
	return sum
}

// Velocity returns the weighted sum of a node's nine distribution values
// against their direction vectors.
func Velocity(f *[NumDirections]float64) lbm.Vec2 {
	var u lbm.Vec2
	for d := 0; d < NumDirections; d++ {
		u = u.Add(directionVectors[d].Scale(f[d]))
	}
	return u
}

// Macroscopic is a fused read of both density and velocity from a single
// pass over a node's nine values, avoiding the double traversal of
// calling Density and Velocity separately.
func Macroscopic(f *[NumDirections]float64) (rho float64, u lbm.Vec2) {
	for d := 0; d < NumDirections; d++ {
		rho += f[d]
		u = u.Add(directionVectors[d].Scale(f[d]))
	}
	return rho, u
}

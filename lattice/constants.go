// Package lattice implements the D2Q9 velocity set, the three
// distribution-storage layouts, macroscopic observables, equilibrium and
// BGK collision — the layout-agnostic scientific core shared by every
// streaming engine.
package lattice

import "github.com/spatialmodel/lbm"

// NumDirections is the size of the D2Q9 velocity set.
const NumDirections = 9

// Rest is the index of the rest (zero-velocity) direction.
const Rest = 4

// directionVectors holds e_d for d in [0,9), computed once at package
// init so engine code never repeats the (d%3-1, d/3-1) arithmetic.
var directionVectors [NumDirections]lbm.Vec2

// weights holds w_d for d in [0,9).
var weights [NumDirections]float64

func init() {
	for d := 0; d < NumDirections; d++ {
		dx := float64(d%3 - 1)
		dy := float64(d/3 - 1)
		directionVectors[d] = lbm.Vec2{X: dx, Y: dy}
		switch {
		case dx == 0 && dy == 0:
			weights[d] = 4. / 9.
		case dx == 0 || dy == 0:
			weights[d] = 1. / 9.
		default:
			weights[d] = 1. / 36.
		}
	}
}

// Direction returns the (Δx, Δy) velocity vector for direction d.
func Direction(d int) lbm.Vec2 { return directionVectors[d] }

// Weight returns the D2Q9 weight for direction d.
func Weight(d int) float64 { return weights[d] }

// Invert returns the direction opposite d: invert(d) = 8-d.
func Invert(d int) int { return 8 - d }

// StreamingDirections are the eight directions excluding the rest
// particle.
func StreamingDirections() []int {
	dirs := make([]int, 0, NumDirections-1)
	for d := 0; d < NumDirections; d++ {
		if d != Rest {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// dxOf and dyOf expose the integer offsets directly, avoiding a float
// round-trip in the hot neighbour-index path.
func dxOf(d int) int { return d%3 - 1 }
func dyOf(d int) int { return d/3 - 1 }

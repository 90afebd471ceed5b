package lattice

import (
	"math"
	"testing"

	"github.com/spatialmodel/lbm"
)

func TestCollisionPreservesMass(t *testing.T) {
	f := [NumDirections]float64{0.1, 0.2, 0.15, 0.3, 0.5, 0.12, 0.07, 0.22, 0.18}
	before := Density(&f)
	Collide(&f, 1.4)
	after := Density(&f)
	if math.Abs(after-before) > 1e-9 {
		t.Errorf("mass before=%v after=%v, collision must conserve it", before, after)
	}
}

func TestCollisionObserveReturnsPreCollisionState(t *testing.T) {
	f := [NumDirections]float64{0.1, 0.2, 0.15, 0.3, 0.5, 0.12, 0.07, 0.22, 0.18}
	wantRho, wantU := Macroscopic(&f)
	gotRho, gotU := CollideObserve(&f, 1.4)
	if gotRho != wantRho || gotU != wantU {
		t.Errorf("CollideObserve returned post-collision macroscopic state")
	}
}

func TestCollisionAtEquilibriumIsFixedPoint(t *testing.T) {
	var f [NumDirections]float64
	EquilibriumAll(&f, lbm.Vec2{X: 0.02, Y: -0.01}, 1.2)
	before := f
	Collide(&f, 0.8)
	for d := range f {
		if math.Abs(f[d]-before[d]) > 1e-9 {
			t.Errorf("collision at equilibrium changed f[%d]: %v -> %v", d, before[d], f[d])
		}
	}
}

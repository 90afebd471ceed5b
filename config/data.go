package config

import (
	"github.com/spatialmodel/lbm"
	"github.com/spatialmodel/lbm/boundary"
	"github.com/spatialmodel/lbm/lattice"
)

// Data is the fully validated, typed configuration a run is built from.
// Every field traces back to a key in the configuration table; fields
// with no independent storage (total_node_count and friends) are
// recomputed from Grid rather than carried through.
type Data struct {
	DebugMode     bool
	ResultsToCSV  bool
	Algorithm     Algorithm
	Layout        lattice.Layout
	Grid          lattice.Grid
	RelaxationTime float64
	TimeSteps     int

	SubdomainHeight int
	SubdomainCount  int
	BufferCount     int

	Policy boundary.Policy
	Params boundary.Params

	ShiftOffset int
}

// LatticeConfig builds the lattice.Config this data describes.
func (d *Data) LatticeConfig() (lattice.Config, error) {
	cfg, err := lattice.NewConfig(d.Grid, d.RelaxationTime, d.Layout, d.DebugMode)
	if err != nil {
		return lattice.Config{}, err
	}
	cfg.ShiftOffset = d.ShiftOffset
	return cfg, nil
}

// validate checks the cross-field invariants spec's error-handling
// design names: grid size, relaxation time, shift offset (when the
// selected algorithm uses the shift engine), and strip geometry (when
// the selected algorithm is parallel).
func (d *Data) validate() error {
	if _, err := lattice.NewGrid(d.Grid.W, d.Grid.H); err != nil {
		return err
	}
	if d.RelaxationTime <= 0 {
		return lbm.NewConfigError(lbm.ErrNegativeTau, "relaxation_time", d.RelaxationTime)
	}
	if d.Algorithm == SequentialShift || d.Algorithm == ParallelShift {
		if d.ShiftOffset != d.Grid.W+1 {
			return lbm.NewConfigError(lbm.ErrShiftOffset, "shift_offset", d.ShiftOffset)
		}
	}
	if d.Algorithm.Parallel() {
		interior := d.Grid.H - 2
		remainder := interior - (d.SubdomainCount - 1)
		if d.SubdomainCount <= 0 || remainder <= 0 || remainder%d.SubdomainCount != 0 {
			return lbm.NewConfigError(lbm.ErrStripGeometry, "subdomain_count", d.SubdomainCount)
		}
		if remainder/d.SubdomainCount != d.SubdomainHeight {
			return lbm.NewConfigError(lbm.ErrStripGeometry, "subdomain_height", d.SubdomainHeight)
		}
	}
	return nil
}

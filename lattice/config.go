package lattice

import "github.com/spatialmodel/lbm"

// Config is the immutable setup-time geometry/numerics shared by every
// engine: grid shape, relaxation time, storage layout and the shift
// engine's offset. It is threaded explicitly through constructors
// instead of being read from process-wide globals.
type Config struct {
	Grid        Grid
	Tau         float64
	Layout      Layout
	ShiftOffset int // required to equal Grid.W+1 when used by the shift engine
	DebugMode   bool
}

// NewConfig validates and builds a Config. A non-positive relaxation
// time is a configuration error detected here rather than at first use.
// ShiftOffset is set to W+1; ValidateShiftOffset checks it after a
// caller has changed it.
func NewConfig(grid Grid, tau float64, layout Layout, debugMode bool) (Config, error) {
	if tau <= 0 {
		return Config{}, lbm.NewConfigError(lbm.ErrNegativeTau, "relaxation_time", tau)
	}
	return Config{
		Grid:        grid,
		Tau:         tau,
		Layout:      layout,
		ShiftOffset: grid.W + 1,
		DebugMode:   debugMode,
	}, nil
}

// ValidateShiftOffset confirms the shift-engine offset invariant of
// spec/design: offset == W+1.
func (c Config) ValidateShiftOffset() error {
	if c.ShiftOffset != c.Grid.W+1 {
		return lbm.NewConfigError(lbm.ErrShiftOffset, "shift_offset", c.ShiftOffset)
	}
	return nil
}

// NewView builds a zero-base View over data using this config's layout
// and grid size.
func (c Config) NewView(data []float64) View {
	return NewView(data, c.Layout, c.Grid.N())
}

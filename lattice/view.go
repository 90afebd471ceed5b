package lattice

// View wraps a flat distribution-value buffer with the layout index
// function and a base node offset, so engine code accesses
// view.Get(node, dir) / view.Set(node, dir, v) without ever open-coding
// the layout arithmetic or the shift engine's parity offset.
//
// N is the node count used as the stride in the Stream and Bundle
// layouts; it must equal the logical node count the buffer was sized
// for (the shift engine sizes it as N_fluid+ghost plus its tail
// capacity, see Config.ShiftOffset).
type View struct {
	Data   []float64
	Layout Layout
	N      int
	Base   int
}

// NewView builds a zero-offset view over data for layout/n.
func NewView(data []float64, layout Layout, n int) View {
	return View{Data: data, Layout: layout, N: n}
}

// NewViewOffset builds a view with the given base node offset and a
// stride n that may differ from the grid's own node count — the shift
// engine sizes n as N_grid + its offset tail, so Stream/Bundle index
// arithmetic covers the larger logical buffer.
func NewViewOffset(data []float64, layout Layout, n, base int) View {
	return View{Data: data, Layout: layout, N: n, Base: base}
}

// WithBase returns a copy of v with a different base offset, used by the
// shift engine to switch between its two alternating parity views
// without mutating the original.
func (v View) WithBase(base int) View {
	v.Base = base
	return v
}

// Get reads the value stored for (node, dir).
func (v View) Get(node, dir int) float64 {
	return v.Data[v.Layout.Index(node+v.Base, dir, v.N)]
}

// Set writes val for (node, dir).
func (v View) Set(node, dir int, val float64) {
	v.Data[v.Layout.Index(node+v.Base, dir, v.N)] = val
}

// Gather copies a node's nine values into a contiguous array, the form
// macroscopic/collision math operates on regardless of storage layout.
func (v View) Gather(node int) [NumDirections]float64 {
	var f [NumDirections]float64
	for d := 0; d < NumDirections; d++ {
		f[d] = v.Get(node, d)
	}
	return f
}

// Scatter writes a node's nine values back out through the layout index.
func (v View) Scatter(node int, f [NumDirections]float64) {
	for d := 0; d < NumDirections; d++ {
		v.Set(node, d, f[d])
	}
}

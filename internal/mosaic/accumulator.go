package mosaic

import "github.com/ironsheep/hexify/internal/hexgrid"

// Accumulator buckets color samples by hex cell while preserving the order
// in which cells were first touched. Iteration order is what keeps the
// rendered document deterministic; a bare map would randomize it.
//
// The accumulator is written during sampling and read during rendering,
// never both at once, so it carries no locking.
type Accumulator struct {
	order   []hexgrid.Axial
	samples map[hexgrid.Axial][]RGB
}

// NewAccumulator returns an empty accumulator ready for sampling.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		samples: make(map[hexgrid.Axial][]RGB),
	}
}

// Add appends one sample to cell's bucket, registering the cell on first
// touch. Samples are never deduplicated; a bucket's length equals the
// number of sub-grid points that rounded into the cell.
func (a *Accumulator) Add(cell hexgrid.Axial, c RGB) {
	if _, ok := a.samples[cell]; !ok {
		a.order = append(a.order, cell)
	}
	a.samples[cell] = append(a.samples[cell], c)
}

// Len returns the number of populated cells.
func (a *Accumulator) Len() int {
	return len(a.order)
}

// Cells returns the populated cells in first-touch order.
func (a *Accumulator) Cells() []hexgrid.Axial {
	return append([]hexgrid.Axial(nil), a.order...)
}

// Samples returns the bucket for cell, or nil if the cell is unpopulated.
func (a *Accumulator) Samples(cell hexgrid.Axial) []RGB {
	return a.samples[cell]
}

// Each calls fn for every populated cell in first-touch order.
func (a *Accumulator) Each(fn func(cell hexgrid.Axial, samples []RGB)) {
	for _, cell := range a.order {
		fn(cell, a.samples[cell])
	}
}

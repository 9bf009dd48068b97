package lights

// Sequence yields numbers in [0,1) used to jitter area-light samples
type Sequence interface {
	Next() float64
}

// Halton is the low-discrepancy radical-inverse sequence. Unlike uniform
// random jitter it fills each cell evenly, so soft shadows converge without
// visible noise at low sample counts.
type Halton struct {
	base  uint64
	index uint64
}

// NewHalton creates a Halton sequence for the given base, typically a small
// prime.
func NewHalton(base int) *Halton {
	return &Halton{base: uint64(base)}
}

// Next returns the radical inverse of the next index
func (h *Halton) Next() float64 {
	h.index++
	f := 1.0
	r := 0.0
	for i := h.index; i > 0; i /= h.base {
		f /= float64(h.base)
		r += f * float64(i%h.base)
	}
	return r
}

// Cyclic replays a fixed list of values forever. Tests use it to pin the
// jitter down.
type Cyclic struct {
	values []float64
	pos    int
}

// NewCyclic creates a sequence cycling through the given values
func NewCyclic(values ...float64) *Cyclic {
	return &Cyclic{values: values}
}

// Next returns the next value, wrapping around at the end
func (c *Cyclic) Next() float64 {
	v := c.values[c.pos]
	c.pos = (c.pos + 1) % len(c.values)
	return v
}

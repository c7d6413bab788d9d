package model

// Change records one cell whose state flipped during a generation.
type Change struct {
	Index int
	Alive bool
}

// Delta is the ordered list of changes for one generation, in row-major discovery order.
type Delta []Change

// Indices returns the changed indices in order
func (d Delta) Indices() []int {
	out := make([]int, len(d))
	for i, c := range d {
		out[i] = c.Index
	}
	return out
}

// Births counts cells that came alive
func (d Delta) Births() (n int) {
	for _, c := range d {
		if c.Alive {
			n++
		}
	}
	return
}

// Deaths counts cells that died
func (d Delta) Deaths() int {
	return len(d) - d.Births()
}

// Package stepper advances a toroidal Life grid by one generation and reports what changed.
package stepper

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/rules"
)

// Stepper computes generations. It holds no grid state between calls.
type Stepper struct {
	workers int
}

// Option configures a Stepper
type Option func(*Stepper)

// WithWorkers shards the counting pass across n goroutines. n <= 1 keeps it single-threaded.
func WithWorkers(n int) Option {
	return func(s *Stepper) {
		s.workers = n
	}
}

// New creates a Stepper
func New(opts ...Option) *Stepper {
	s := &Stepper{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the number of goroutines used for the counting pass
func (s *Stepper) Workers() int {
	return max(s.workers, 1)
}

// Step advances g by exactly one generation and returns the cells that flipped.
// Every neighbor count reads the pre-step grid; toggles are committed afterwards.
func (s *Stepper) Step(g *model.Grid) model.Delta {
	var toggled []int
	if s.Workers() > 1 && g.Height() > 1 {
		toggled = s.collectParallel(g)
	} else {
		toggled = collectRows(g, 0, g.Height(), nil)
	}
	return commit(g, toggled)
}

// Step advances g by one generation with a single-threaded Stepper
func Step(g *model.Grid) model.Delta {
	return New().Step(g)
}

// NeighborCount counts the live cells among the eight toroidal neighbors of (x, y).
// On a dimension of 1 the wrapped lookups land on the cell itself and each lookup counts.
func NeighborCount(g *model.Grid, x, y int) int {
	var (
		w, h  = g.Width(), g.Height()
		left  = prev(x, w)
		right = next(x, w)
		up    = prev(y, h)
		down  = next(y, h)
		count = 0
	)
	for _, alive := range [8]bool{
		g.Get(left, up), g.Get(x, up), g.Get(right, up),
		g.Get(left, y), g.Get(right, y),
		g.Get(left, down), g.Get(x, down), g.Get(right, down),
	} {
		if alive {
			count++
		}
	}
	return count
}

// collectParallel splits rows into contiguous bands, one per worker, and joins the
// per-band results in band order so the output matches a row-major scan.
func (s *Stepper) collectParallel(g *model.Grid) []int {
	var (
		eg            errgroup.Group
		height        = g.Height()
		numWorkers    = min(s.Workers(), height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([][]int, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			bands[i] = collectRows(g, startRow, endRow, nil)
			return nil
		})
	}

	// Workers never fail; Wait is the barrier between counting and committing.
	_ = eg.Wait()

	var total int
	for _, band := range bands {
		total += len(band)
	}
	toggled := make([]int, 0, total)
	for _, band := range bands {
		toggled = append(toggled, band...)
	}
	return toggled
}

// collectRows appends the index of every cell in rows [startRow, endRow) that flips.
func collectRows(g *model.Grid, startRow, endRow int, toggled []int) []int {
	for y := startRow; y < endRow; y++ {
		for x := range g.Width() {
			if rules.Toggles(NeighborCount(g, x, y), g.Get(x, y)) {
				toggled = append(toggled, g.Index(x, y))
			}
		}
	}
	return toggled
}

func commit(g *model.Grid, toggled []int) model.Delta {
	delta := make(model.Delta, len(toggled))
	for i, idx := range toggled {
		delta[i] = model.Change{Index: idx, Alive: g.Toggle(idx)}
	}
	return delta
}

func prev(coord, dim int) int {
	if coord == 0 {
		return dim - 1
	}
	return coord - 1
}

func next(coord, dim int) int {
	if coord == dim-1 {
		return 0
	}
	return coord + 1
}

package model

import (
	"crypto/md5"
	"fmt"
)

// Grid represents the toroidal game board.
// Cells are stored row-major: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new grid with every cell dead. Non-positive dimensions panic.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps (x, y) to its flat index. Callers keep x in [0, width) and y in [0, height).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coords maps a flat index back to (x, y).
func (g *Grid) Coords(index int) (x, y int) {
	return index % g.width, index / g.width
}

// SetIndex marks (x, y) alive. Only used while seeding.
func (g *Grid) SetIndex(x, y int) {
	g.cells[g.Index(x, y)] = true
}

// Get returns the state of a cell whose coordinates are already wrapped
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.Index(x, y)]
}

// At returns the state of the cell at index
func (g *Grid) At(index int) bool {
	return g.cells[index]
}

// Toggle flips the cell at index and returns its new state.
func (g *Grid) Toggle(index int) bool {
	g.cells[index] = !g.cells[index]
	return g.cells[index]
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

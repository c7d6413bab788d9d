// Package render is a terminal presentation adapter for the simulation.
// It keeps its own copy of every cell and only touches the cells a Delta reports.
package render

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sheikhrachel/torus-gol/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\x1b[H\x1b[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	width int
	cells []string
}

// NewTerminalRenderer draws the initial frame from g
func NewTerminalRenderer(g *model.Grid) *TerminalRenderer {
	r := &TerminalRenderer{
		width: g.Width(),
		cells: make([]string, g.Len()),
	}
	for i := range r.cells {
		r.cells[i] = glyph(g.At(i))
	}
	return r
}

// Apply updates exactly the cells reported in delta
func (r *TerminalRenderer) Apply(delta model.Delta) {
	for _, c := range delta {
		r.cells[c.Index] = glyph(c.Alive)
	}
}

// Alive reports whether the renderer currently shows index as alive
func (r *TerminalRenderer) Alive(index int) bool {
	return r.cells[index] == gridPosBlock
}

// Display renders the current frame to w
func (r *TerminalRenderer) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, cell := range r.cells {
		bw.WriteString(cell)
		if (i+1)%r.width == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Clear clears the terminal screen. It does nothing when w is not a terminal.
func (r *TerminalRenderer) Clear(w io.Writer) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	_, err := io.WriteString(w, ansiClear)
	return err
}

func glyph(alive bool) string {
	if alive {
		return gridPosBlock
	}
	return gridPosEmpty
}

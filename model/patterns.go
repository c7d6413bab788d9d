package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for names it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// Point is a cell coordinate relative to a pattern's origin
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pattern is a set of live cells relative to an origin
type Pattern []Point

// PatternRandom is handled by Randomize rather than Seed
const PatternRandom = "random"

// ReferenceSeed is the default starting pattern, placed at the grid origin.
var ReferenceSeed = Pattern{{6, 6}, {6, 7}, {6, 8}, {5, 8}, {4, 7}}

var patterns = map[string]Pattern{
	"reference": ReferenceSeed,
	"glider":    {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"blinker":   {{0, 0}, {1, 0}, {2, 0}},
	"block":     {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

// PatternNames returns every pattern name accepted by LookupPattern, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns)+1)
	for name := range patterns {
		names = append(names, name)
	}
	names = append(names, PatternRandom)
	sort.Strings(names)
	return names
}

// LookupPattern returns the named pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// Seed marks every cell of p alive, offset by (originX, originY) and wrapped onto the torus
func Seed(g *Grid, p Pattern, originX, originY int) {
	for _, pt := range p {
		g.SetIndex(wrap(originX+pt.X, g.width), wrap(originY+pt.Y, g.height))
	}
}

// Randomize fills the grid with living cells at the given density.
// A zero seed draws from the global source.
func Randomize(g *Grid, density float64, seed int64) {
	roll := rand.Float64
	if seed != 0 {
		roll = rand.New(rand.NewSource(seed)).Float64
	}
	for i := range g.cells {
		g.cells[i] = roll() < density
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

package stepper

import (
	"reflect"
	"testing"

	"github.com/sheikhrachel/torus-gol/model"
)

func gridWith(w, h int, live ...model.Point) *model.Grid {
	g := model.NewGrid(w, h)
	model.Seed(g, live, 0, 0)
	return g
}

func TestStepDeadGridStaysDead(t *testing.T) {
	g := model.NewGrid(16, 9)
	for gen := range 10 {
		if delta := Step(g); len(delta) != 0 {
			t.Fatalf("generation %d: expected empty delta, got %v", gen, delta)
		}
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("CountLivingCells() = %d, expected 0", n)
	}
}

func TestStepBlockIsStillLife(t *testing.T) {
	g := gridWith(6, 6, model.Point{X: 2, Y: 2}, model.Point{X: 3, Y: 2}, model.Point{X: 2, Y: 3}, model.Point{X: 3, Y: 3})
	before := g.Hash()

	if delta := Step(g); len(delta) != 0 {
		t.Errorf("expected empty delta for block, got %v", delta)
	}
	if g.Hash() != before {
		t.Error("block changed after one step")
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	g := gridWith(5, 5, model.Point{X: 1, Y: 2}, model.Point{X: 2, Y: 2}, model.Point{X: 3, Y: 2})
	original := g.Clone()

	first := Step(g)
	expectedFirst := model.Delta{
		{Index: 7, Alive: true},   // (2,1)
		{Index: 11, Alive: false}, // (1,2)
		{Index: 13, Alive: false}, // (3,2)
		{Index: 17, Alive: true},  // (2,3)
	}
	if !reflect.DeepEqual(first, expectedFirst) {
		t.Fatalf("first step delta = %v, expected %v", first, expectedFirst)
	}
	if !g.Get(2, 1) || !g.Get(2, 2) || !g.Get(2, 3) || g.CountLivingCells() != 3 {
		t.Fatal("expected vertical blinker after first step")
	}

	second := Step(g)
	expectedSecond := model.Delta{
		{Index: 7, Alive: false},
		{Index: 11, Alive: true},
		{Index: 13, Alive: true},
		{Index: 17, Alive: false},
	}
	if !reflect.DeepEqual(second, expectedSecond) {
		t.Fatalf("second step delta = %v, expected %v", second, expectedSecond)
	}
	if g.Hash() != original.Hash() {
		t.Error("blinker did not return to its original state after two steps")
	}
}

func TestNeighborCountWrapsAround(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		live     []model.Point
		x, y     int
		expected int
	}{
		{
			name:     "3x3 opposite corner is diagonal neighbor",
			w:        3,
			h:        3,
			live:     []model.Point{{X: 0, Y: 0}, {X: 2, Y: 2}},
			x:        0,
			y:        0,
			expected: 1,
		},
		{
			name:     "3x3 all four corners",
			w:        3,
			h:        3,
			live:     []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}},
			x:        0,
			y:        0,
			expected: 3,
		},
		{
			name:     "5x5 far corner",
			w:        5,
			h:        5,
			live:     []model.Point{{X: 4, Y: 4}},
			x:        0,
			y:        0,
			expected: 1,
		},
		{
			name:     "5x5 wrap on x only",
			w:        5,
			h:        5,
			live:     []model.Point{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}},
			x:        0,
			y:        2,
			expected: 3,
		},
		{
			name:     "5x5 interior cell far from edge",
			w:        5,
			h:        5,
			live:     []model.Point{{X: 4, Y: 4}},
			x:        2,
			y:        2,
			expected: 0,
		},
		{
			name:     "width 1 counts itself through left and right",
			w:        1,
			h:        3,
			live:     []model.Point{{X: 0, Y: 1}},
			x:        0,
			y:        1,
			expected: 2,
		},
		{
			name:     "1x1 counts itself eight times",
			w:        1,
			h:        1,
			live:     []model.Point{{X: 0, Y: 0}},
			x:        0,
			y:        0,
			expected: 8,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridWith(tc.w, tc.h, tc.live...)
			if got := NeighborCount(g, tc.x, tc.y); got != tc.expected {
				t.Errorf("NeighborCount(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestStepSingleCellGridDies(t *testing.T) {
	g := gridWith(1, 1, model.Point{})
	delta := Step(g)
	expected := model.Delta{{Index: 0, Alive: false}}
	if !reflect.DeepEqual(delta, expected) {
		t.Errorf("delta = %v, expected %v", delta, expected)
	}
}

func TestStepGliderCrossesTorus(t *testing.T) {
	g := model.NewGrid(8, 8)
	glider, err := model.LookupPattern("glider")
	if err != nil {
		t.Fatalf("LookupPattern() failed: %v", err)
	}
	model.Seed(g, glider, 0, 0)
	start := g.Hash()

	// A glider moves one cell diagonally every 4 generations
	for gen := 1; gen <= 32; gen++ {
		Step(g)
		if n := g.CountLivingCells(); n != 5 {
			t.Fatalf("generation %d: population = %d, expected 5", gen, n)
		}
	}
	if g.Hash() != start {
		t.Error("glider did not return to its starting position after wrapping the torus")
	}
}

func TestStepDeltaMatchesSnapshotDiff(t *testing.T) {
	g := model.NewGrid(32, 24)
	model.Randomize(g, 0.35, 42)

	for gen := range 25 {
		before := g.Clone()
		delta := Step(g)

		if len(delta) > g.Len() {
			t.Fatalf("generation %d: %d changes exceeds %d cells", gen, len(delta), g.Len())
		}

		changed := make(map[int]bool, len(delta))
		last := -1
		for _, c := range delta {
			if c.Index <= last {
				t.Fatalf("generation %d: delta not in row-major order at index %d", gen, c.Index)
			}
			last = c.Index
			changed[c.Index] = true
			if g.At(c.Index) != c.Alive {
				t.Fatalf("generation %d: change %v disagrees with grid", gen, c)
			}
		}
		for i := range g.Len() {
			differs := before.At(i) != g.At(i)
			if differs != changed[i] {
				t.Fatalf("generation %d: index %d differs=%v but reported=%v", gen, i, differs, changed[i])
			}
		}
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a := model.NewGrid(40, 30)
	model.Randomize(a, 0.3, 7)
	b := a.Clone()

	for range 50 {
		da := Step(a)
		db := Step(b)
		if !reflect.DeepEqual(da, db) {
			t.Fatal("same starting grid produced different deltas")
		}
	}
	if a.Hash() != b.Hash() {
		t.Error("same starting grid produced different generations")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {7, 1}, {1, 9}, {3, 3}, {17, 13}, {64, 48},
	}
	workers := []int{2, 3, 4, 7, 64}

	for _, size := range sizes {
		for _, n := range workers {
			seq := model.NewGrid(size.w, size.h)
			model.Randomize(seq, 0.4, int64(size.w*100+size.h))
			par := seq.Clone()
			parallel := New(WithWorkers(n))

			for gen := range 10 {
				want := Step(seq)
				got := parallel.Step(par)
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("%dx%d workers=%d generation %d: parallel delta differs", size.w, size.h, n, gen)
				}
			}
		}
	}
}

func TestWorkers(t *testing.T) {
	if got := New().Workers(); got != 1 {
		t.Errorf("New().Workers() = %d, expected 1", got)
	}
	if got := New(WithWorkers(0)).Workers(); got != 1 {
		t.Errorf("WithWorkers(0).Workers() = %d, expected 1", got)
	}
	if got := New(WithWorkers(6)).Workers(); got != 6 {
		t.Errorf("WithWorkers(6).Workers() = %d, expected 6", got)
	}
}

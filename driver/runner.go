// Package driver owns a grid and advances it at a fixed tick rate, forwarding each
// generation's delta to the terminal renderer.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/render"
	"github.com/sheikhrachel/torus-gol/stepper"
	"github.com/sheikhrachel/torus-gol/utils"
)

// StopReason explains why Run returned
type StopReason string

const (
	StopInterrupted    StopReason = "interrupted"
	StopMaxGenerations StopReason = "max generations"
	StopExtinction     StopReason = "extinction"
	StopStagnation     StopReason = "stagnation"
	StopError          StopReason = "error"
)

// Summary describes a finished run
type Summary struct {
	Generations int
	Population  int
	Reason      StopReason
	Runtime     time.Duration
}

// Runner drives one simulation
type Runner struct {
	config   utils.Config
	grid     *model.Grid
	stepper  *stepper.Stepper
	renderer *render.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	logger   *log.Logger
	out      io.Writer

	generation int
	stagnant   bool
	period     int
	lastTick   time.Time
}

// NewRunner validates config, seeds the grid and prepares the renderer.
// Frames are written to out when config.Render is set.
func NewRunner(config utils.Config, logger *log.Logger, out io.Writer) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewRunner] config rejected")
	}

	grid, err := seedGrid(config)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		config:  config,
		grid:    grid,
		stepper: stepper.New(stepper.WithWorkers(config.Workers)),
		history: model.NewHistory(config.HistorySize),
		stats:   utils.NewStats(),
		logger:  logger,
		out:     out,

		lastTick: time.Now(),
	}
	if config.Render {
		r.renderer = render.NewTerminalRenderer(grid)
	}
	r.history.Push(grid)

	logger.Info("grid seeded",
		"width", grid.Width(),
		"height", grid.Height(),
		"pattern", config.Pattern,
		"population", grid.CountLivingCells(),
		"workers", r.stepper.Workers(),
	)
	return r, nil
}

func seedGrid(config utils.Config) (*model.Grid, error) {
	grid := model.NewGrid(config.Width, config.Height)

	switch config.Pattern {
	case "":
	case model.PatternRandom:
		model.Randomize(grid, config.RandomDensity, config.RandomSeed)
	default:
		p, err := model.LookupPattern(config.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[seedGrid] failed to load pattern")
		}
		model.Seed(grid, p, config.OriginX, config.OriginY)
	}
	model.Seed(grid, config.Cells, 0, 0)
	return grid, nil
}

// Grid returns the simulated grid
func (r *Runner) Grid() *model.Grid {
	return r.grid
}

// Stats returns the running statistics
func (r *Runner) Stats() *utils.Stats {
	return r.stats
}

// Generation returns the number of completed generations
func (r *Runner) Generation() int {
	return r.generation
}

// Tick advances the simulation by one generation and forwards the delta to the renderer
func (r *Runner) Tick() model.Delta {
	delta := r.stepper.Step(r.grid)
	r.generation++

	// The rate is measured between ticks, so pacing counts towards it
	now := time.Now()
	population := r.grid.CountLivingCells()
	r.stats.Update(r.generation, population, delta, now.Sub(r.lastTick))
	r.lastTick = now

	if r.renderer != nil {
		r.renderer.Apply(delta)
	}

	period, repeats := r.history.Repeats(r.grid)
	r.history.Push(r.grid)
	if repeats && !r.stagnant {
		r.logger.Warn("grid stagnant", "generation", r.generation, "period", period)
	}
	r.stagnant = repeats
	r.period = period

	r.logger.Debug("generation",
		"generation", r.generation,
		"changes", len(delta),
		"births", delta.Births(),
		"population", population,
	)
	return delta
}

// Run ticks at config.TicksPerSecond until ctx is cancelled or a stop condition is met.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var ticks <-chan time.Time
	if r.config.TicksPerSecond > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.config.TicksPerSecond))
		defer ticker.Stop()
		ticks = ticker.C
	}

	if err := r.draw(); err != nil {
		return r.summary(StopError), err
	}

	for {
		if reason, done := r.shouldStop(); done {
			r.logger.Info("simulation finished", "reason", reason, "generation", r.generation)
			return r.summary(reason), nil
		}

		if ticks != nil {
			select {
			case <-ctx.Done():
				return r.summary(StopInterrupted), nil
			case <-ticks:
			}
		} else if ctx.Err() != nil {
			return r.summary(StopInterrupted), nil
		}

		r.Tick()
		if err := r.draw(); err != nil {
			return r.summary(StopError), err
		}
	}
}

func (r *Runner) shouldStop() (StopReason, bool) {
	if r.grid.CountLivingCells() == 0 {
		return StopExtinction, true
	}
	if r.config.StopOnStagnation && r.stagnant {
		return StopStagnation, true
	}
	if r.config.MaxGenerations > 0 && r.generation >= r.config.MaxGenerations {
		return StopMaxGenerations, true
	}
	return "", false
}

func (r *Runner) draw() error {
	if r.renderer == nil {
		return nil
	}
	if err := r.renderer.Clear(r.out); err != nil {
		return errors.Wrap(err, "[draw] failed to clear screen")
	}
	if err := r.renderer.Display(r.out); err != nil {
		return errors.Wrap(err, "[draw] failed to write frame")
	}
	if err := r.displayStatus(r.out); err != nil {
		return errors.Wrap(err, "[draw] failed to write status")
	}
	return nil
}

// displayStatus writes the per-frame status lines below the grid
func (r *Runner) displayStatus(w io.Writer) error {
	var (
		living  = r.grid.CountLivingCells()
		density = float64(living) / float64(r.grid.Len()) * 100
		status  = "Active"
	)
	if r.stagnant {
		status = fmt.Sprintf("Stagnant (period %d)", r.period)
	}
	if living == 0 {
		status = "Extinct"
	}

	_, err := fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Changes: %d | Status: %s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		r.generation, living, density, r.stats.LastChanges, status,
		r.stats.GenerationsPerSecond, r.stats.AveragePopulation, r.stats.Runtime().Seconds())
	return err
}

func (r *Runner) summary(reason StopReason) Summary {
	return Summary{
		Generations: r.generation,
		Population:  r.grid.CountLivingCells(),
		Reason:      reason,
		Runtime:     r.stats.Runtime(),
	}
}

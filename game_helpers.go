package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sheikhrachel/torus-gol/driver"
	"github.com/sheikhrachel/torus-gol/utils"
)

// runSimulation loads the config, wires the runner and blocks until it stops
func runSimulation(cmd *cobra.Command, args []string) error {
	config, err := loadRunConfig(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		config.LogLevel = flagLogLevel
	}

	logger, err := newLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}

	runner, err := driver.NewRunner(config, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	displaySummary(cmd.ErrOrStderr(), summary, runner.Stats())
	return nil
}

// loadRunConfig reads the config file and applies any flags the user set explicitly
func loadRunConfig(path string, flags *pflag.FlagSet) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		return config, err
	}

	var errs []error
	setInt := func(name string, dst *int) {
		if flags.Changed(name) {
			v, err := flags.GetInt(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	setBool := func(name string, dst *bool) {
		if flags.Changed(name) {
			v, err := flags.GetBool(name)
			errs = append(errs, err)
			*dst = v
		}
	}

	setInt("width", &config.Width)
	setInt("height", &config.Height)
	setInt("tps", &config.TicksPerSecond)
	setInt("workers", &config.Workers)
	setInt("origin-x", &config.OriginX)
	setInt("origin-y", &config.OriginY)
	setInt("generations", &config.MaxGenerations)
	setBool("stop-on-stagnation", &config.StopOnStagnation)

	if flags.Changed("pattern") {
		config.Pattern, err = flags.GetString("pattern")
		errs = append(errs, err)
	}
	if flags.Changed("density") {
		config.RandomDensity, err = flags.GetFloat64("density")
		errs = append(errs, err)
	}
	if flags.Changed("seed") {
		config.RandomSeed, err = flags.GetInt64("seed")
		errs = append(errs, err)
	}
	if flags.Changed("no-render") {
		noRender, err := flags.GetBool("no-render")
		errs = append(errs, err)
		config.Render = !noRender
	}

	for _, err := range errs {
		if err != nil {
			return config, errors.Wrap(err, "[loadRunConfig] failed to read flag")
		}
	}
	return config, nil
}

// newLogger builds the CLI logger at the given level
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gol",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "[newLogger] bad log level: %+v", level)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// displaySummary shows the final run statistics
func displaySummary(w io.Writer, summary driver.Summary, stats *utils.Stats) {
	fmt.Fprintf(w, "Stopped: %s after %d generations in %.1fs\n",
		summary.Reason, summary.Generations, summary.Runtime.Seconds())
	fmt.Fprintf(w, "Living: %d | Avg Pop: %.1f | Births: %d | Deaths: %d\n",
		summary.Population, stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths)
}

// gol runs Conway's Game of Life on a wrap-around grid in the terminal.
//
// Usage:
//
//	gol run                  - Run the simulation
//	gol patterns             - List the built-in seed patterns
//
// Global flags:
//
//	--config <path>     - YAML config file (default: ./configs/gol.yaml, then built-in defaults)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sheikhrachel/torus-gol/model"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gol",
	Short: "Conway's Game of Life on a torus",
	Long: `gol simulates Conway's Game of Life on a fixed-size grid whose edges wrap
around to the opposite side.

Examples:
  gol run
  gol run --pattern glider --width 20 --height 20
  gol run --pattern random --seed 42 --generations 500 --no-render
  gol run --config ./my-gol.yaml
  gol patterns`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in seed patterns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range model.PatternNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Long: `Run the simulation at a fixed tick rate until interrupted.

The run also stops when every cell is dead, when --generations is reached,
or when the grid repeats a recent state and --stop-on-stagnation is set.`,
	Args: cobra.NoArgs,
	RunE: runSimulation,
}

func init() {
	addRunFlags(runCmd.Flags())
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.Int("width", 0, "Grid width in cells")
	flags.Int("height", 0, "Grid height in cells")
	flags.Int("tps", 0, "Ticks per second (0 = unpaced)")
	flags.Int("workers", 0, "Goroutines used per generation")
	flags.String("pattern", "", "Seed pattern (see 'gol patterns')")
	flags.Int("origin-x", 0, "Pattern origin x")
	flags.Int("origin-y", 0, "Pattern origin y")
	flags.Float64("density", 0, "Live cell density for the random pattern")
	flags.Int64("seed", 0, "RNG seed for the random pattern (0 = time based)")
	flags.Int("generations", 0, "Stop after this many generations (0 = unlimited)")
	flags.Bool("stop-on-stagnation", false, "Stop when the grid repeats a recent state")
	flags.Bool("no-render", false, "Do not draw the grid")
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "schlayout",
	Short: "schlayout - deterministic schematic symbol placement",
	Long: `schlayout places schematic symbols from a circuit description onto a
canvas: bounding boxes from symbol geometry and pin label metrics,
collision-free positions via a bounded retry search, and designator
labels around each placed symbol.

Examples:
  schlayout place circuit.net --lib parts.symlib   # Place and emit JSON
  schlayout info parts.symlib                      # Show symbol extents
  schlayout view layout.json                       # Inspect a result (layout-viewer)`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger creates the command logger. Verbose mode lowers the level
// to debug; timestamps use a short wall-clock format.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

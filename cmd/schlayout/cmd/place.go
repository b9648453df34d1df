package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/layout"
	"github.com/OpenTraceLab/schlayout/pkg/netlist"
	"github.com/OpenTraceLab/schlayout/pkg/symlib"
)

var (
	placeLib     string
	placeConfig  string
	placeOut     string
	placeOverlay bool
)

var placeCmd = &cobra.Command{
	Use:   "place <netlist>",
	Short: "Place circuit symbols and emit the layout as JSON",
	Long: `Place parses a circuit description, resolves each component against a
symbol library, runs the layout engine and writes the placement result
as JSON. Per-symbol placement failures are reported in the result and
logged as warnings; they do not abort the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(os.Stderr)

		parser, err := netlist.NewParser()
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}
		circuit, err := file.Resolve()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		logger.Debugf("parsed circuit %q: %d components, %d nets",
			circuit.Name, len(circuit.Components), len(circuit.Nets))

		lib, err := symlib.LoadFile(placeLib)
		if err != nil {
			return err
		}
		logger.Debugf("loaded %d symbol definitions from %s", lib.Len(), placeLib)

		instances, err := buildInstances(circuit, lib)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(placeConfig, logger)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("overlay") {
			cfg.Overlay = placeOverlay
		}

		engine, err := layout.New(cfg, layout.WithLogger(logger))
		if err != nil {
			return err
		}
		result, err := engine.Place(instances)
		if err != nil {
			return err
		}

		return writeResult(result, placeOut)
	},
}

// buildInstances binds circuit components to library definitions in
// declaration order. An unresolved library reference is an input error,
// not a placement failure.
func buildInstances(circuit *netlist.Circuit, lib *symlib.Library) ([]layout.Instance, error) {
	instances := make([]layout.Instance, 0, len(circuit.Components))
	for _, comp := range circuit.Components {
		def, ok := lib.Get(comp.LibRef)
		if !ok {
			return nil, fmt.Errorf("component %s: symbol %q not in library", comp.Designator, comp.LibRef)
		}
		inst := layout.Instance{
			Designator: comp.Designator,
			Value:      comp.Value,
			Def:        def,
			Rotation:   geometry.Angle(comp.Rotation),
		}
		if comp.Hint != nil {
			inst.Hint = &geometry.Position{X: comp.Hint.X, Y: comp.Hint.Y}
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

func writeResult(result *layout.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func init() {
	placeCmd.Flags().StringVarP(&placeLib, "lib", "l", "", "symbol library file (required)")
	placeCmd.Flags().StringVarP(&placeConfig, "config", "c", "", "TOML configuration file")
	placeCmd.Flags().StringVarP(&placeOut, "out", "o", "", "output file (default: stdout)")
	placeCmd.Flags().BoolVar(&placeOverlay, "overlay", false, "emit debug overlay rectangles in the result")
	placeCmd.MarkFlagRequired("lib")

	rootCmd.AddCommand(placeCmd)
}

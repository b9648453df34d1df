package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/layout"
	"github.com/OpenTraceLab/schlayout/pkg/symlib"
)

var infoConfig string

var infoCmd = &cobra.Command{
	Use:   "info <symlib>",
	Short: "Show symbol library contents and placement extents",
	Long: `Info loads a symbol library and prints each symbol with its pin count
and the extent of its body+pins region at the four cardinal rotations,
using the same metrics the placement engine uses.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(os.Stderr)

		lib, err := symlib.LoadFile(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(infoConfig, logger)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tKIND\tPINS\tROTATION\tWIDTH\tHEIGHT")

		for _, name := range lib.Names() {
			def, _ := lib.Get(name)
			for _, rot := range []geometry.Angle{0, 90, 180, 270} {
				box, err := layout.ComputeBBox(def, rot, "", cfg)
				if err != nil {
					fmt.Fprintf(w, "%s\t%s\t%d\t%v\terror: %v\t\n", name, def.Kind, len(def.Pins), rot, err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%.2f\t%.2f\n",
					name, def.Kind, len(def.Pins), rot,
					box.BodyPins.Width(), box.BodyPins.Height())
			}
		}

		return w.Flush()
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoConfig, "config", "c", "", "TOML configuration file")

	rootCmd.AddCommand(infoCmd)
}

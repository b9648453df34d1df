package main

import (
	"fmt"
	"log"
	"os"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/layout"
	"github.com/OpenTraceLab/schlayout/pkg/symlib"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-bbox <parts.symlib> [symbol]")
		os.Exit(1)
	}

	lib, err := symlib.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Error loading library: %v", err)
	}

	names := lib.Names()
	if len(os.Args) > 2 {
		names = []string{os.Args[2]}
	}

	cfg := layout.DefaultConfig()

	fmt.Printf("Library: %s (%d symbols)\n", os.Args[1], lib.Len())

	for _, name := range names {
		def, ok := lib.Get(name)
		if !ok {
			log.Fatalf("Symbol %q not in library", name)
		}

		fmt.Printf("\nSymbol %s (%s, %d pins):\n", def.Name, def.Kind, len(def.Pins))

		for _, rot := range []geometry.Angle{0, 90, 180, 270} {
			box, err := layout.ComputeBBox(def, rot, def.Name+"?", cfg)
			if err != nil {
				fmt.Printf("  rot %3.0f: error: %v\n", float64(rot), err)
				continue
			}
			fmt.Printf("  rot %3.0f:\n", float64(rot))
			printBox("body", box.Body)
			printBox("pin-labels", box.PinLabels)
			printBox("body+pins", box.BodyPins)
			printBox("designator", box.Designator)
		}
	}
}

func printBox(label string, bb geometry.BoundingBox) {
	if bb.IsEmpty() {
		fmt.Printf("    %-11s (empty)\n", label)
		return
	}
	fmt.Printf("    %-11s (%.2f, %.2f) -> (%.2f, %.2f)  %.2f x %.2f\n",
		label, bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y, bb.Width(), bb.Height())
}

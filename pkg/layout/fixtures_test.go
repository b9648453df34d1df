package layout

import (
	"fmt"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/symbol"
)

// Test fixtures shared across the layout package tests.

func resistorDef() *symbol.Definition {
	return &symbol.Definition{
		Name: "R",
		Kind: symbol.KindPassive,
		Shape: symbol.RectShape(
			geometry.Position{X: -1.016, Y: -2.54},
			geometry.Position{X: 1.016, Y: 2.54},
		),
		Pins: []symbol.Pin{
			{Name: "1", Orientation: symbol.Up, Offset: geometry.Position{X: 0, Y: -2.54}, Length: 1.27},
			{Name: "2", Orientation: symbol.Down, Offset: geometry.Position{X: 0, Y: 2.54}, Length: 1.27},
		},
	}
}

func connectorDef() *symbol.Definition {
	return &symbol.Definition{
		Name: "CONN4",
		Kind: symbol.KindConnector,
		Shape: symbol.RectShape(
			geometry.Position{X: -2.54, Y: -5.08},
			geometry.Position{X: 2.54, Y: 5.08},
		),
		Pins: []symbol.Pin{
			{Name: "1", Orientation: symbol.Left, Offset: geometry.Position{X: -2.54, Y: -3.81}, Length: 2.54},
			{Name: "2", Orientation: symbol.Left, Offset: geometry.Position{X: -2.54, Y: -1.27}, Length: 2.54},
			{Name: "3", Orientation: symbol.Left, Offset: geometry.Position{X: -2.54, Y: 1.27}, Length: 2.54},
			{Name: "4", Orientation: symbol.Left, Offset: geometry.Position{X: -2.54, Y: 3.81}, Length: 2.54},
		},
	}
}

// mcuDef builds a square footprint with pinCount pins distributed over
// the four sides.
func mcuDef(pinCount int) *symbol.Definition {
	perSide := (pinCount + 3) / 4
	half := float64(perSide)*1.27 + 2.54

	var pins []symbol.Pin
	for i := 0; i < pinCount; i++ {
		side := i / perSide
		coord := -half + 2.54 + float64(i%perSide)*2.54
		name := fmt.Sprintf("P%d", i)
		switch side {
		case 0:
			pins = append(pins, symbol.Pin{Name: name, Orientation: symbol.Left, Offset: geometry.Position{X: -half, Y: coord}, Length: 2.54})
		case 1:
			pins = append(pins, symbol.Pin{Name: name, Orientation: symbol.Right, Offset: geometry.Position{X: half, Y: coord}, Length: 2.54})
		case 2:
			pins = append(pins, symbol.Pin{Name: name, Orientation: symbol.Up, Offset: geometry.Position{X: coord, Y: -half}, Length: 2.54})
		default:
			pins = append(pins, symbol.Pin{Name: name, Orientation: symbol.Down, Offset: geometry.Position{X: coord, Y: half}, Length: 2.54})
		}
	}

	return &symbol.Definition{
		Name: fmt.Sprintf("MCU%d", pinCount),
		Kind: symbol.KindIC,
		Shape: symbol.RectShape(
			geometry.Position{X: -half, Y: -half},
			geometry.Position{X: half, Y: half},
		),
		Pins: pins,
	}
}

// plateDef builds a large pinless square used to block placement
func plateDef(half float64) *symbol.Definition {
	return &symbol.Definition{
		Name: "PLATE",
		Kind: symbol.KindGeneric,
		Shape: symbol.RectShape(
			geometry.Position{X: -half, Y: -half},
			geometry.Position{X: half, Y: half},
		),
	}
}

func hint(x, y float64) *geometry.Position {
	return &geometry.Position{X: x, Y: y}
}

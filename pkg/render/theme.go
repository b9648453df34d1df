package render

import "image/color"

// Theme represents a color scheme for layout rendering
type Theme int

const (
	// ThemeLight is a light background theme
	ThemeLight Theme = iota
	// ThemeDark is a dark background theme
	ThemeDark
)

// LayoutColors defines the color scheme for rendering placement results
type LayoutColors struct {
	Background color.NRGBA

	// Symbol drawing
	SymbolBody color.NRGBA
	Designator color.NRGBA
	Fallback   color.NRGBA // designators placed by the fallback rule

	// Overlay regions
	OverlayBody       color.NRGBA
	OverlayPinLabels  color.NRGBA
	OverlayDesignator color.NRGBA

	// Failed placements
	Failure color.NRGBA
}

// GetLayoutColors returns the color scheme for the given theme
func GetLayoutColors(theme Theme) *LayoutColors {
	switch theme {
	case ThemeDark:
		return getDarkTheme()
	default:
		return getLightTheme()
	}
}

func getLightTheme() *LayoutColors {
	return &LayoutColors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // White

		SymbolBody: color.NRGBA{R: 132, G: 0, B: 0, A: 255},   // Dark red
		Designator: color.NRGBA{R: 0, G: 0, B: 0, A: 255},     // Black
		Fallback:   color.NRGBA{R: 200, G: 120, B: 0, A: 255}, // Orange

		OverlayBody:       color.NRGBA{R: 0, G: 132, B: 0, A: 160}, // Green
		OverlayPinLabels:  color.NRGBA{R: 0, G: 0, B: 200, A: 160}, // Blue
		OverlayDesignator: color.NRGBA{R: 160, G: 0, B: 160, A: 160}, // Purple

		Failure: color.NRGBA{R: 220, G: 0, B: 0, A: 255}, // Red
	}
}

func getDarkTheme() *LayoutColors {
	return &LayoutColors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255}, // Dark gray

		SymbolBody: color.NRGBA{R: 255, G: 100, B: 100, A: 255}, // Light red
		Designator: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // White
		Fallback:   color.NRGBA{R: 255, G: 180, B: 60, A: 255},  // Light orange

		OverlayBody:       color.NRGBA{R: 0, G: 255, B: 0, A: 160},   // Bright green
		OverlayPinLabels:  color.NRGBA{R: 80, G: 160, B: 255, A: 160}, // Bright blue
		OverlayDesignator: color.NRGBA{R: 255, G: 120, B: 255, A: 160}, // Bright purple

		Failure: color.NRGBA{R: 255, G: 80, B: 80, A: 255}, // Bright red
	}
}

// String returns the theme name as a string
func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "Dark"
	default:
		return "Light"
	}
}

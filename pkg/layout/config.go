package layout

// Config controls the behavior of a layout pass. All tunables are
// explicit here; the engine has no module-level defaults. A Config is
// passed at engine construction, so differently configured engines can
// run side by side.
type Config struct {
	// Text metrics
	TextHeight float64 `toml:"text_height"` // Rendered text height in mm (default: 1.27)
	WidthRatio float64 `toml:"width_ratio"` // Average glyph width / height (default: 0.65)

	// Collision detection
	Tolerance float64 `toml:"tolerance"` // Boxes may touch but not cross by more than this (default: 0)

	// Placement
	RetryBudget int     `toml:"retry_budget"` // Max nudge attempts per symbol after the initial proposal (default: 36)
	GridStep    float64 `toml:"grid_step"`    // Placement grid pitch in mm (default: 2.54)
	CanvasWidth float64 `toml:"canvas_width"` // Row wrap width in mm for the initial packing (default: 280)

	// Designator labels
	DesignatorClearance float64 `toml:"designator_clearance"` // Gap between a symbol box and its designator (default: 1.27)

	// Debug overlay: when enabled the result carries the raw
	// per-sub-region rectangles as drawable geometry. Never alters
	// placement.
	Overlay bool `toml:"overlay"`
}

// DefaultConfig returns a Config with empirically tuned defaults.
// TextHeight and GridStep follow the usual 50 mil / 100 mil schematic
// conventions; WidthRatio and RetryBudget are approximations tuned by
// visual inspection, not exact contracts.
func DefaultConfig() Config {
	return Config{
		TextHeight:          1.27,
		WidthRatio:          0.65,
		Tolerance:           0,
		RetryBudget:         36,
		GridStep:            2.54,
		CanvasWidth:         280,
		DesignatorClearance: 1.27,
		Overlay:             false,
	}
}

// Validate checks the configuration. Any error here is fatal for the
// whole layout pass: the engine refuses to start until the caller
// fixes the configuration.
func (c Config) Validate() error {
	if c.TextHeight <= 0 {
		return &ConfigError{Field: "text_height", Reason: "must be positive"}
	}
	if c.WidthRatio <= 0 {
		return &ConfigError{Field: "width_ratio", Reason: "must be positive"}
	}
	if c.Tolerance < 0 {
		return &ConfigError{Field: "tolerance", Reason: "must not be negative"}
	}
	if c.RetryBudget < 1 {
		return &ConfigError{Field: "retry_budget", Reason: "must be at least 1"}
	}
	if c.GridStep <= 0 {
		return &ConfigError{Field: "grid_step", Reason: "must be positive"}
	}
	if c.CanvasWidth < c.GridStep {
		return &ConfigError{Field: "canvas_width", Reason: "must be at least one grid step"}
	}
	if c.DesignatorClearance < 0 {
		return &ConfigError{Field: "designator_clearance", Reason: "must not be negative"}
	}
	return nil
}

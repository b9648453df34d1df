// Package layout implements the deterministic schematic layout engine:
// text metrics, bounding-box calculation, collision detection,
// placement with bounded conflict resolution, and designator
// positioning.
//
// The engine is logically single-threaded. One Canvas is exclusively
// owned and mutated by one Engine for the duration of a layout pass;
// independent circuits may be laid out in parallel by running separate
// Engine instances with nothing shared between them.
package layout

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/symbol"
)

// State is the placement state of a symbol during a layout pass
type State int

const (
	// Unplaced means no position has been proposed yet
	Unplaced State = iota
	// Tentative means a position is assigned but not yet conflict-checked
	Tentative
	// Resolved means the symbol has no conflicts against prior resolved symbols
	Resolved
	// Failed means the retry budget was exceeded or the geometry was inconsistent
	Failed
)

func (s State) String() string {
	switch s {
	case Unplaced:
		return "unplaced"
	case Tentative:
		return "tentative"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Instance describes one symbol occurrence of a circuit description,
// in the order the circuit lists it. Hint optionally suggests an
// initial canvas position; without it the engine proposes one from its
// row-major packing heuristic.
type Instance struct {
	Designator string
	Value      string
	Def        *symbol.Definition
	Rotation   geometry.Angle
	Hint       *geometry.Position
}

// PlacedSymbol is a symbol instance bound to a canvas position.
// Created by the engine during a pass and mutated only by the engine
// (position, state) and the designator positioner (designator box).
type PlacedSymbol struct {
	Designator string
	Value      string
	Def        *symbol.Definition
	Position   geometry.Position
	Rotation   geometry.Angle
	State      State

	// Box holds the symbol-local bounding regions; WorldBox is the
	// body+pins region translated to canvas coordinates.
	Box      SymbolBox
	WorldBox geometry.BoundingBox

	// Designator label placement, resolved after the symbol itself.
	DesignatorPos      geometry.Position
	DesignatorBox      geometry.BoundingBox
	DesignatorFallback bool
}

// Failure describes a symbol the engine could not resolve: the last
// attempted position and the designators it conflicted with, so the
// caller can render a diagnostic without re-deriving state. The caller
// decides whether to enlarge the canvas and retry or accept the
// overlap with a warning.
type Failure struct {
	Designator   string
	LastPosition geometry.Position
	Conflicts    []string
	Err          error
}

// Canvas is the working set of symbols resolved during one layout
// pass. It keeps insertion order for deterministic iteration and an
// identifier index for lookups. Scoped to a single pass; rebuilt from
// scratch each run.
type Canvas struct {
	order []*PlacedSymbol
	byID  map[string]*PlacedSymbol
}

// NewCanvas creates an empty canvas
func NewCanvas() *Canvas {
	return &Canvas{byID: make(map[string]*PlacedSymbol)}
}

// Add inserts a resolved symbol
func (c *Canvas) Add(ps *PlacedSymbol) {
	c.order = append(c.order, ps)
	c.byID[ps.Designator] = ps
}

// Get looks up a symbol by designator
func (c *Canvas) Get(designator string) (*PlacedSymbol, bool) {
	ps, ok := c.byID[designator]
	return ps, ok
}

// Symbols returns the resolved symbols in insertion order
func (c *Canvas) Symbols() []*PlacedSymbol {
	return c.order
}

// Len returns the number of resolved symbols
func (c *Canvas) Len() int {
	return len(c.order)
}

// conflictsWith returns the designators of resolved symbols whose
// body+pins region overlaps box, in insertion order.
func (c *Canvas) conflictsWith(box geometry.BoundingBox, tolerance float64) []string {
	var ids []string
	for _, ps := range c.order {
		if Overlaps(box, ps.WorldBox, tolerance) {
			ids = append(ids, ps.Designator)
		}
	}
	return ids
}

// Engine runs layout passes with a fixed configuration. Given an
// identical ordered instance list and configuration, Place produces
// bit-identical results across runs: no wall-clock time, randomness,
// or unordered iteration enters the computation.
type Engine struct {
	cfg    Config
	logger *log.Logger
	trace  *Trace
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger attaches a structured logger for warnings and pass
// summaries. Without it the engine is silent.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithTrace attaches a trace recorder for per-attempt placement events
func WithTrace(t *Trace) Option {
	return func(e *Engine) { e.trace = t }
}

// New creates an engine. An invalid configuration is fatal for the
// whole pass and is rejected here, before any placement work.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Place lays out the instances in order on a fresh canvas and returns
// the placement result. Per-symbol failures (inconsistent geometry,
// exhausted retries) never abort the batch; they are collected in the
// result's failure set.
func (e *Engine) Place(instances []Instance) (*Result, error) {
	canvas := NewCanvas()
	var failures []Failure

	var cursorX, cursorY, rowHeight float64

	for _, inst := range instances {
		box, err := ComputeBBox(inst.Def, inst.Rotation, inst.Designator, e.cfg)
		if err != nil {
			failures = append(failures, Failure{Designator: inst.Designator, Err: err})
			e.trace.record(Event{Designator: inst.Designator, Outcome: OutcomeSkipped})
			e.warnf("skipping %s: %v", inst.Designator, err)
			continue
		}

		var initial geometry.Position
		if inst.Hint != nil {
			initial = e.snap(*inst.Hint)
		} else {
			// Row-major packing: anchor the body+pins box at the
			// cursor, wrapping to a new row at the canvas width.
			if cursorX > 0 && cursorX+box.BodyPins.Width() > e.cfg.CanvasWidth {
				cursorX = 0
				cursorY += rowHeight + e.cfg.GridStep
				rowHeight = 0
			}
			initial = e.snap(geometry.Position{
				X: cursorX - box.BodyPins.Min.X,
				Y: cursorY - box.BodyPins.Min.Y,
			})
		}

		ps := &PlacedSymbol{
			Designator:    inst.Designator,
			Value:         inst.Value,
			Def:           inst.Def,
			Rotation:      geometry.Normalize(inst.Rotation),
			State:         Tentative,
			Box:           box,
			DesignatorBox: geometry.NewBoundingBox(),
		}

		// Attempt 0 is the initial proposal; each further attempt
		// nudges along a deterministic expanding spiral.
		var lastPos geometry.Position
		var lastConflicts []string
		resolved := false
		for attempt := 0; attempt <= e.cfg.RetryBudget; attempt++ {
			pos := initial.Add(spiralOffset(attempt).Scale(e.cfg.GridStep))
			world := box.BodyPins.Translated(pos)
			conflicts := canvas.conflictsWith(world, e.cfg.Tolerance)
			lastPos, lastConflicts = pos, conflicts

			if len(conflicts) == 0 {
				ps.Position = pos
				ps.WorldBox = world
				ps.State = Resolved
				canvas.Add(ps)
				e.trace.record(Event{Designator: inst.Designator, Attempt: attempt, Position: pos, Outcome: OutcomePlaced})
				resolved = true
				break
			}
			e.trace.record(Event{Designator: inst.Designator, Attempt: attempt, Position: pos, Outcome: OutcomeConflict, Conflicts: conflicts})
		}

		if !resolved {
			ps.State = Failed
			ps.Position = lastPos
			failures = append(failures, Failure{
				Designator:   inst.Designator,
				LastPosition: lastPos,
				Conflicts:    lastConflicts,
				Err:          ErrExhausted,
			})
			e.trace.record(Event{Designator: inst.Designator, Attempt: e.cfg.RetryBudget, Position: lastPos, Outcome: OutcomeExhausted, Conflicts: lastConflicts})
			e.warnf("%s: no conflict-free position after %d attempts, last tried (%.2f, %.2f)", inst.Designator, e.cfg.RetryBudget+1, lastPos.X, lastPos.Y)
			continue
		}

		if inst.Hint == nil {
			cursorX = ps.WorldBox.Max.X + e.cfg.GridStep
			if h := ps.WorldBox.Height(); h > rowHeight {
				rowHeight = h
			}
		}
	}

	// Designator labels are resolved once all symbols are placed, in
	// insertion order of the resolved set.
	for _, ps := range canvas.Symbols() {
		e.placeDesignator(ps, canvas)
	}

	e.infof("layout pass done: %d resolved, %d failed", canvas.Len(), len(failures))
	return e.buildResult(canvas, failures), nil
}

// snap rounds a position to the placement grid
func (e *Engine) snap(p geometry.Position) geometry.Position {
	step := e.cfg.GridStep
	return geometry.Position{
		X: math.Round(p.X/step) * step,
		Y: math.Round(p.Y/step) * step,
	}
}

// spiralOffset returns the nth cell of a deterministic square spiral
// around the origin in grid units: (0,0), (1,0), (1,1), (0,1),
// (-1,1), (-1,0), ...
func spiralOffset(n int) geometry.Position {
	if n <= 0 {
		return geometry.Position{}
	}
	x, y := 0, 0
	dx, dy := 1, 0
	legLen, legPos, turns := 1, 0, 0
	for i := 0; i < n; i++ {
		x += dx
		y += dy
		legPos++
		if legPos == legLen {
			legPos = 0
			// Turn clockwise in the Y-down coordinate system.
			dx, dy = -dy, dx
			turns++
			if turns%2 == 0 {
				legLen++
			}
		}
	}
	return geometry.Position{X: float64(x), Y: float64(y)}
}

func (e *Engine) warnf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Warnf(format, args...)
	}
}

func (e *Engine) infof(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Infof(format, args...)
	}
}

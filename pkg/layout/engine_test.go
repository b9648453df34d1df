package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
)

func mustEngine(t *testing.T, cfg Config, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	bad := []Config{
		func() Config { c := DefaultConfig(); c.Tolerance = -1; return c }(),
		func() Config { c := DefaultConfig(); c.GridStep = 0; return c }(),
		func() Config { c := DefaultConfig(); c.TextHeight = 0; return c }(),
		func() Config { c := DefaultConfig(); c.RetryBudget = 0; return c }(),
		func() Config { c := DefaultConfig(); c.WidthRatio = -0.5; return c }(),
	}

	for i, cfg := range bad {
		_, err := New(cfg)
		if err == nil {
			t.Fatalf("case %d: expected configuration error", i)
		}
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("case %d: error %v is not a ConfigError", i, err)
		}
	}
}

func TestPlaceMixedSymbolsAllResolve(t *testing.T) {
	e := mustEngine(t, DefaultConfig())

	instances := []Instance{
		{Designator: "R1", Value: "10k", Def: resistorDef()},
		{Designator: "J1", Def: connectorDef()},
		{Designator: "U1", Def: mcuDef(100)},
	}

	res, err := e.Place(instances)
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}
	if len(res.Symbols) != 3 {
		t.Fatalf("resolved %d symbols, want 3", len(res.Symbols))
	}

	// Output preserves insertion order.
	for i, want := range []string{"R1", "J1", "U1"} {
		if res.Symbols[i].Designator != want {
			t.Fatalf("symbol %d = %s, want %s", i, res.Symbols[i].Designator, want)
		}
	}

	// No two resolved boxes overlap.
	for i := 0; i < len(res.Symbols); i++ {
		for j := i + 1; j < len(res.Symbols); j++ {
			if Overlaps(res.Symbols[i].BBox, res.Symbols[j].BBox, e.Config().Tolerance) {
				t.Fatalf("%s and %s overlap: %+v vs %+v",
					res.Symbols[i].Designator, res.Symbols[j].Designator,
					res.Symbols[i].BBox, res.Symbols[j].BBox)
			}
		}
	}
}

func TestPlaceDeterministic(t *testing.T) {
	instances := func() []Instance {
		return []Instance{
			{Designator: "U1", Def: mcuDef(48)},
			{Designator: "R1", Value: "10k", Def: resistorDef()},
			{Designator: "R2", Value: "4k7", Def: resistorDef(), Rotation: 90},
			{Designator: "J1", Def: connectorDef(), Rotation: 180},
			{Designator: "R3", Def: resistorDef(), Hint: hint(50, 50)},
		}
	}

	t1 := &Trace{}
	res1, err := mustEngine(t, DefaultConfig(), WithTrace(t1)).Place(instances())
	if err != nil {
		t.Fatal(err)
	}
	t2 := &Trace{}
	res2, err := mustEngine(t, DefaultConfig(), WithTrace(t2)).Place(instances())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(res1, res2) {
		t.Fatalf("results differ between identical runs:\n%+v\n%+v", res1, res2)
	}
	if !reflect.DeepEqual(t1.Events(), t2.Events()) {
		t.Fatal("placement traces differ between identical runs")
	}
}

func TestPlaceForcedCollision(t *testing.T) {
	trace := &Trace{}
	e := mustEngine(t, DefaultConfig(), WithTrace(trace))

	instances := []Instance{
		{Designator: "R1", Def: resistorDef(), Hint: hint(0, 0)},
		{Designator: "R2", Def: resistorDef(), Hint: hint(0, 0)},
	}

	res, err := e.Place(instances)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Symbols) != 2 || len(res.Failures) != 0 {
		t.Fatalf("want 2 resolved, got %d resolved %d failed", len(res.Symbols), len(res.Failures))
	}

	r1, r2 := res.Symbols[0], res.Symbols[1]
	if r1.Position != (geometry.Position{X: 0, Y: 0}) {
		t.Fatalf("R1 moved from its free initial position: %v", r1.Position)
	}
	if r2.Position == (geometry.Position{X: 0, Y: 0}) {
		t.Fatal("R2 kept its conflicting initial position")
	}
	if Overlaps(r1.BBox, r2.BBox, 0) {
		t.Fatalf("resolved boxes overlap: %+v vs %+v", r1.BBox, r2.BBox)
	}

	// The trace shows R2's rejected first attempt naming R1.
	events := trace.ForSymbol("R2")
	if len(events) < 2 {
		t.Fatalf("expected at least 2 attempts for R2, got %d", len(events))
	}
	if events[0].Outcome != OutcomeConflict || len(events[0].Conflicts) != 1 || events[0].Conflicts[0] != "R1" {
		t.Fatalf("unexpected first attempt for R2: %+v", events[0])
	}
	if last := events[len(events)-1]; last.Outcome != OutcomePlaced {
		t.Fatalf("final attempt for R2 = %s, want placed", last.Outcome)
	}
}

func TestPlaceRetryBudgetExhausted(t *testing.T) {
	trace := &Trace{}
	e := mustEngine(t, DefaultConfig(), WithTrace(trace))

	// The plate covers every position the spiral search can reach from
	// the hinted cell, so the resistor must fail with the plate named
	// as the conflict.
	instances := []Instance{
		{Designator: "PLATE", Def: plateDef(63.5), Hint: hint(0, 0)},
		{Designator: "R1", Def: resistorDef(), Hint: hint(0, 0)},
	}

	res, err := e.Place(instances)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Symbols) != 1 || res.Symbols[0].Designator != "PLATE" {
		t.Fatalf("want exactly PLATE resolved, got %+v", res.Symbols)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("want 1 failure, got %d", len(res.Failures))
	}

	f := res.Failures[0]
	if f.Designator != "R1" {
		t.Fatalf("failure designator = %s, want R1", f.Designator)
	}
	if len(f.Conflicts) != 1 || f.Conflicts[0] != "PLATE" {
		t.Fatalf("failure conflicts = %v, want [PLATE]", f.Conflicts)
	}
	if !strings.Contains(f.Reason, "exhausted") {
		t.Fatalf("failure reason %q does not mention exhaustion", f.Reason)
	}

	events := trace.ForSymbol("R1")
	if len(events) == 0 {
		t.Fatal("no trace events for R1")
	}
	if last := events[len(events)-1]; last.Outcome != OutcomeExhausted {
		t.Fatalf("final R1 outcome = %s, want exhausted", last.Outcome)
	}
	// Initial attempt plus every nudge was recorded.
	budget := e.Config().RetryBudget
	conflicts := 0
	for _, ev := range events {
		if ev.Outcome == OutcomeConflict {
			conflicts++
		}
	}
	if conflicts != budget+1 {
		t.Fatalf("recorded %d conflicting attempts, want %d", conflicts, budget+1)
	}
}

func TestPlaceGeometryErrorSkipsSymbolOnly(t *testing.T) {
	e := mustEngine(t, DefaultConfig())

	bad := resistorDef()
	bad.Pins[0].Length = 0

	res, err := e.Place([]Instance{
		{Designator: "R1", Def: bad},
		{Designator: "R2", Def: resistorDef()},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Symbols) != 1 || res.Symbols[0].Designator != "R2" {
		t.Fatalf("want R2 resolved despite R1's bad geometry, got %+v", res.Symbols)
	}
	if len(res.Failures) != 1 || res.Failures[0].Designator != "R1" {
		t.Fatalf("want R1 failure, got %+v", res.Failures)
	}
}

func TestPlaceOverlayDoesNotAlterPlacement(t *testing.T) {
	instances := []Instance{
		{Designator: "R1", Def: resistorDef()},
		{Designator: "J1", Def: connectorDef()},
	}

	plain, err := mustEngine(t, DefaultConfig()).Place(instances)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Overlay = true
	overlaid, err := mustEngine(t, cfg).Place(instances)
	if err != nil {
		t.Fatal(err)
	}

	if len(plain.Overlay) != 0 {
		t.Fatal("overlay emitted while disabled")
	}
	if len(overlaid.Overlay) == 0 {
		t.Fatal("no overlay rectangles emitted while enabled")
	}
	if !reflect.DeepEqual(plain.Symbols, overlaid.Symbols) {
		t.Fatal("enabling the overlay changed placements")
	}

	// Each resolved symbol contributes body and pin-label rectangles
	// plus one for its designator.
	want := 3 * len(overlaid.Symbols)
	if len(overlaid.Overlay) != want {
		t.Fatalf("overlay has %d rectangles, want %d", len(overlaid.Overlay), want)
	}
}

func TestPlaceRowWrapKeepsSymbolsInsideCanvasWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CanvasWidth = 12

	e := mustEngine(t, cfg)
	var instances []Instance
	for _, d := range []string{"R1", "R2", "R3", "R4", "R5", "R6"} {
		instances = append(instances, Instance{Designator: d, Def: resistorDef()})
	}

	res, err := e.Place(instances)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}

	// With a 12mm row the six resistors cannot fit side by side; at
	// least two rows must have been used.
	rows := map[float64]bool{}
	for _, s := range res.Symbols {
		rows[s.Position.Y] = true
	}
	if len(rows) < 2 {
		t.Fatalf("expected row wrap, all symbols on %d row(s)", len(rows))
	}
}

func TestSpiralOffsetDeterministicAndExpanding(t *testing.T) {
	if spiralOffset(0) != (geometry.Position{}) {
		t.Fatal("attempt 0 must be the unmodified proposal")
	}

	seen := map[geometry.Position]bool{}
	for n := 0; n <= 48; n++ {
		p := spiralOffset(n)
		if seen[p] {
			t.Fatalf("spiral revisited cell %v at step %d", p, n)
		}
		seen[p] = true
	}
}

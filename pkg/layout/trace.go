package layout

import "github.com/OpenTraceLab/schlayout/pkg/geometry"

// Outcome classifies one placement attempt
type Outcome int

const (
	// OutcomePlaced means the attempt found a conflict-free position
	OutcomePlaced Outcome = iota
	// OutcomeConflict means the attempt collided with resolved symbols
	OutcomeConflict
	// OutcomeExhausted means the retry budget was spent
	OutcomeExhausted
	// OutcomeSkipped means the symbol never entered placement
	// (inconsistent geometry)
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeConflict:
		return "conflict"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Event records one placement attempt: which symbol, which attempt
// number, the attempted position, and how it went. Conflicts lists the
// designators of resolved symbols the attempt collided with, in
// insertion order.
type Event struct {
	Designator string
	Attempt    int
	Position   geometry.Position
	Outcome    Outcome
	Conflicts  []string
}

// Trace collects placement events during a layout pass so callers can
// capture and assert on the attempt sequence instead of scraping debug
// prints. A nil *Trace is valid and records nothing.
type Trace struct {
	events []Event
}

func (t *Trace) record(ev Event) {
	if t == nil {
		return
	}
	t.events = append(t.events, ev)
}

// Events returns all recorded events in order
func (t *Trace) Events() []Event {
	if t == nil {
		return nil
	}
	return t.events
}

// ForSymbol returns the events recorded for one designator, in order
func (t *Trace) ForSymbol(designator string) []Event {
	if t == nil {
		return nil
	}
	var out []Event
	for _, ev := range t.events {
		if ev.Designator == designator {
			out = append(out, ev)
		}
	}
	return out
}

// Reset discards all recorded events
func (t *Trace) Reset() {
	if t != nil {
		t.events = nil
	}
}

package netlist

import "testing"

const sampleNetlist = `
# A small blinker.
circuit "blinky"

component R1 lib "R" value "10k"
component R2 lib "R" value "330"
component U1 lib "MCU48" rotate 90
component J1 lib "CONN4" at 50.8 25.4

net "VCC" R1.1, U1.P4
net "GND" R2.2, U1.P5, J1.1
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser returned error: %v", err)
	}
	return p
}

func TestParseSample(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(sampleNetlist)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}

	if file.Circuit == nil || file.Circuit.Name != "blinky" {
		t.Fatalf("circuit name = %+v, want blinky", file.Circuit)
	}

	comps := file.Components()
	if len(comps) != 4 {
		t.Fatalf("parsed %d components, want 4", len(comps))
	}

	// Declaration order is preserved.
	for i, want := range []string{"R1", "R2", "U1", "J1"} {
		if comps[i].Designator != want {
			t.Fatalf("component %d = %s, want %s", i, comps[i].Designator, want)
		}
	}

	if comps[0].LibRef != "R" || comps[0].Value != "10k" {
		t.Fatalf("R1 = %+v", comps[0])
	}
	if comps[2].Rotation != 90 {
		t.Fatalf("U1 rotation = %d, want 90", comps[2].Rotation)
	}
	if comps[3].At == nil || comps[3].At.X != 50.8 || comps[3].At.Y != 25.4 {
		t.Fatalf("J1 position hint = %+v, want (50.8, 25.4)", comps[3].At)
	}

	nets := file.Nets()
	if len(nets) != 2 {
		t.Fatalf("parsed %d nets, want 2", len(nets))
	}
	if nets[1].Name != "GND" || len(nets[1].Pins) != 3 {
		t.Fatalf("GND net = %+v", nets[1])
	}
	if ref := nets[0].Pins[1]; ref.Component != "U1" || ref.Pin != "P4" {
		t.Fatalf("VCC second pin = %+v, want U1.P4", ref)
	}
}

func TestResolveSample(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(sampleNetlist)
	if err != nil {
		t.Fatal(err)
	}
	circuit, err := file.Resolve()
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if circuit.Name != "blinky" {
		t.Fatalf("circuit name = %s", circuit.Name)
	}
	if len(circuit.Components) != 4 || len(circuit.Nets) != 2 {
		t.Fatalf("resolved %d components, %d nets", len(circuit.Components), len(circuit.Nets))
	}
}

func TestResolveRejectsDuplicateDesignator(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(`
circuit "dup"
component R1 lib "R"
component R1 lib "R"
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := file.Resolve(); err == nil {
		t.Fatal("expected duplicate designator error")
	}
}

func TestResolveRejectsNonCardinalRotation(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(`circuit "x"
component R1 lib "R" rotate 45`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := file.Resolve(); err == nil {
		t.Fatal("expected rotation error")
	}
}

func TestResolveRejectsUnknownNetComponent(t *testing.T) {
	p := newTestParser(t)

	file, err := p.ParseString(`
circuit "x"
component R1 lib "R"
net "X" R1.1, R9.1
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := file.Resolve(); err == nil {
		t.Fatal("expected unknown component error")
	}
}

func TestParseWithoutCircuitHeaderFails(t *testing.T) {
	p := newTestParser(t)
	if _, err := p.ParseString(`component R1 lib "R"`); err == nil {
		t.Fatal("expected parse error without circuit header")
	}
}

func TestParseMalformedInput(t *testing.T) {
	p := newTestParser(t)
	if _, err := p.ParseString(`circuit "x" component lib`); err == nil {
		t.Fatal("expected parse error")
	}
}

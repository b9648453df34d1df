package netlist

// File represents a parsed circuit description.
// Example:
//
//	circuit "blinky"
//	component R1 lib "R" value "10k"
//	component U1 lib "MCU48" rotate 90
//	net "VCC" R1.1, U1.P4
type File struct {
	Circuit *CircuitDecl `parser:"@@"`
	Decls   []*Decl      `parser:"@@*"`
}

// CircuitDecl names the circuit
type CircuitDecl struct {
	Name string `parser:"KwCircuit @String"`
}

// Decl is one top-level statement
type Decl struct {
	Component *ComponentDecl `parser:"  @@"`
	Net       *NetDecl       `parser:"| @@"`
}

// ComponentDecl declares one symbol instance. Declaration order is the
// placement order of the layout engine.
type ComponentDecl struct {
	Designator string    `parser:"KwComponent @Ident"`
	LibRef     string    `parser:"KwLib @String"`
	Value      string    `parser:"( KwValue @String )?"`
	Rotation   int       `parser:"( KwRotate @Integer )?"`
	At         *Position `parser:"( KwAt @@ )?"`
}

// Position is an optional initial placement hint in mm
type Position struct {
	X float64 `parser:"@( Float | Integer )"`
	Y float64 `parser:"@( Float | Integer )"`
}

// NetDecl connects two or more pins. Nets are metadata for the
// downstream emitter; the layout engine does not route them.
type NetDecl struct {
	Name string    `parser:"KwNet @String"`
	Pins []*PinRef `parser:"@@ ( Comma? @@ )*"`
}

// PinRef references a component pin by designator and pin name
type PinRef struct {
	Component string `parser:"@Ident"`
	Pin       string `parser:"Dot @( Ident | Integer )"`
}

// Components returns the component declarations in file order
func (f *File) Components() []*ComponentDecl {
	var out []*ComponentDecl
	for _, d := range f.Decls {
		if d.Component != nil {
			out = append(out, d.Component)
		}
	}
	return out
}

// Nets returns the net declarations in file order
func (f *File) Nets() []*NetDecl {
	var out []*NetDecl
	for _, d := range f.Decls {
		if d.Net != nil {
			out = append(out, d.Net)
		}
	}
	return out
}

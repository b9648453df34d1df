package netlist

import "fmt"

// Circuit is the validated semantic model of a circuit description
type Circuit struct {
	Name       string
	Components []Component
	Nets       []Net
}

// Component is one symbol instance in declaration order
type Component struct {
	Designator string
	LibRef     string
	Value      string
	Rotation   int
	Hint       *Position
}

// Net is one named connection between pins
type Net struct {
	Name string
	Pins []PinRef
}

// Resolve validates the parsed file and builds the semantic model:
// designators must be unique, rotations cardinal, and net pin
// references must name declared components.
func (f *File) Resolve() (*Circuit, error) {
	c := &Circuit{}
	if f.Circuit != nil {
		c.Name = f.Circuit.Name
	}

	seen := make(map[string]bool)
	for _, decl := range f.Components() {
		if seen[decl.Designator] {
			return nil, fmt.Errorf("duplicate designator %s", decl.Designator)
		}
		seen[decl.Designator] = true

		switch decl.Rotation {
		case 0, 90, 180, 270:
		default:
			return nil, fmt.Errorf("component %s: rotation %d is not cardinal", decl.Designator, decl.Rotation)
		}

		c.Components = append(c.Components, Component{
			Designator: decl.Designator,
			LibRef:     decl.LibRef,
			Value:      decl.Value,
			Rotation:   decl.Rotation,
			Hint:       decl.At,
		})
	}

	for _, decl := range f.Nets() {
		if len(decl.Pins) < 2 {
			return nil, fmt.Errorf("net %q connects fewer than two pins", decl.Name)
		}
		net := Net{Name: decl.Name}
		for _, ref := range decl.Pins {
			if !seen[ref.Component] {
				return nil, fmt.Errorf("net %q references unknown component %s", decl.Name, ref.Component)
			}
			net.Pins = append(net.Pins, *ref)
		}
		c.Nets = append(c.Nets, net)
	}

	return c, nil
}

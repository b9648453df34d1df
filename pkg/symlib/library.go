// Package symlib loads symbol definition libraries from s-expression
// files. A library file holds one (symlib ...) form with one (symbol
// ...) child per definition:
//
//	(symlib
//	  (symbol "R" (kind passive)
//	    (body (rect -1.016 -2.54 1.016 2.54))
//	    (pin "1" up (at 0 -2.54) (length 1.27))
//	    (pin "2" down (at 0 2.54) (length 1.27))))
//
// Bodies are either (rect x1 y1 x2 y2) or (poly (xy x y) ...).
package symlib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/schlayout/pkg/geometry"
	"github.com/OpenTraceLab/schlayout/pkg/symbol"
)

// Library is an ordered collection of symbol definitions
type Library struct {
	order []string
	defs  map[string]*symbol.Definition
}

// Get returns the definition for a symbol name
func (l *Library) Get(name string) (*symbol.Definition, bool) {
	def, ok := l.defs[name]
	return def, ok
}

// Names returns the symbol names in file order
func (l *Library) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of definitions in the library
func (l *Library) Len() int {
	return len(l.order)
}

// Load parses a symbol library from a reader
func Load(r io.Reader) (*Library, error) {
	sexps, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	return fromSexps(sexps)
}

// LoadString parses a symbol library from a string
func LoadString(input string) (*Library, error) {
	return Load(strings.NewReader(input))
}

// LoadFile parses a symbol library from a file path
func LoadFile(filename string) (*Library, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	defer f.Close()

	lib, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return lib, nil
}

func fromSexps(sexps []sexp.Sexp) (*Library, error) {
	lib := &Library{defs: make(map[string]*symbol.Definition)}

	for _, node := range sexps {
		if node == nil || node.IsLeaf() {
			continue
		}
		switch nodeName(node) {
		case "symlib":
			for _, sym := range findAllNodes(node, "symbol") {
				if err := lib.addSymbol(sym); err != nil {
					return nil, err
				}
			}
		case "symbol":
			// Bare symbol forms without the symlib wrapper are accepted
			if err := lib.addSymbol(node); err != nil {
				return nil, err
			}
		}
	}

	if len(lib.order) == 0 {
		return nil, fmt.Errorf("no symbol definitions found")
	}
	return lib, nil
}

func (l *Library) addSymbol(node sexp.Sexp) error {
	def, err := parseSymbol(node)
	if err != nil {
		return err
	}
	if _, exists := l.defs[def.Name]; exists {
		return fmt.Errorf("duplicate symbol %q", def.Name)
	}
	l.order = append(l.order, def.Name)
	l.defs[def.Name] = def
	return nil
}

func parseSymbol(node sexp.Sexp) (*symbol.Definition, error) {
	name, err := stringAt(node, 1)
	if err != nil {
		return nil, fmt.Errorf("symbol missing name: %w", err)
	}

	def := &symbol.Definition{Name: name, Kind: symbol.KindGeneric}

	if kindNode, ok := findNode(node, "kind"); ok {
		kindStr, err := stringAt(kindNode, 1)
		if err != nil {
			return nil, fmt.Errorf("symbol %s: bad kind: %w", name, err)
		}
		def.Kind = symbol.ParseKind(kindStr)
	}

	bodyNode, ok := findNode(node, "body")
	if !ok {
		return nil, fmt.Errorf("symbol %s: missing body", name)
	}
	shape, err := parseBody(bodyNode)
	if err != nil {
		return nil, fmt.Errorf("symbol %s: %w", name, err)
	}
	def.Shape = shape

	for _, pinNode := range findAllNodes(node, "pin") {
		pin, err := parsePin(pinNode)
		if err != nil {
			return nil, fmt.Errorf("symbol %s: %w", name, err)
		}
		def.Pins = append(def.Pins, pin)
	}

	return def, nil
}

func parseBody(node sexp.Sexp) (symbol.Shape, error) {
	if rect, ok := findNode(node, "rect"); ok {
		var vals [4]float64
		for i := range vals {
			v, err := floatAt(rect, i+1)
			if err != nil {
				return symbol.Shape{}, fmt.Errorf("bad rect coordinate: %w", err)
			}
			vals[i] = v
		}
		return symbol.RectShape(
			geometry.Position{X: vals[0], Y: vals[1]},
			geometry.Position{X: vals[2], Y: vals[3]},
		), nil
	}

	if poly, ok := findNode(node, "poly"); ok {
		var points []geometry.Position
		for _, xy := range findAllNodes(poly, "xy") {
			x, err := floatAt(xy, 1)
			if err != nil {
				return symbol.Shape{}, fmt.Errorf("bad polygon point: %w", err)
			}
			y, err := floatAt(xy, 2)
			if err != nil {
				return symbol.Shape{}, fmt.Errorf("bad polygon point: %w", err)
			}
			points = append(points, geometry.Position{X: x, Y: y})
		}
		if len(points) < 3 {
			return symbol.Shape{}, fmt.Errorf("polygon needs at least 3 points, got %d", len(points))
		}
		return symbol.PolygonShape(points), nil
	}

	return symbol.Shape{}, fmt.Errorf("body has neither rect nor poly")
}

func parsePin(node sexp.Sexp) (symbol.Pin, error) {
	var pin symbol.Pin

	name, err := stringAt(node, 1)
	if err != nil {
		return pin, fmt.Errorf("pin missing name: %w", err)
	}
	pin.Name = name

	orientStr, err := stringAt(node, 2)
	if err != nil {
		return pin, fmt.Errorf("pin %s: missing orientation: %w", name, err)
	}
	orient, err := symbol.ParseOrientation(orientStr)
	if err != nil {
		return pin, fmt.Errorf("pin %s: %w", name, err)
	}
	pin.Orientation = orient

	atNode, ok := findNode(node, "at")
	if !ok {
		return pin, fmt.Errorf("pin %s: missing (at x y)", name)
	}
	x, err := floatAt(atNode, 1)
	if err != nil {
		return pin, fmt.Errorf("pin %s: %w", name, err)
	}
	y, err := floatAt(atNode, 2)
	if err != nil {
		return pin, fmt.Errorf("pin %s: %w", name, err)
	}
	pin.Offset = geometry.Position{X: x, Y: y}

	lenNode, ok := findNode(node, "length")
	if !ok {
		return pin, fmt.Errorf("pin %s: missing (length l)", name)
	}
	length, err := floatAt(lenNode, 1)
	if err != nil {
		return pin, fmt.Errorf("pin %s: %w", name, err)
	}
	if length <= 0 {
		return pin, fmt.Errorf("pin %s: length must be positive, got %v", name, length)
	}
	pin.Length = length

	return pin, nil
}

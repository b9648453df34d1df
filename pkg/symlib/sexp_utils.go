package symlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/sexp"
)

// S-expression navigation helpers over the generic sexp library.
// Only the leaf/list walk of the Sexp interface is used; atom values
// are rendered through the node's fmt.Formatter so quoted and bare
// atoms behave the same.

// toSlice converts an s-expression list to a Go slice
func toSlice(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp

	if s == nil || s.IsLeaf() {
		return items
	}

	for {
		if s == nil || s.LeafCount() == 0 {
			break
		}

		head := s.Head()
		if head != nil {
			items = append(items, head)
		}

		if s.LeafCount() <= 1 {
			break
		}
		s = s.Tail()
		if s == nil || s.IsLeaf() {
			break
		}
	}

	return items
}

// atomValue returns the text of an atom with surrounding quotes removed
func atomValue(s sexp.Sexp) string {
	return strings.Trim(fmt.Sprintf("%s", s), `"`)
}

// nodeName returns the first symbol of a list (the node type/name)
func nodeName(s sexp.Sexp) string {
	if s == nil {
		return ""
	}
	if s.IsLeaf() {
		return atomValue(s)
	}
	head := s.Head()
	if head == nil || !head.IsLeaf() {
		return ""
	}
	return atomValue(head)
}

// findNode searches for a child list starting with the given key.
// Example: findNode(pinNode, "at") finds (at 0 -2.54).
func findNode(s sexp.Sexp, key string) (sexp.Sexp, bool) {
	if s == nil || s.IsLeaf() {
		return nil, false
	}
	for _, item := range toSlice(s) {
		if item != nil && !item.IsLeaf() && nodeName(item) == key {
			return item, true
		}
	}
	return nil, false
}

// findAllNodes finds all child lists starting with the given key
func findAllNodes(s sexp.Sexp, key string) []sexp.Sexp {
	var results []sexp.Sexp
	if s == nil || s.IsLeaf() {
		return results
	}
	for _, item := range toSlice(s) {
		if item != nil && !item.IsLeaf() && nodeName(item) == key {
			results = append(results, item)
		}
	}
	return results
}

// stringAt extracts the atom text at the given index in a list.
// Index 0 is the node key, 1 is the first value, etc.
func stringAt(s sexp.Sexp, index int) (string, error) {
	items := toSlice(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	if !items[index].IsLeaf() {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return atomValue(items[index]), nil
}

// floatAt extracts a float64 value at the given index
func floatAt(s sexp.Sexp, index int) (float64, error) {
	str, err := stringAt(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

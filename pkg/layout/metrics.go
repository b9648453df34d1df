package layout

import "unicode/utf8"

// LabelWidth approximates the rendered width of a label: character
// count times text height times the configured width ratio. This is a
// deliberate approximation of average glyph aspect ratio, not a real
// font-metric lookup; the downstream renderer is visually, not
// pixel-, exact.
//
// The empty string has width 0 and the result is monotonically
// non-decreasing in character count. Labels that are not valid UTF-8
// fall back to width 0 rather than failing the layout.
func LabelWidth(text string, textHeight, widthRatio float64) float64 {
	if text == "" {
		return 0
	}
	if !utf8.ValidString(text) {
		// Malformed label input, recovered locally with a zero-width
		// fallback. Never fatal.
		return 0
	}
	return float64(utf8.RuneCountInString(text)) * textHeight * widthRatio
}

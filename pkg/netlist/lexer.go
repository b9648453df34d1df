package netlist

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// NetlistLexer defines the lexical structure for circuit description
// files. The format is line oriented with #-comments and a small set
// of keywords.
var NetlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - shell style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwCircuit", Pattern: `\bcircuit\b`},
	{Name: "KwComponent", Pattern: `\bcomponent\b`},
	{Name: "KwLib", Pattern: `\blib\b`},
	{Name: "KwValue", Pattern: `\bvalue\b`},
	{Name: "KwRotate", Pattern: `\brotate\b`},
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwNet", Pattern: `\bnet\b`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Float", Pattern: `[-+]?[0-9]+\.[0-9]+`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},

	// Punctuation
	{Name: "Dot", Pattern: `\.`},
	{Name: "Comma", Pattern: `,`},
})

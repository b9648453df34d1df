package layout

import (
	"errors"
	"fmt"
)

// ErrExhausted marks a symbol that reached the retry budget without a
// conflict-free position. Non-fatal: the symbol is surfaced in the
// result's failure set and the rest of the canvas continues to resolve.
var ErrExhausted = errors.New("placement attempts exhausted")

// ConfigError reports an invalid configuration value. Fatal for the
// whole layout pass, detected before any placement work begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// GeometryError reports a symbol definition that cannot be rotated or
// bounded consistently (degenerate pin, empty body, unsupported
// rotation). The affected symbol is skipped from placement and
// reported as failed; the rest of the pass continues.
type GeometryError struct {
	Symbol string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("symbol %s: %s", e.Symbol, e.Reason)
}

// IsGeometryError reports whether err is (or wraps) a GeometryError.
func IsGeometryError(err error) bool {
	var ge *GeometryError
	return errors.As(err, &ge)
}

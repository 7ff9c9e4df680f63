package outcome

import "fmt"

// Normalizer converts an arbitrary captured failure payload (a recovered
// panic value, a foreign rejection) into an error. Boundary constructors
// accept a Normalizer to override the default rule.
type Normalizer func(v any) error

// ValueError is what a non-error failure payload is normalized into. The
// message follows the host's default stringification; the original payload
// stays reachable through Value.
type ValueError struct {
	value any
	msg   string
}

func (e *ValueError) Error() string {
	return e.msg
}

// Value returns the payload the error was normalized from.
func (e *ValueError) Value() any {
	return e.value
}

// Normalize is the default Normalizer: errors pass through untouched, a
// string becomes a message verbatim, and any other value is rendered with
// fmt.Sprint (decimal numbers, map[...] and {...} tokens).
func Normalize(v any) error {
	switch p := v.(type) {
	case nil:
		return nil
	case error:
		return p
	case string:
		return &ValueError{value: v, msg: p}
	default:
		return &ValueError{value: v, msg: fmt.Sprint(v)}
	}
}

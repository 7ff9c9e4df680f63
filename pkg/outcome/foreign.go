package outcome

// Probing helpers for untyped input. A typed Result cannot be malformed by
// construction, so tolerance for broken shapes lives here, at the boundary
// where interface{} values arrive, and nowhere else. None of these helpers
// ever panic.

// StatusOf probes an untyped value for the Result surface. Nil values,
// typed nil pointers and values without the surface answer (nil, false).
func StatusOf(v any) (Status, bool) {
	if IsNil(v) {
		return nil, false
	}
	s, ok := v.(Status)
	return s, ok
}

// IsSuccessValue reports whether v is a well-formed success result of any
// value type. Malformed input answers false.
func IsSuccessValue(v any) bool {
	s, ok := StatusOf(v)
	if !ok {
		return false
	}
	return s.IsSuccess()
}

// IsFailureValue reports whether v is a well-formed failure result of any
// value type. The failure tag alone is not enough: a failure missing its
// error payload is malformed, not a failure.
func IsFailureValue(v any) bool {
	s, ok := StatusOf(v)
	if !ok {
		return false
	}
	return s.IsFailure() && s.Err() != nil
}

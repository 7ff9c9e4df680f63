package outcome

import (
	"errors"
	"testing"
)

func TestIsSuccessValue(t *testing.T) {
	t.Parallel()

	if !IsSuccessValue(Success(1)) {
		t.Fatalf("expected a success result to be recognized")
	}
	if !IsSuccessValue(Success("x")) {
		t.Fatalf("expected recognition across value types")
	}
	if IsSuccessValue(Fail[int](errors.New("boom"))) {
		t.Fatalf("a failure is not a success")
	}
}

func TestIsFailureValue(t *testing.T) {
	t.Parallel()

	if !IsFailureValue(Fail[int](errors.New("boom"))) {
		t.Fatalf("expected a failure result to be recognized")
	}
	if IsFailureValue(Success(1)) {
		t.Fatalf("a success is not a failure")
	}

	// the failure tag without an error payload is malformed, not a failure
	if IsFailureValue(Fail[int](nil)) {
		t.Fatalf("expected a payload-less failure to be rejected")
	}
	var zero Result[int]
	if IsFailureValue(zero) {
		t.Fatalf("expected the zero value to be rejected")
	}
}

func TestProbesTolerateJunk(t *testing.T) {
	t.Parallel()

	junk := []any{
		nil,
		(*Result[int])(nil),
		"success",
		42,
		3.14,
		struct{}{},
		map[string]bool{"success": true},
		[]int{1, 2},
		errors.New("boom"),
	}

	for _, v := range junk {
		if IsSuccessValue(v) {
			t.Errorf("expected IsSuccessValue(%#v) to be false", v)
		}
		if IsFailureValue(v) {
			t.Errorf("expected IsFailureValue(%#v) to be false", v)
		}
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	s, ok := StatusOf(Success(7))
	if !ok || !s.IsSuccess() {
		t.Fatalf("expected a status view of a success, got: ok=%v", ok)
	}

	s, ok = StatusOf(&Result[int]{})
	if !ok || !s.IsEmpty() {
		t.Fatalf("expected a pointer to probe as an empty result, got: ok=%v", ok)
	}

	if _, ok := StatusOf(nil); ok {
		t.Fatalf("expected nil to have no status")
	}
	if _, ok := StatusOf((*Result[string])(nil)); ok {
		t.Fatalf("expected a typed nil pointer to have no status")
	}
	if _, ok := StatusOf("nope"); ok {
		t.Fatalf("expected a foreign value to have no status")
	}
}

package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatalf("expected nil to be nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatalf("expected a typed nil pointer to be nil")
	}

	if IsNil(0) || IsNil("") || IsNil(struct{}{}) {
		t.Fatalf("expected zero values not to read as nil")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("first"), errors.New("second")

	got := GetErrors(errors.Join(e1, e2))
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("expected both joined errors, got: %v", got)
	}

	single := errors.New("solo")
	if got := GetErrors(single); len(got) != 1 || got[0] != single {
		t.Fatalf("expected the single error, got: %v", got)
	}

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got: %v", got)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("expected context errors to read as cancellation")
	}
	if !IsCancellation(fmt.Errorf("await: %w", context.Canceled)) {
		t.Fatalf("expected a wrapped context error to read as cancellation")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatalf("expected an ordinary error not to read as cancellation")
	}
}

package outcome

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Result() != 42 || r.Err() != nil {
		t.Fatalf("expected value 42 and no error, got: val=%v, err=%v", r.Result(), r.Err())
	}
	if !r.HasValue() || r.IsEmpty() {
		t.Fatalf("expected a carried value, got: hasValue=%v, empty=%v", r.HasValue(), r.IsEmpty())
	}
	if r.Id() == uuid.Nil {
		t.Fatalf("expected a minted id")
	}
	if r.CreatedAt().IsZero() || r.CreatedAt().Location() != time.UTC {
		t.Fatalf("expected a UTC creation stamp, got: %v", r.CreatedAt())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Err() != err {
		t.Fatalf("expected the error stored untouched, got: %v", r.Err())
	}
	if r.HasValue() || r.Result() != 0 {
		t.Fatalf("expected no carried value, got: hasValue=%v, val=%v", r.HasValue(), r.Result())
	}
	if r.IsEmpty() {
		t.Fatalf("a failure with an error is not empty")
	}
}

func TestFailNilIsEmpty(t *testing.T) {
	t.Parallel()
	r := Fail[string](nil)

	if r.IsSuccess() || !r.IsEmpty() {
		t.Fatalf("expected an empty failure, got: success=%v, empty=%v", r.IsSuccess(), r.IsEmpty())
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	var r Result[int]

	if r.IsSuccess() || !r.IsEmpty() || r.Err() != nil {
		t.Fatalf("expected the zero value to read as empty, got: success=%v, empty=%v, err=%v",
			r.IsSuccess(), r.IsEmpty(), r.Err())
	}
}

func TestFailFromCarriesIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	orig := Fail[int](err)

	moved := FailFrom[int, string](orig)

	if moved.IsSuccess() || moved.HasValue() {
		t.Fatalf("expected the moved failure to stay a failure")
	}
	if moved.Err() != err {
		t.Fatalf("expected the same error instance, got: %v", moved.Err())
	}
	if moved.Id() != orig.Id() {
		t.Fatalf("expected the id to travel with the failure")
	}
	if !moved.CreatedAt().Equal(orig.CreatedAt()) {
		t.Fatalf("expected the creation stamp to travel with the failure")
	}
}

func TestDistinctIdentities(t *testing.T) {
	t.Parallel()
	a, b := Success(1), Success(1)

	if a.Id() == b.Id() {
		t.Fatalf("expected two constructions to mint distinct ids")
	}
}

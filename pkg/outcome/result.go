package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of two outcomes: a success value or a failure
// error. Instances are immutable; every constructor stamps the value with a
// fresh id and a UTC creation time, so operations that hand a Result through
// verbatim are observable by id equality.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	hasValue  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

// Fail stores err unchanged, nil included. Normalization of non-error
// payloads happens only at capture boundaries, never here.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a type change. The id, creation time and
// error travel with it, so a short-circuited failure stays the same failure
// from one end of a pipeline to the other.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a Result that carries no evidence of either variant: the
// zero value, or a failure constructed around a nil error.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

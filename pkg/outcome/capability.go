package outcome

import "time"

type ValueProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Status is the type-parameter-free slice of a Result, the widest view a
// foreign (untyped) value can be probed through.
type Status interface {
	IsSuccess() bool
	IsFailure() bool
	IsEmpty() bool
	Err() error
}

var (
	_ WithError[any] = Result[any]{}
	_ Status         = Result[any]{}
)

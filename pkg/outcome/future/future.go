package future

import (
	"context"
	"sync/atomic"
)

// Func is the function signature accepted by FromFunc.
type Func[T any] func() (T, error)

// Future is a one-shot container for the outcome of a concurrent
// computation. It settles exactly once: the first call to Complete or Fail
// wins and every later settlement is silently ignored. Unlike a channel, a
// settled future can be read any number of times by any number of
// goroutines, and they all observe the same outcome.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	value T
	err   error
}

// New creates an unsettled future that must be settled manually through
// Complete or Fail.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// FromFunc runs do on its own goroutine and returns the future of its
// outcome. Panics from do are not captured here; guard.Async is the
// panic-safe launcher.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Resolved returns a future already settled with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete settles the future with a value. Ignored if already settled.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail settles the future with an error. Ignored if already settled.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

func (f *Future[T]) settle(value T, err error) {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.value = value
		f.err = err
		close(f.done)
	}
}

// Get blocks until the future settles or ctx is done, whichever comes
// first. On a dead context it returns the context's error; the computation
// itself keeps running to settlement, there is no cancellation primitive.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports whether the future has settled, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

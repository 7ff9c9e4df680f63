package guard

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/future"
)

// Capture invokes the thunk inside the default error boundary: an error
// return becomes a failure unchanged, a recovered panic becomes a failure
// with a normalized error.
func Capture[T any](ctx context.Context,
	thunk func(ctx context.Context) (T, error)) outcome.Result[T] {
	return capture(ctx, outcome.Normalize, thunk)
}

// Boundary is a reusable capture boundary with its normalizer bound once.
// Constructing one has no side effect beyond storing the normalizer; every
// thunk run through it is captured independently.
type Boundary struct {
	normalize outcome.Normalizer
}

// NewBoundary binds a normalizer. A nil normalizer means the default rule.
func NewBoundary(n outcome.Normalizer) Boundary {
	return Boundary{normalize: n}
}

// Run captures one thunk through the boundary. The bound normalizer
// receives every raw failure value: error returns and recovered panics
// alike, overriding the default rule entirely.
func Run[T any](ctx context.Context, b Boundary,
	thunk func(ctx context.Context) (T, error)) outcome.Result[T] {
	return capture(ctx, b.normalizer(), thunk)
}

func (b Boundary) normalizer() outcome.Normalizer {
	if b.normalize == nil {
		return outcome.Normalize
	}
	return b.normalize
}

func capture[T any](ctx context.Context, normalize outcome.Normalizer,
	thunk func(ctx context.Context) (T, error)) (res outcome.Result[T]) {

	defer func() {
		if p := recover(); p != nil {
			res = outcome.Fail[T](normalize(p))
		}
	}()

	v, err := thunk(ctx)
	if err != nil {
		return outcome.Fail[T](normalize(err))
	}
	return outcome.Success(v)
}

// Await waits for the future and converts its settlement into a Result:
// fulfillment to success, failure to failure. A dead context surfaces as a
// failure carrying the context's error; the computation itself keeps
// running to settlement.
func Await[T any](ctx context.Context, f *future.Future[T]) outcome.Result[T] {
	return AwaitWith(ctx, f, nil)
}

// AwaitWith is Await with a caller normalizer applied to the raw failure
// value. A nil normalizer means the default rule.
func AwaitWith[T any](ctx context.Context, f *future.Future[T],
	n outcome.Normalizer) outcome.Result[T] {

	if n == nil {
		n = outcome.Normalize
	}

	v, err := f.Get(ctx)
	if err != nil {
		return outcome.Fail[T](n(err))
	}
	return outcome.Success(v)
}

// Async wraps an asynchronous function so that every invocation returns a
// future that cannot escape a panic: recovered values are normalized into
// the future's failure. Arguments pass through untouched and invocations
// share no state.
func Async[In, Out any](
	f func(ctx context.Context, in In) (Out, error)) func(ctx context.Context, in In) *future.Future[Out] {

	return func(ctx context.Context, in In) *future.Future[Out] {
		fut := future.New[Out]()

		go func() {
			res := Capture(ctx, func(ctx context.Context) (Out, error) {
				return f(ctx, in)
			})
			if res.IsFailure() {
				fut.Fail(res.Err())
				return
			}
			fut.Complete(res.Result())
		}()

		return fut
	}
}

// AwaitMap is the capturing analogue of solo.Map: on success the value runs
// through f, with error returns and panics both folded into the failure
// track. A failure input passes through untouched without invoking f and
// without waiting on anything.
func AwaitMap[In, Out any](ctx context.Context, input outcome.Result[In],
	f func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	if input.IsFailure() {
		return outcome.FailFrom[In, Out](input)
	}

	return Capture(ctx, func(ctx context.Context) (Out, error) {
		return f(ctx, input.Result())
	})
}

// AwaitAll waits for every future, then reports either all the values in
// input order or the first failure by input index. Ties go to index order,
// not settlement order, so the outcome is deterministic under concurrency;
// a failure learned early never stops the remaining awaits.
func AwaitAll[T any](ctx context.Context, fs []*future.Future[T]) outcome.Result[[]T] {
	values := make([]T, 0, len(fs))

	var firstErr error
	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		values = append(values, v)
	}

	if firstErr != nil {
		return outcome.Fail[[]T](firstErr)
	}
	return outcome.Success(values)
}

// WithFinally derives a future that settles only after cleanup has run.
// Cleanup runs whatever the original outcome was, dead-context awaits
// included. A cleanup error or a normalized cleanup panic replaces the
// original outcome, the same precedence scoped resource cleanup has.
func WithFinally[T any](ctx context.Context, f *future.Future[T],
	cleanup func(ctx context.Context) error) *future.Future[T] {

	out := future.New[T]()

	go func() {
		v, err := f.Get(ctx)

		if cerr := captureCleanup(ctx, cleanup); cerr != nil {
			out.Fail(cerr)
			return
		}

		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(v)
	}()

	return out
}

func captureCleanup(ctx context.Context,
	cleanup func(ctx context.Context) error) (err error) {

	defer func() {
		if p := recover(); p != nil {
			err = outcome.Normalize(p)
		}
	}()

	return cleanup(ctx)
}

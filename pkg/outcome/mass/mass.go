package mass

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/guard"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// lift runs one step concurrently and relays its outcome. When the context
// dies before the outcome is consumed, the untouched input goes to onCancel
// instead and the output channel closes empty.
func lift[In, R any](ctx context.Context, input outcome.Result[In],
	apply func() R,
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan R {

	ch := make(chan R)
	out := make(chan R)

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- apply()
		}
	}()

	go func() {
		defer close(out)

		select {
		case r, ok := <-ch:
			if ok {
				out <- r
			} else if onCancel != nil {
				onCancel(ctx, input)
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Validating[T any](ctx context.Context, input outcome.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in outcome.Result[T])) <-chan outcome.Result[T] {

	return lift(ctx, input, func() outcome.Result[T] {
		return solo.AndValidate(input, func(in T) (bool, string) {
			return validate(ctx, in)
		})
	}, onCancel)
}

func Chaining[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out],
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan outcome.Result[Out] {

	return lift(ctx, input, func() outcome.Result[Out] {
		return solo.Chain(input, func(r In) outcome.Result[Out] {
			return onSuccess(ctx, r)
		})
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan outcome.Result[Out] {

	return lift(ctx, input, func() outcome.Result[Out] {
		return solo.Map(input, func(r In) Out {
			return onSuccess(ctx, r)
		})
	}, onCancel)
}

func MapErroring[T any](ctx context.Context, input outcome.Result[T],
	onFailure func(ctx context.Context, err error) error,
	onCancel func(ctx context.Context, in outcome.Result[T])) <-chan outcome.Result[T] {

	return lift(ctx, input, func() outcome.Result[T] {
		return solo.MapError(input, func(err error) error {
			return onFailure(ctx, err)
		})
	}, onCancel)
}

func Tapping[T any](ctx context.Context, input outcome.Result[T],
	onResult func(ctx context.Context, r outcome.Result[T]),
	onCancel func(ctx context.Context, in outcome.Result[T])) <-chan outcome.Result[T] {

	return lift(ctx, input, func() outcome.Result[T] {
		return solo.Tap(input, func(r outcome.Result[T]) {
			onResult(ctx, r)
		})
	}, onCancel)
}

func Ensuring[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in outcome.Result[T])) <-chan outcome.Result[T] {

	return lift(ctx, input, func() outcome.Result[T] {
		return solo.Ensure(input,
			func(r T) {
				if onSuccess != nil {
					onSuccess(ctx, r)
				}
			},
			func(err error) {
				if onFailure != nil {
					onFailure(ctx, err)
				}
			})
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan outcome.Result[Out] {

	return lift(ctx, input, func() outcome.Result[Out] {
		return solo.Try(input, func(r In) (Out, error) {
			return onTryExecute(ctx, r)
		})
	}, onCancel)
}

// Capturing is Trying behind a panic boundary: recovered panics join error
// returns on the failure track.
func Capturing[In, Out any](ctx context.Context, input outcome.Result[In],
	onExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan outcome.Result[Out] {

	return lift(ctx, input, func() outcome.Result[Out] {
		return guard.AwaitMap(ctx, input, onExecute)
	}, onCancel)
}

type MatchHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err error) Out
}

func Matching[In, Out any](ctx context.Context, input outcome.Result[In],
	handlers MatchHandlers[In, Out],
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan Out {

	return lift(ctx, input, func() Out {
		return match(ctx, input, handlers)
	}, onCancel)
}

// Finalizing consumes a stream of results and collapses each into a final
// value. When the context dies, every input not yet collapsed is routed to
// onCancel until the stream closes.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	handlers MatchHandlers[In, Out],
	onCancel func(ctx context.Context, in outcome.Result[In])) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				drain(ctx, inputCh, onCancel)
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := match(ctx, in, handlers)

				select {
				case <-ctx.Done():
					if onCancel != nil {
						onCancel(ctx, in)
					}
					drain(ctx, inputCh, onCancel)
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}

func match[In, Out any](ctx context.Context, input outcome.Result[In],
	handlers MatchHandlers[In, Out]) Out {

	return solo.Match(input,
		func(r In) Out { return handlers.OnSuccess(ctx, r) },
		func(err error) Out { return handlers.OnFailure(ctx, err) })
}

func drain[In any](ctx context.Context, inputCh <-chan outcome.Result[In],
	onCancel func(ctx context.Context, in outcome.Result[In])) {

	if onCancel == nil {
		return
	}
	for in := range inputCh {
		onCancel(ctx, in)
	}
}

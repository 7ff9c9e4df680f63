package lite

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/mass"
)

func Run[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	engine func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T],
	lines int) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[T, T]{}, nil, lines)
}

func RunWith[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	engine func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T],
	handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in outcome.Result[T]), lines int) <-chan outcome.Result[T] {
	return TurnoutWith(ctx, inputCh, engine, handlers, onSuccess, lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	engine func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out],
	lines int) <-chan outcome.Result[Out] {
	return TurnoutWith(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// TurnoutWith fans the input over a fixed number of locomotive lines and
// fans their outcomes back into one channel. The output closes once every
// line stops; after a cancellation the handlers may still be delivering, so
// consumers must drain until close.
func TurnoutWith[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	engine func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out],
	handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in outcome.Result[Out]), lines int) <-chan outcome.Result[Out] {

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Chain[In, Out any](onSuccess func(ctx context.Context, r In) outcome.Result[Out]) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return mass.Chaining(ctx, input, onSuccess, nil)
	}
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return mass.Mapping(ctx, input, onSuccess, nil)
	}
}

func MapError[T any](onFailure func(ctx context.Context, err error) error) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return mass.MapErroring(ctx, input, onFailure, nil)
	}
}

func Tap[T any](onResult func(ctx context.Context, r outcome.Result[T])) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return mass.Tapping(ctx, input, onResult, nil)
	}
}

func Ensure[T any](onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) func(ctx context.Context,
	input outcome.Result[T]) <-chan outcome.Result[T] {
	return func(ctx context.Context, input outcome.Result[T]) <-chan outcome.Result[T] {
		return mass.Ensuring(ctx, input, onSuccess, onFailure, nil)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

// Capture is Try behind a panic boundary.
func Capture[In, Out any](onExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input outcome.Result[In]) <-chan outcome.Result[Out] {
	return func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out] {
		return mass.Capturing(ctx, input, onExecute, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan outcome.Result[In],
	handlers mass.MatchHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, nil)
}

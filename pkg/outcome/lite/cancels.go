package lite

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
)

var ErrCancelled = errors.New("operation cancelled")

// FailRemaining drains the inputs a dying context left behind, forwarding
// each one as a failure carrying the cancellation cause. Inputs already on
// the failure track keep their own error. Honors the process-remaining
// option; enabled by default.
func FailRemaining[In, Out any](ctx context.Context,
	inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}

	cause := interruption(ctx)
	for in := range inputCh {
		outCh <- failedAs[In, Out](in, cause)
	}
}

// FailRemainingOne forwards a single unprocessed input as a failure, under
// the same rules as FailRemaining.
func FailRemainingOne[In, Out any](ctx context.Context, in outcome.Result[In],
	outCh chan<- outcome.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}
	outCh <- failedAs[In, Out](in, interruption(ctx))
}

// ForwardProcessed delivers an outcome that was already computed when the
// context died, so the work is not lost.
func ForwardProcessed[In, Out any](ctx context.Context, in outcome.Result[In],
	processed outcome.Result[Out], outCh chan<- outcome.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}
	outCh <- processed
}

// FailRemainingHandlers wires the drain helpers into locomotive hooks, so a
// cancelled pipeline accounts for every item instead of dropping them.
func FailRemainingHandlers[In, Out any]() core.CancellationHandlers[In, Out] {
	return core.CancellationHandlers[In, Out]{
		OnCancel:            FailRemaining[In, Out],
		OnCancelUnprocessed: FailRemainingOne[In, Out],
		OnCancelProcessed:   ForwardProcessed[In, Out],
	}
}

func interruption(ctx context.Context) error {
	if err := context.Cause(ctx); err != nil {
		return err
	}
	return ErrCancelled
}

func failedAs[In, Out any](in outcome.Result[In], cause error) outcome.Result[Out] {
	if in.IsFailure() {
		return outcome.FailFrom[In, Out](in)
	}
	return outcome.Fail[Out](cause)
}

package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Result[In], outCh chan<- outcome.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in outcome.Result[In], processed outcome.Result[Out], outCh chan<- outcome.Result[Out])
}

// Locomotive pulls inputs, drives them through the engine and pushes the
// outcomes downstream until the input closes or the context dies. On death
// the handlers decide what happens to the item in flight and to the rest of
// the stream; delivering a processed item is OnCancelProcessed's call, a
// direct send here could duplicate it.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In], outCh chan<- outcome.Result[Out],
	engine func(ctx context.Context, input outcome.Result[In]) <-chan outcome.Result[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in outcome.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}

package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Result to enable fluent chaining.
type Chain[T any] struct {
	res outcome.Result[T]
}

// Start creates a new chain from an outcome.Result.
func Start[T any](result outcome.Result[T]) Chain[T] {
	return Chain[T]{res: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Start(outcome.Success(value))
}

// FromError creates a new chain already on the failure track.
func FromError[T any](err error) Chain[T] {
	return Start(outcome.Fail[T](err))
}

// Result returns the underlying outcome.Result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result.
func (c Chain[T]) Then(onSuccess func(t T) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: solo.Chain(c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{res: solo.Try(c.res, try)}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, onSuccess)}
}

// MapError rewrites the carried error, leaving successes alone.
func (c Chain[T]) MapError(onFailure func(err error) error) Chain[T] {
	return Chain[T]{res: solo.MapError(c.res, onFailure)}
}

// Tap observes the current result without changing it.
func (c Chain[T]) Tap(onResult func(r outcome.Result[T])) Chain[T] {
	return Chain[T]{res: solo.Tap(c.res, onResult)}
}

// TapError observes the carried error without changing the result.
func (c Chain[T]) TapError(onFailure func(err error)) Chain[T] {
	return Chain[T]{res: solo.TapError(c.res, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the result.
func (c Chain[T]) Ensure(onSuccess func(t T), onFailure func(err error)) Chain[T] {
	return Chain[T]{res: solo.Ensure(c.res, onSuccess, onFailure)}
}

// Validate keeps the value when valid, otherwise moves to the failure track.
func (c Chain[T]) Validate(validate func(t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{res: solo.AndValidate(c.res, validate)}
}

// Or prefers the first succeeding chain; when both failed, the receiver wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And fails fast on the receiver, otherwise yields the required chain.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// RepeatUntil applies onSuccess repeatedly until the predicate reports done
// or the chain moves to the failure track.
func (c Chain[T]) RepeatUntil(onSuccess func(t T) outcome.Result[T],
	until func(t T) bool) Chain[T] {

	for c.res.IsSuccess() {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.res.Result()) {
			return c
		}
	}
	return c
}

// While applies onSuccess for as long as the predicate holds and the chain
// stays on the success track.
func (c Chain[T]) While(onSuccess func(t T) outcome.Result[T],
	while func(t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Finally collapses the chain to a final value of the same type.
func (c Chain[T]) Finally(onSuccess func(t T) T, onFailure func(err error) T) T {
	return solo.Match(c.res, onSuccess, onFailure)
}

// Then chains a function that returns a Result of a new type.
func Then[T, U any](c Chain[T], onSuccess func(t T) outcome.Result[U]) Chain[U] {
	return Chain[U]{res: solo.Chain(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c Chain[T], try func(t T) (U, error)) Chain[U] {
	return Chain[U]{res: solo.Try(c.res, try)}
}

// Map chains a pure transformation to a new type.
func Map[T, U any](c Chain[T], onSuccess func(t T) U) Chain[U] {
	return Chain[U]{res: solo.Map(c.res, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Match.
func Finally[T, U any](c Chain[T], onSuccess func(t T) U, onFailure func(err error) U) U {
	return solo.Match(c.res, onSuccess, onFailure)
}

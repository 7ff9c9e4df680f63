package solo

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.Result[T] {
	return outcome.Fail[T](err)
}

// Map transforms the success value; a failure short-circuits and onSuccess
// never runs. Panics from onSuccess propagate, only package guard captures.
func Map[In, Out any](input outcome.Result[In],
	onSuccess func(r In) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(input.Result()))
	}
	return outcome.FailFrom[In, Out](input)
}

// Chain composes a step that already returns a Result, without double
// wrapping. A failure short-circuits and onSuccess never runs.
func Chain[In, Out any](input outcome.Result[In],
	onSuccess func(r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return outcome.FailFrom[In, Out](input)
}

// MapError transforms the failure error; a success passes through verbatim,
// id included.
func MapError[T any](input outcome.Result[T],
	onFailure func(err error) error) outcome.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return outcome.Fail[T](onFailure(input.Err()))
}

// Tap hands the whole Result to the observer, success or failure, and
// returns the input verbatim.
func Tap[T any](input outcome.Result[T],
	onResult func(r outcome.Result[T])) outcome.Result[T] {

	onResult(input)
	return input
}

// TapError runs the observer only on failure; the input comes back verbatim
// either way.
func TapError[T any](input outcome.Result[T],
	onFailure func(err error)) outcome.Result[T] {

	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// Match collapses a Result into a plain value. Exactly one handler runs;
// both are required.
func Match[In, Out any](input outcome.Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

// Try calls a (value, error) function and folds the error into the failure
// track.
func Try[In, Out any](input outcome.Result[In],
	onTryExecute func(r In) (Out, error)) outcome.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		if err != nil {
			return outcome.Fail[Out](err)
		}
		return outcome.Success(out)
	}
	return outcome.FailFrom[In, Out](input)
}

// Ensure triggers side effects for either variant without changing the result
func Ensure[T any](input outcome.Result[T],
	onSuccess func(r T),
	onFailure func(err error)) outcome.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
		return input
	}

	if onFailure != nil {
		onFailure(input.Err())
	}
	return input
}

func Validate[T any](input T,
	validate func(in T) (valid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input outcome.Result[T],
	validate func(in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsSuccess() {
		if valid, errMsg := validate(input.Result()); valid {
			return input
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](input outcome.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, v := range validators {
		if valid, errMsg := v(input.Result()); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return outcome.Fail[T](errors.Join(errs...))
	}
	return input
}

// Collect turns settled results into one result of the values, in input
// order. The first failure by index wins, however late it was produced.
func Collect[T any](results []outcome.Result[T]) outcome.Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return outcome.FailFrom[T, []T](r)
		}
		values = append(values, r.Result())
	}
	return outcome.Success(values)
}

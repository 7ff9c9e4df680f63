// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/Chain: transform the success value or switch to a new Result
// - MapError: transform the failure error, success untouched
// - Tap/TapError/Ensure: side-effect helpers that return the input verbatim
// - Match: reduce to a concrete value via success/failure handlers
// - Try: call a function (Out, error) and convert error to failure
// - Validate/AndValidate/ValidateAll: validation producing failure on invalid
//   input, with optional error accumulation
// - Collect: settled results to one result of ordered values, first failure
//   by index wins
//
// None of these capture panics from caller functions; capture is the guard
// package's job.
package solo

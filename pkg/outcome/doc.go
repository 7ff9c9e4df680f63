// Package outcome defines the two-variant Result value at the heart of the
// module: a success carrying a value, or a failure carrying an error, never
// both and never neither. Results are immutable; combinators in the
// subpackages always build new values and short-circuit failures unchanged.
//
// Highlights:
// - Success/Fail: construct Result[T]; Fail stores the error untouched
// - FailFrom: move a failure across a value-type change without losing it
// - Normalize/Normalizer: turn non-error failure payloads into errors
// - StatusOf/IsSuccessValue/IsFailureValue: panic-free probes for untyped input
// - IsNil/GetErrors/IsCancellation: small error utilities shared by the
//   pipeline packages
//
// Synchronous combinators live in solo, the promise analogue in future, the
// capturing boundary layer in guard, fluent composition in chain, and the
// channel-lifted concurrent flavors in mass, core and lite.
package outcome

// Package future provides the one-shot promise analogue the boundary layer
// awaits: a Future settles exactly once, first settlement wins, and any
// number of readers observe the same outcome.
//
// Highlights:
// - New: an unsettled future, settled manually via Complete/Fail
// - FromFunc: run a (value, error) function on its own goroutine
// - Resolved/Rejected: pre-settled futures
// - Get: blocking, context-aware, multi-consumer read
//
// The package is deliberately primitive: no cancellation, no callbacks, no
// capture. Converting settlements into Result values, including panic
// capture and failure normalization, is the guard package's job.
package future

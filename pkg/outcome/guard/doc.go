// Package guard is the boundary between code that throws and code that
// returns Results. It captures error returns, recovered panics and future
// settlements, normalizes the raw values and hands back Result values that
// the combinator packages can carry from there.
//
// Highlights:
//   - Capture runs a thunk inside the default error boundary;
//   - Boundary and Run do the same with a caller-chosen normalizer
//     bound once and reused;
//   - Await and AwaitWith convert a settled future into a Result;
//   - Async wraps an async function so its futures can never leak a panic;
//   - AwaitMap, AwaitAll and WithFinally are the capturing counterparts
//     of map, fan-in and deferred cleanup.
//
// Nothing in this package swallows outcomes: every captured value, error
// or panic payload ends up observable on the failure track.
package guard

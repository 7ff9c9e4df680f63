// Package chain provides a fluent wrapper around Result[T] for building
// synchronous pipelines on top of the solo primitives.
//
// It composes functions like Chain, Map, Try, Tap and Match behind a
// convenient Chain[T] type, so a pipeline reads top to bottom without
// branching on results at each step. Type-changing steps are package-level
// functions because methods cannot introduce new type parameters.
//
// Key operations:
//   - Start/FromValue/FromError: begin a chain from a Result[T], a value
//     or an error
//   - Then: switch to a new Result via a function
//   - ThenTry: call a function returning (T, error) and convert the error
//     to a failure
//   - Map/MapError: transform the value or the carried error
//   - Tap/TapError/Ensure: run side effects without changing the result
//   - Or/And: combine alternative and required chains
//   - RepeatUntil/While: loop a step while the chain stays on the
//     success track
//   - Finally: collapse the chain into a final value via handlers
package chain

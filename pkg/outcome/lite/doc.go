// Package lite provides channel-lifted pipeline helpers over the solo
// primitives and the guard boundary, for concurrent fan-out/fan-in flows.
//
// Common usage:
//   - Run/Turnout: execute an engine over an input channel with a fixed
//     number of lines
//   - RunWith/TurnoutWith: the same, with cancellation handlers and a
//     delivery callback
//   - Validate/Try/Capture/Chain/Map/MapError/Tap/Ensure: lift operations
//     into engines
//   - Finally: collapse Result[In] to Out on completion
//   - FailRemaining helpers: turn the items a dying context leaves behind
//     into failures instead of dropping them
//
// For per-operation cancellation routing, drop down to package mass.
package lite

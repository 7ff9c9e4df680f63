// Package mass implements channel-based building blocks that lift the solo
// primitives and the guard boundary into concurrent steps (validation,
// mapping, try, capture, finalizing) with explicit control over what
// happens to inputs a dying context leaves behind.
//
// It is typically used by higher-level packages (lite, core) to compose
// concurrent pipelines, integrating cancellation handlers and select loops.
package mass

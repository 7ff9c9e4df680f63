// Package core contains pipeline plumbing: channel helpers, worker
// configuration carried on the context, and the locomotive that drives
// stages. It defines no business logic; packages like lite and mass build
// their pipelines on this scaffolding.
package core

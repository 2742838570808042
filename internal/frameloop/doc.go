// Package frameloop provides a single-threaded cooperative scheduler with
// per-frame callbacks and one-shot timers.
//
// Nothing in a Loop runs on its own: the owner calls Advance once per
// rendering frame (from a Bubble Tea tick, or directly from a test) and every
// due timer and queued frame callback runs synchronously on the caller's
// goroutine. Callbacks requested while a frame is running are deferred to the
// next Advance, matching requestAnimationFrame semantics.
package frameloop

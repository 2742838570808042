// Package carousel implements the position and animation state machine of an
// infinitely looping, draggable strip of items.
//
// The engine never touches a screen directly. It duplicates, measures and
// moves content through the Strip interface, schedules all of its work on a
// Scheduler, and reports lifecycle events through Hooks. Every method must be
// called from the goroutine that drives the Scheduler.
package carousel

// Package state holds the telemetry shown in marquee's status bar.
//
// A Store is written from two places: carousel hooks running on the Bubble
// Tea update goroutine, and the feed watcher goroutine reporting item loads.
// The status bar reads a Snapshot, a copy taken under a read lock, on every
// render. The zero Store is ready to use.
package state

// Package feed loads carousel items from a plain text file and watches it
// for changes.
//
// The file holds one item per line:
//
//	# title | subtitle | accent
//	Bubble Tea | TUI framework | #ff79c6
//	Lip Gloss | style definitions
//	Bubbles
//
// Watch follows the file with fsnotify on its directory, so saves that
// replace the file by rename are seen, and falls back to polling size and
// modification time when no watcher can be created. Every load (or failure)
// is delivered on a channel. The UI drains that channel with a Bubble Tea command, so items
// only ever change on the update goroutine.
package feed

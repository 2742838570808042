// Package app provides the orchestration layer for the marquee application.
//
// # Overview
//
// This package wires together configuration, preferences, the items feed and
// the UI. It is the composition root where all dependencies are initialized
// and connected.
//
// # Startup
//
//  1. Route the standard logger to the log file, or discard it
//  2. Load ~/.config/marquee/config.toml and log any option warnings
//  3. Apply command line overrides (items file, speed, direction)
//  4. Load saved preferences; a broken prefs file falls back to defaults
//  5. Start the items watcher when an items file is configured
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()   Read carousel options and items
//	       ├─────> prefs.Load()    Theme and fade color
//	       ├─────> feed.Watch()    Reload the items file on change
//	       └─────> ui.Run()        Start TUI (blocks)
//
// # Error Handling
//
// A malformed config file or an unwritable log path is fatal. Unknown or
// invalid carousel options only produce warnings, and items file failures are
// shown in the status bar while the last good items stay on screen.
package app

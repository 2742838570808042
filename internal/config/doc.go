// Package config loads marquee's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml
//  3. If the file doesn't exist, fall back to Default
//
// # TOML Format
//
//	gap = 2
//	min_card_width = 16
//	items_file = "~/notes/ticker.txt"
//	poll_seconds = 2
//
//	[carousel]
//	speed = 12
//	reverse_direction = false
//	pause_on_hover = true
//	momentum_decay = 0.05
//	max_momentum_speed = 2.0
//	fade_color = "#282a36"
//	fade_width = 6
//	interactable = true
//	copies = 3
//	disable_momentum = false
//
//	[[items]]
//	title = "Bubble Tea"
//	subtitle = "TUI framework"
//	accent = "#ff79c6"
//
// The [carousel] table is decoded loosely: a key holding a value of the wrong
// type is reported in Config.Warnings and the default is kept. Range checks
// are left to carousel.Options.Validate. Everything else is decoded strictly
// and a malformed file is an error.
package config

// Package ui is marquee's Bubble Tea front-end.
//
// The Model owns a frameloop.Loop and advances it from a 60 fps tea.Tick, so
// every carousel callback runs on Bubble Tea's update goroutine. The strip is
// drawn by terminalStrip, which implements the carousel's Strip, SizeObserver
// and ResourceTracker interfaces with one terminal cell per pixel: cards are
// laid out with go-runewidth, edge fades are blended with go-colorful and runs
// of equal color are rendered with lipgloss.
//
// Mouse input is mapped onto the carousel's pointer model: a left press on
// the strip rows starts a drag, motion follows it, release ends it and
// motion across the strip rows hovers. Losing terminal focus counts as the
// pointer leaving.
//
// # Layout
//
//	row 0        header: phase badge, item count, speed, fade, theme
//	row 1        spacer
//	rows 2-5     strip
//	row 6        spacer
//	row 7        status bar from state.Store
//	row 8        key help
package ui

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full screen. The strip starts on row stripTop.
func (m Model) renderMain() string {
	spacer := NewBgStyle(m.theme.Background).Spaces(m.width)
	lines := []string{
		m.renderHeader(),
		spacer,
		m.strip.Render(m.theme),
		spacer,
		m.renderStatusBar(),
		m.help.View(m.keys),
	}
	return strings.Join(lines, "\n")
}

// renderHeader renders the title bar: phase, items and tunables.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.store.Snapshot()
	motion := snap.Motion

	phase := motion.Phase
	if phase == "" {
		phase = "idle"
	}
	direction := "◀"
	if motion.Reverse {
		direction = "▶"
	}

	opts := m.carousel.Options()
	fade := opts.FadeColor
	if fade == "" {
		fade = "theme"
	}

	parts := []string{
		bg.Render("marquee", styles.Logo),
		styles.PhaseStyle(phase).Render(strings.ToUpper(phase)),
		bg.Render(fmt.Sprintf("%d items", snap.Items), styles.Text),
		bg.Render(fmt.Sprintf("%s %g c/s", direction, motion.Speed), styles.AccentText),
		bg.Render(fmt.Sprintf("fade %g %s", opts.FadeWidth, truncate(fade, 24)), styles.MutedText),
		bg.Render("T", styles.AccentText) + bg.Render(":"+m.theme.Name, styles.FaintText),
	}
	if m.hovering {
		parts = append(parts, bg.Render("hover", styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(bg.Join(parts, "  "))
}

// renderStatusBar renders carousel telemetry and feed health.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.store.Snapshot()
	motion := snap.Motion

	loop := "unmeasured"
	if motion.SetWidth > 0 {
		loop = formatCells(motion.SetWidth)
	}
	c := snap.Counters
	parts := []string{
		bg.Render("pos "+formatCells(motion.Position)+" / "+loop, styles.Text),
		bg.Render(fmt.Sprintf("vel %.2f", motion.Velocity), styles.MutedText),
		bg.Render(fmt.Sprintf("resets %d  drags %d  flings %d", c.Resets, c.Drags, c.Momentums), styles.MutedText),
	}
	if snap.LastEvent != "" {
		parts = append(parts, bg.Render(
			fmt.Sprintf("last %s %s", snap.LastEvent, snap.LastEventAt.Format("15:04:05")), styles.FaintText))
	}
	if snap.LastError != nil {
		style := styles.WarningText
		if snap.FeedStale() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render("feed: "+truncate(snap.LastError.Error(), 48), style))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		MaxWidth(m.width).
		Padding(0, 1).
		Render(bg.Join(parts, "  "))
}

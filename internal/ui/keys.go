package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Motion
	Pause     key.Binding
	Reverse   key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Remeasure key.Binding

	// Fade
	WiderFade    key.Binding
	NarrowerFade key.Binding
	FadeColor    key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Pause/resume"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reverse"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Slower"),
		),
		Remeasure: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Remeasure"),
		),

		WiderFade: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Wider fade"),
		),
		NarrowerFade: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Narrower fade"),
		),
		FadeColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle fade color"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reverse, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reverse, k.Faster, k.Slower, k.Remeasure},
		{k.WiderFade, k.NarrowerFade, k.FadeColor},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

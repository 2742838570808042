package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/five82/marquee/internal/carousel"
)

// cell is one terminal cell of the painted strip. A zero rune marks the
// trailing half of a double-width rune.
type cell struct {
	r    rune
	fg   colorful.Color
	bg   colorful.Color
	bold bool
}

type canvas struct {
	width int
	rows  [][]cell
}

func newCanvas(width, height int, fg, bg colorful.Color) *canvas {
	c := &canvas{width: width, rows: make([][]cell, height)}
	for y := range c.rows {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' ', fg: fg, bg: bg}
		}
		c.rows[y] = row
	}
	return c
}

// put writes r at (x, y), clipping at the canvas edges. A wide rune that
// would be cut in half is replaced by a space.
func (c *canvas) put(x, y int, r rune, fg, bg colorful.Color, bold bool) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if w == 2 && (x < 0 || x+1 >= c.width) {
		for i := 0; i < 2; i++ {
			c.set(x+i, y, cell{r: ' ', fg: fg, bg: bg})
		}
		return 2
	}
	c.set(x, y, cell{r: r, fg: fg, bg: bg, bold: bold})
	if w == 2 {
		c.set(x+1, y, cell{fg: fg, bg: bg, bold: bold})
	}
	return w
}

func (c *canvas) set(x, y int, v cell) {
	if y < 0 || y >= len(c.rows) || x < 0 || x >= c.width {
		return
	}
	c.rows[y][x] = v
}

// text writes s starting at x, truncated to width cells and padded with
// spaces.
func (c *canvas) text(x, y, width int, s string, fg, bg colorful.Color, bold bool) {
	s = runewidth.Truncate(s, width, "…")
	used := 0
	for _, r := range s {
		used += c.put(x+used, y, r, fg, bg, bold)
	}
	for ; used < width; used++ {
		c.set(x+used, y, cell{r: ' ', fg: fg, bg: bg})
	}
}

// paint draws every visible card at the current offset and applies the edge
// fades.
func (s *terminalStrip) paint(theme Theme) *canvas {
	text := hexColor(theme.Text, colorful.Color{R: 1, G: 1, B: 1})
	background := hexColor(theme.Background, colorful.Color{})
	c := newCanvas(max(s.viewport, 0), cardHeight, text, background)
	if c.width == 0 {
		return c
	}

	surface := hexColor(theme.SurfaceAlt, background)
	muted := hexColor(theme.Muted, text)
	border := hexColor(theme.Border, muted)
	if s.cursor == carousel.CursorGrabbing {
		border = hexColor(theme.BorderFocus, border)
	}

	s.layout()
	shift := int(math.Round(s.offset))
	for i, src := range s.order {
		x0 := s.lefts[i] + shift
		w := s.widths[src]
		if x0 >= c.width || x0+w <= 0 {
			continue
		}
		item := s.items[src]
		accent := border
		if parsed, _, ok := carousel.ParseColor(theme.CardAccent(src, item.Accent)); ok {
			accent = parsed
		}
		s.paintCard(c, x0, w, item.Title, item.Subtitle, accent, muted, border, surface)
	}

	s.applyFade(c, background)
	return c
}

func (s *terminalStrip) paintCard(c *canvas, x0, w int, title, subtitle string, accent, muted, border, surface colorful.Color) {
	inner := w - 2
	c.put(x0, 0, '╭', border, surface, false)
	c.put(x0, 3, '╰', border, surface, false)
	for x := 1; x <= inner; x++ {
		c.put(x0+x, 0, '─', border, surface, false)
		c.put(x0+x, 3, '─', border, surface, false)
	}
	c.put(x0+w-1, 0, '╮', border, surface, false)
	c.put(x0+w-1, 3, '╯', border, surface, false)

	for y := 1; y <= 2; y++ {
		c.put(x0, y, '│', border, surface, false)
		c.put(x0+1, y, ' ', border, surface, false)
		c.put(x0+w-2, y, ' ', border, surface, false)
		c.put(x0+w-1, y, '│', border, surface, false)
	}
	c.text(x0+2, 1, w-cardChrome, title, accent, surface, true)
	c.text(x0+2, 2, w-cardChrome, subtitle, muted, surface, false)
}

// applyFade blends both edges toward the fade color, fully opaque at the
// outermost cell.
func (s *terminalStrip) applyFade(c *canvas, background colorful.Color) {
	width := int(math.Round(s.fade.Width))
	if width <= 0 || !finiteWidth(s.fade.Width) {
		return
	}
	width = min(width, c.width/2)
	color := background
	if s.fade.Parsed {
		color = s.fade.Color
	}
	for k := 0; k < width; k++ {
		t := 1 - float64(k)/float64(width)
		for y := range c.rows {
			for _, x := range []int{k, c.width - 1 - k} {
				cl := &c.rows[y][x]
				cl.fg = cl.fg.BlendLab(color, t).Clamped()
				cl.bg = cl.bg.BlendLab(color, t).Clamped()
			}
		}
	}
}

// Render returns the strip as cardHeight lines, each exactly viewport cells
// wide.
func (s *terminalStrip) Render(theme Theme) string {
	c := s.paint(theme)
	lines := make([]string, len(c.rows))
	for y, row := range c.rows {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of cells sharing colors with one lipgloss style each.
func renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	var cur cell
	started := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(cur.fg.Hex())).
			Background(lipgloss.Color(cur.bg.Hex())).
			Bold(cur.bold)
		b.WriteString(style.Render(run.String()))
		run.Reset()
	}
	for _, cl := range row {
		if cl.r == 0 {
			continue
		}
		if !started || cl.fg != cur.fg || cl.bg != cur.bg || cl.bold != cur.bold {
			flush()
			cur = cl
			started = true
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}

func hexColor(s string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

func finiteWidth(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}

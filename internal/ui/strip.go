package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/config"
)

const (
	cardHeight   = 4  // border, title, subtitle, border
	cardChrome   = 4  // border and one space of padding on each side
	maxCardWidth = 36 // cells
)

// terminalStrip lays cards out on a single row of terminal cells. It is the
// carousel's view of the screen: one pixel is one cell.
type terminalStrip struct {
	items    []config.Item
	order    []int // source item of each rendered card
	widths   []int // per source item, refreshed by Reflow
	lefts    []int // per rendered card; nil when stale
	gap      int
	minWidth int

	viewport int
	offset   float64
	cursor   carousel.Cursor
	fade     carousel.Fade
	pending  int

	observers map[int]func()
	nextObs   int
}

var (
	_ carousel.Strip           = (*terminalStrip)(nil)
	_ carousel.SizeObserver    = (*terminalStrip)(nil)
	_ carousel.ResourceTracker = (*terminalStrip)(nil)
)

func newStrip(items []config.Item, gap, minWidth int) *terminalStrip {
	s := &terminalStrip{
		gap:       max(gap, 0),
		minWidth:  minWidth,
		observers: map[int]func(){},
	}
	s.Reset(items)
	return s
}

// Reset replaces the items and drops any appended copies.
func (s *terminalStrip) Reset(items []config.Item) {
	s.items = append([]config.Item(nil), items...)
	s.order = s.order[:0]
	for i := range s.items {
		s.order = append(s.order, i)
	}
	s.Reflow()
}

// Replace swaps item content in place when the count is unchanged, so copies
// pick up the new text. It reports false, changing nothing, otherwise.
func (s *terminalStrip) Replace(items []config.Item) bool {
	if len(items) != len(s.items) {
		return false
	}
	copy(s.items, items)
	s.Reflow()
	s.notify()
	return true
}

func (s *terminalStrip) Len() int { return len(s.order) }

func (s *terminalStrip) Append(src int) {
	s.order = append(s.order, s.order[src])
	s.lefts = nil
}

func (s *terminalStrip) Bounds(i int) (left, width float64) {
	s.layout()
	return float64(s.lefts[i]), float64(s.widths[s.order[i]])
}

func (s *terminalStrip) Gap() float64 { return float64(s.gap) }

func (s *terminalStrip) Reflow() {
	s.widths = s.widths[:0]
	for _, item := range s.items {
		s.widths = append(s.widths, s.cardWidth(item))
	}
	s.lefts = nil
}

func (s *terminalStrip) SetOffset(x float64) { s.offset = x }

func (s *terminalStrip) SetCursor(c carousel.Cursor) { s.cursor = c }

// SetFade stores the edge fade. An unrecognised color keeps the width but
// falls back to the theme background when painting.
func (s *terminalStrip) SetFade(f carousel.Fade) error {
	s.fade = f
	if !f.Parsed && strings.TrimSpace(f.Raw) != "" {
		return fmt.Errorf("fade color %q not recognised, using theme background", f.Raw)
	}
	return nil
}

func (s *terminalStrip) ClearStyle() {
	s.offset = 0
	s.cursor = carousel.CursorNone
	s.fade = carousel.Fade{}
}

func (s *terminalStrip) ObserveSize(fn func()) (stop func()) {
	s.nextObs++
	id := s.nextObs
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *terminalStrip) Pending() int { return s.pending }

// Resize records the terminal width and notifies observers when it changed.
func (s *terminalStrip) Resize(width int) {
	if width == s.viewport {
		return
	}
	s.viewport = width
	s.notify()
}

func (s *terminalStrip) notify() {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.observers[id]; ok {
			fn()
		}
	}
}

func (s *terminalStrip) layout() {
	if len(s.lefts) == len(s.order) && s.lefts != nil {
		return
	}
	s.lefts = make([]int, len(s.order))
	x := 0
	for i, src := range s.order {
		s.lefts[i] = x
		x += s.widths[src] + s.gap
	}
}

func (s *terminalStrip) cardWidth(item config.Item) int {
	text := max(runewidth.StringWidth(item.Title), runewidth.StringWidth(item.Subtitle))
	w := min(text+cardChrome, maxCardWidth)
	return max(w, s.minWidth, cardChrome+1)
}

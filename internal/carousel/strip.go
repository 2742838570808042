package carousel

import (
	"log"
	"time"
)

// Strip is the rendered content the carousel duplicates, measures and moves.
// Geometry is reported in the strip's own coordinate space with no offset
// applied.
type Strip interface {
	// Len reports the number of rendered items, copies included.
	Len() int
	// Append renders one more item as a copy of item src.
	Append(src int)
	// Bounds reports the left edge and width of item i.
	Bounds(i int) (left, width float64)
	// Gap reports the trailing margin of the first item.
	Gap() float64
	// Reflow forces pending layout work to complete.
	Reflow()
	// SetOffset applies the horizontal translation.
	SetOffset(x float64)
	SetCursor(c Cursor)
	// SetFade styles the edge gradients. It fails when the strip has no
	// surrounding surface to style.
	SetFade(f Fade) error
	// ClearStyle drops transform and cursor styling.
	ClearStyle()
}

// SizeObserver is implemented by strips that can report geometry changes of
// the container or any item.
type SizeObserver interface {
	ObserveSize(fn func()) (stop func())
}

// ResourceTracker is implemented by strips whose content loads
// asynchronously. Pending reports how many items are still loading.
type ResourceTracker interface {
	Pending() int
}

// Scheduler runs frame callbacks and timers on the carousel's goroutine.
// frameloop.Loop implements it.
type Scheduler interface {
	Now() time.Time
	RequestFrame(fn func(now time.Time)) (cancel func())
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Logger receives diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

var _ Logger = (*log.Logger)(nil)

// Cursor is the pointer affordance shown over the strip.
type Cursor int

const (
	CursorNone Cursor = iota
	CursorDefault
	CursorGrab
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return ""
	}
}

// Device identifies the input hardware behind a PointerEvent.
type Device int

const (
	DeviceMouse Device = iota
	DeviceTouch
)

// Touch is a single contact point of a touch event.
type Touch struct {
	X float64
}

// PointerEvent is the unified input shape for mouse and touch.
// Mouse events carry X; touch events carry Touches and use the first one.
type PointerEvent struct {
	Device  Device
	X       float64
	Touches []Touch
}

// MouseAt builds a mouse event at x.
func MouseAt(x float64) PointerEvent {
	return PointerEvent{Device: DeviceMouse, X: x}
}

// TouchAt builds a single-contact touch event at x.
func TouchAt(x float64) PointerEvent {
	return PointerEvent{Device: DeviceTouch, Touches: []Touch{{X: x}}}
}

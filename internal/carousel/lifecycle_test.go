package carousel

import (
	"errors"
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/five82/marquee/internal/frameloop"
)

func TestNew_RequiresCollaborators(t *testing.T) {
	loop := frameloop.New(frameloop.NewManualClock(epoch))
	if c, err := New(nil, loop, DefaultOptions()); !errors.Is(err, ErrNoStrip) || c != nil {
		t.Fatalf("New(nil strip) = (%v, %v), want (nil, ErrNoStrip)", c, err)
	}
	if c, err := New(newFakeStrip(1, 10, 0), nil, DefaultOptions()); !errors.Is(err, ErrNoScheduler) || c != nil {
		t.Fatalf("New(nil scheduler) = (%v, %v), want (nil, ErrNoScheduler)", c, err)
	}
}

func TestStartup_Order(t *testing.T) {
	h := newHarness(t, nil)

	if got := h.c.Phase(); got != PhaseIdle {
		t.Fatalf("Phase before ready = %v, want idle", got)
	}
	ops := h.strip.ops
	if len(ops) < 3 || ops[0] != "fade" || ops[1] != "append" || ops[len(ops)-1] != "cursor" {
		t.Fatalf("startup ops = %v, want fade, appends, cursor", ops)
	}
	if len(h.strip.observers) != 0 {
		t.Fatalf("size observer attached before ready")
	}

	h.start()
	if got := h.hooks.events; len(got) != 1 || got[0] != "ready" {
		t.Fatalf("events = %v, want [ready]", got)
	}
	if got := h.c.Phase(); got != PhaseAutoscrolling {
		t.Fatalf("Phase = %v, want autoscrolling", got)
	}
	if len(h.strip.observers) != 1 {
		t.Fatalf("observers = %d, want 1", len(h.strip.observers))
	}
}

func TestStartup_WaitsForMinimumSettle(t *testing.T) {
	h := newHarness(t, nil)
	h.step(40 * time.Millisecond)
	if h.c.Measuring() || h.c.Ready() {
		t.Fatalf("measurement started before the 50ms settle delay")
	}
	h.step(10 * time.Millisecond)
	if !h.c.Measuring() {
		t.Fatalf("measurement not started after 50ms")
	}
}

func TestStartup_WaitsForPendingResources(t *testing.T) {
	strip := newFakeStrip(5, 150, 20)
	strip.pending = 2
	h := newHarnessWithStrip(t, strip, nil)

	h.steps(20, frame)
	if h.c.Ready() {
		t.Fatalf("ready while resources pending")
	}
	strip.pending = 0
	h.steps(4, frame)
	if !h.c.Ready() {
		t.Fatalf("not ready after resources loaded")
	}
}

func TestStartup_PendingPollKeepsOneHandle(t *testing.T) {
	strip := newFakeStrip(5, 150, 20)
	strip.pending = 1
	h := newHarnessWithStrip(t, strip, nil)

	h.steps(180, frame)
	if h.c.Ready() {
		t.Fatalf("ready while resources pending")
	}
	if got := len(h.c.cancelWait); got != 2 {
		t.Fatalf("len(cancelWait) = %d after 180 frames, want 2", got)
	}
	if frames, timers := h.loop.Pending(); frames != 1 || timers != 1 {
		t.Fatalf("Pending = (%d, %d), want one poll frame and the timeout", frames, timers)
	}

	h.c.Destroy()
	if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
		t.Fatalf("Pending after Destroy = (%d, %d), want (0, 0)", frames, timers)
	}
}

func TestStartup_ResourceTimeout(t *testing.T) {
	strip := newFakeStrip(5, 150, 20)
	strip.pending = 1
	h := newHarnessWithStrip(t, strip, nil)

	h.steps(29, 100*time.Millisecond)
	if h.c.Ready() || h.c.Measuring() {
		t.Fatalf("startup proceeded before the 3s ceiling")
	}
	h.steps(3, 100*time.Millisecond)
	if !h.c.Ready() {
		t.Fatalf("not ready after the 3s ceiling")
	}
	if h.hooks.count("ready") != 1 {
		t.Fatalf("ready fired %d times, want 1", h.hooks.count("ready"))
	}
	h.steps(40, 100*time.Millisecond)
	if h.hooks.count("ready") != 1 {
		t.Fatalf("ready fired again after timeout")
	}
}

func TestPause_NotifiesEveryCall(t *testing.T) {
	h := newHarness(t, nil)
	h.start()

	h.c.Pause()
	h.c.Pause()
	if got := h.hooks.count("pause"); got != 2 {
		t.Fatalf("pause fired %d times, want 2", got)
	}

	h.c.Resume()
	h.c.Resume()
	if got := h.hooks.count("resume"); got != 1 {
		t.Fatalf("resume fired %d times, want 1", got)
	}
}

func TestHooks_PanicIsContained(t *testing.T) {
	h := newHarness(t, nil)
	h.hooks.panicName = "pause"
	h.start()

	h.c.Pause()
	if got := h.c.Phase(); got != PhasePaused {
		t.Fatalf("Phase = %v, want paused", got)
	}
	if !h.logged("error in OnPause hook: hook failure in pause") {
		t.Fatalf("log = %q, want hook error", h.logs.String())
	}
	h.c.Resume()
	h.steps(2, 100*time.Millisecond)
	if got := h.c.Position(); !approx(got, -5) {
		t.Fatalf("Position = %v, want -5", got)
	}
}

func TestHookFuncs_SkipsNilFields(t *testing.T) {
	var resets int
	hooks := HookFuncs{PositionReset: func() { resets++ }}
	hooks.OnReady()
	hooks.OnDrag(1, 2)
	hooks.OnMomentumStart(3)
	hooks.OnPositionReset()
	if resets != 1 {
		t.Fatalf("resets = %d, want 1", resets)
	}
	var _ Hooks = NopHooks{}
}

func TestSetters_IgnoreInvalidInput(t *testing.T) {
	h := newHarness(t, nil)
	before := h.c.Options()

	h.c.SetSpeed(math.NaN())
	h.c.SetSpeed(math.Inf(1))
	h.c.SetFadeWidth(math.NaN())
	after := h.c.Options()
	if after.Speed != before.Speed || after.FadeWidth != before.FadeWidth {
		t.Fatalf("options changed by non-finite setters: %+v", after)
	}

	h.c.SetFadeWidth(24)
	h.c.SetFadeColor("#000")
	if h.strip.fade.Width != 24 || h.strip.fade.Raw != "#000" {
		t.Fatalf("fade = %+v, want width 24 and color #000", h.strip.fade)
	}
	h.c.SetReverseDirection(true)
	if !h.c.Options().ReverseDirection {
		t.Fatalf("ReverseDirection = false, want true")
	}
}

func TestDestroy_IsFinal(t *testing.T) {
	h := newHarness(t, nil)
	h.start()
	h.c.PointerDown(MouseAt(100))
	h.c.PointerMove(MouseAt(80))
	h.strip.resized()
	events := len(h.hooks.events)
	fadeCalls := h.strip.fadeCalls

	h.c.Destroy()
	h.c.Destroy()

	if !h.strip.cleared || h.strip.cursor != CursorNone {
		t.Fatalf("strip styling not cleared")
	}
	if len(h.strip.observers) != 0 {
		t.Fatalf("size observer still attached")
	}

	h.c.Pause()
	h.c.Resume()
	h.c.SetSpeed(10)
	h.c.SetReverseDirection(true)
	h.c.SetFadeColor("#123456")
	h.c.SetFadeWidth(3)
	h.c.PointerMove(MouseAt(0))
	h.c.PointerUp()
	h.c.PointerDown(MouseAt(0))
	h.c.HoverEnter()
	h.c.Remeasure(func() { t.Fatalf("Remeasure callback after Destroy") })
	h.steps(20, 100*time.Millisecond)

	if got := len(h.hooks.events); got != events {
		t.Fatalf("events after Destroy = %v, want none beyond %d", h.hooks.events, events)
	}
	if h.strip.fadeCalls != fadeCalls {
		t.Fatalf("fade restyled after Destroy")
	}
	opts := h.c.Options()
	if opts.Speed != 50 || opts.ReverseDirection {
		t.Fatalf("options mutated after Destroy: %+v", opts)
	}
	if h.c.Position() != -20 || h.strip.offset != 0 {
		t.Fatalf("position = %v offset = %v, want -20 and cleared offset", h.c.Position(), h.strip.offset)
	}
	if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
		t.Fatalf("pending work after Destroy: %d frames, %d timers", frames, timers)
	}
	if got := h.c.Phase(); got != PhaseIdle {
		t.Fatalf("Phase after Destroy = %v, want idle", got)
	}
}

func TestDestroy_BeforeReadySuppressesStartup(t *testing.T) {
	h := newHarness(t, nil)
	h.step(frame)
	h.c.Destroy()
	h.steps(50, 100*time.Millisecond)

	if len(h.hooks.events) != 0 {
		t.Fatalf("events after Destroy = %v, want none", h.hooks.events)
	}
	if h.c.Ready() {
		t.Fatalf("Ready = true after Destroy")
	}
	if frames, timers := h.loop.Pending(); frames != 0 || timers != 0 {
		t.Fatalf("pending work after Destroy: %d frames, %d timers", frames, timers)
	}
}

func TestDestroy_HookCanDestroy(t *testing.T) {
	strip := newFakeStrip(5, 150, 20)
	clock := frameloop.NewManualClock(epoch)
	loop := frameloop.New(clock)

	var c *Carousel
	resets := 0
	opts := DefaultOptions()
	opts.Speed = 10000
	opts.Logger = log.New(io.Discard, "", 0)
	opts.Hooks = HookFuncs{PositionReset: func() {
		resets++
		c.Destroy()
	}}
	c, err := New(strip, loop, opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for i := 0; i < 100; i++ {
		clock.Advance(100 * time.Millisecond)
		loop.Advance(clock.Now())
	}
	if resets != 1 {
		t.Fatalf("resets = %d, want 1", resets)
	}
	if !c.Destroyed() {
		t.Fatalf("Destroyed = false")
	}
}

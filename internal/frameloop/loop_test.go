package frameloop

import (
	"reflect"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAdvance_RunsQueuedFramesOnce(t *testing.T) {
	clock := NewManualClock(epoch)
	loop := New(clock)

	var got []time.Time
	loop.RequestFrame(func(now time.Time) { got = append(got, now) })

	clock.Advance(16 * time.Millisecond)
	loop.Advance(clock.Now())
	loop.Advance(clock.Now())

	if len(got) != 1 {
		t.Fatalf("frame ran %d times, want 1", len(got))
	}
	if !got[0].Equal(epoch.Add(16 * time.Millisecond)) {
		t.Fatalf("frame time = %v, want %v", got[0], epoch.Add(16*time.Millisecond))
	}
}

func TestAdvance_FramesRequestedDuringFrameRunNextTime(t *testing.T) {
	loop := New(NewManualClock(epoch))

	count := 0
	var tick func(time.Time)
	tick = func(time.Time) {
		count++
		loop.RequestFrame(tick)
	}
	loop.RequestFrame(tick)

	for i := 0; i < 3; i++ {
		loop.Advance(epoch)
	}
	if count != 3 {
		t.Fatalf("self-scheduling frame ran %d times, want 3", count)
	}
	if frames, _ := loop.Pending(); frames != 1 {
		t.Fatalf("pending frames = %d, want 1", frames)
	}
}

func TestRequestFrame_Cancel(t *testing.T) {
	loop := New(NewManualClock(epoch))

	ran := false
	cancel := loop.RequestFrame(func(time.Time) { ran = true })
	cancel()
	cancel()
	loop.Advance(epoch)

	if ran {
		t.Fatalf("cancelled frame ran")
	}
}

func TestRequestFrame_CancelFromEarlierFrame(t *testing.T) {
	loop := New(NewManualClock(epoch))

	ran := false
	var cancelSecond func()
	loop.RequestFrame(func(time.Time) { cancelSecond() })
	cancelSecond = loop.RequestFrame(func(time.Time) { ran = true })
	loop.Advance(epoch)

	if ran {
		t.Fatalf("frame cancelled by an earlier frame in the same batch ran")
	}
}

func TestAfterFunc_RunsInDueOrder(t *testing.T) {
	clock := NewManualClock(epoch)
	loop := New(clock)

	var order []string
	loop.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	loop.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	loop.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(20 * time.Millisecond)
	loop.Advance(clock.Now())
	if want := []string{"a", "b"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order after 20ms = %v, want %v", order, want)
	}

	clock.Advance(20 * time.Millisecond)
	loop.Advance(clock.Now())
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order after 40ms = %v, want %v", order, want)
	}
	if _, timers := loop.Pending(); timers != 0 {
		t.Fatalf("pending timers = %d, want 0", timers)
	}
}

func TestAfterFunc_TimersRunBeforeFrames(t *testing.T) {
	clock := NewManualClock(epoch)
	loop := New(clock)

	var order []string
	loop.RequestFrame(func(time.Time) { order = append(order, "frame") })
	loop.AfterFunc(0, func() { order = append(order, "timer") })
	loop.Advance(clock.Now())

	if want := []string{"timer", "frame"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestAfterFunc_Cancel(t *testing.T) {
	clock := NewManualClock(epoch)
	loop := New(clock)

	ran := false
	cancel := loop.AfterFunc(5*time.Millisecond, func() { ran = true })
	cancel()
	clock.Advance(time.Second)
	loop.Advance(clock.Now())

	if ran {
		t.Fatalf("cancelled timer ran")
	}
}

func TestNew_NilClockUsesSystemClock(t *testing.T) {
	loop := New(nil)
	before := time.Now()
	if got := loop.Now(); got.Before(before) {
		t.Fatalf("Now() = %v, want >= %v", got, before)
	}
}

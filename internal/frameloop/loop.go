package frameloop

import (
	"sort"
	"time"
)

// DefaultFrameInterval is the cadence hosts should drive Advance at.
const DefaultFrameInterval = time.Second / 60

type frameTask struct {
	id        uint64
	fn        func(now time.Time)
	cancelled bool
}

type timerTask struct {
	id        uint64
	due       time.Time
	fn        func()
	cancelled bool
}

// Loop queues frame callbacks and timers until the owner advances it.
// A Loop is not safe for concurrent use.
type Loop struct {
	clock  Clock
	nextID uint64
	frames []*frameTask
	timers []*timerTask
}

// New returns a loop reading time from clock. A nil clock uses SystemClock.
func New(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{clock: clock}
}

// Now reports the loop clock's current time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// RequestFrame queues fn to run on the next Advance. The returned function
// cancels the request; calling it after fn ran is a no-op.
func (l *Loop) RequestFrame(fn func(now time.Time)) func() {
	l.nextID++
	task := &frameTask{id: l.nextID, fn: fn}
	l.frames = append(l.frames, task)
	return func() {
		if task.cancelled {
			return
		}
		task.cancelled = true
		l.frames = removeFrame(l.frames, task.id)
	}
}

// AfterFunc schedules fn to run on the first Advance at or after d from now.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	l.nextID++
	task := &timerTask{id: l.nextID, due: l.clock.Now().Add(d), fn: fn}
	l.timers = append(l.timers, task)
	return func() {
		if task.cancelled {
			return
		}
		task.cancelled = true
		l.timers = removeTimer(l.timers, task.id)
	}
}

// Advance runs every timer due at now, in due order, followed by the frame
// callbacks that were queued before the call.
func (l *Loop) Advance(now time.Time) {
	for {
		task := l.nextDue(now)
		if task == nil {
			break
		}
		task.cancelled = true
		l.timers = removeTimer(l.timers, task.id)
		task.fn()
	}

	if len(l.frames) == 0 {
		return
	}
	batch := l.frames
	l.frames = nil
	for _, task := range batch {
		if task.cancelled {
			continue
		}
		task.cancelled = true
		task.fn(now)
	}
}

// Pending reports queued frame callbacks and timers.
func (l *Loop) Pending() (frames, timers int) {
	return len(l.frames), len(l.timers)
}

func (l *Loop) nextDue(now time.Time) *timerTask {
	if len(l.timers) == 0 {
		return nil
	}
	sort.SliceStable(l.timers, func(i, j int) bool {
		if l.timers[i].due.Equal(l.timers[j].due) {
			return l.timers[i].id < l.timers[j].id
		}
		return l.timers[i].due.Before(l.timers[j].due)
	})
	first := l.timers[0]
	if first.due.After(now) {
		return nil
	}
	return first
}

func removeFrame(tasks []*frameTask, id uint64) []*frameTask {
	for i, t := range tasks {
		if t.id == id {
			return append(tasks[:i], tasks[i+1:]...)
		}
	}
	return tasks
}

func removeTimer(tasks []*timerTask, id uint64) []*timerTask {
	for i, t := range tasks {
		if t.id == id {
			return append(tasks[:i], tasks[i+1:]...)
		}
	}
	return tasks
}

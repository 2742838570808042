package carousel

import "time"

const (
	resourceTimeout = 3000 * time.Millisecond
	resourceSettle  = 50 * time.Millisecond
	resizeDebounce  = 100 * time.Millisecond
)

func (c *Carousel) initialize() {
	c.applyFade()
	c.duplicate()
	c.attachInput()
	c.waitForResources(func() {
		c.measure(func() {
			c.setInitialPosition()
			c.paused = false
			c.scrolling = true
			c.haveFrame = false
			if c.cancelFrame == nil && !c.momentum {
				c.startLoop()
			}
			c.observeSize()
			c.ready = true
			c.emit("OnReady", func(h Hooks) { h.OnReady() })
		})
	})
}

func (c *Carousel) attachInput() {
	c.hoverAttached = c.opts.PauseOnHover
	c.dragAttached = c.opts.Interactable
	if c.opts.Interactable {
		c.strip.SetCursor(CursorGrab)
	} else {
		c.strip.SetCursor(CursorDefault)
	}
}

// waitForResources calls done once the strip has no pending resources and
// at least resourceSettle has passed, or after resourceTimeout regardless.
func (c *Carousel) waitForResources(done func()) {
	start := c.sched.Now()
	finished := false
	finish := func() {
		if finished || c.destroyed {
			return
		}
		finished = true
		c.stopWaiting()
		done()
	}

	// One handle covers the poll, whether it is waiting on a frame or on
	// the settle timer.
	var cancelPoll func()
	c.cancelWait = append(c.cancelWait,
		c.sched.AfterFunc(resourceTimeout, finish),
		func() {
			if cancelPoll != nil {
				cancelPoll()
				cancelPoll = nil
			}
		},
	)

	tracker, _ := c.strip.(ResourceTracker)
	var poll func(now time.Time)
	poll = func(now time.Time) {
		cancelPoll = nil
		if finished || c.destroyed {
			return
		}
		if tracker != nil && tracker.Pending() > 0 {
			cancelPoll = c.sched.RequestFrame(poll)
			return
		}
		remaining := max(resourceSettle-now.Sub(start), 0)
		cancelPoll = c.sched.AfterFunc(remaining, finish)
	}
	poll(start)
}

func (c *Carousel) stopWaiting() {
	for _, cancel := range c.cancelWait {
		cancel()
	}
	c.cancelWait = nil
}

func (c *Carousel) setInitialPosition() {
	if !c.measured {
		return
	}
	// Reverse mode starts one set in so content fills both sides.
	if c.opts.ReverseDirection {
		c.position = c.resetPosition
	} else {
		c.position = 0
	}
	c.strip.SetOffset(c.position)
}

func (c *Carousel) observeSize() {
	observer, ok := c.strip.(SizeObserver)
	if !ok {
		return
	}
	if c.stopObserve != nil {
		c.stopObserve()
	}
	c.stopDebounce()
	c.stopObserve = observer.ObserveSize(c.sizeChanged)
}

func (c *Carousel) sizeChanged() {
	if c.destroyed {
		return
	}
	c.stopDebounce()
	c.cancelDebounce = c.sched.AfterFunc(resizeDebounce, func() {
		c.cancelDebounce = nil
		if !c.measuring {
			c.measure(nil)
		}
	})
}

func (c *Carousel) stopDebounce() {
	if c.cancelDebounce != nil {
		c.cancelDebounce()
		c.cancelDebounce = nil
	}
}

// Pause stops autoscroll. It notifies on every call, even when already
// paused.
func (c *Carousel) Pause() {
	if c.destroyed {
		return
	}
	c.paused = true
	c.emit("OnPause", func(h Hooks) { h.OnPause() })
}

// Resume restarts autoscroll after Pause. It is a no-op unless paused.
func (c *Carousel) Resume() {
	if c.destroyed || !c.paused {
		return
	}
	c.paused = false
	c.scrolling = true
	c.haveFrame = false
	if c.cancelFrame == nil && !c.momentum {
		c.startLoop()
	}
	c.emit("OnResume", func(h Hooks) { h.OnResume() })
}

// SetSpeed changes the autoscroll speed in px/s. Negative values flip the
// direction; non-finite values are ignored.
func (c *Carousel) SetSpeed(speed float64) {
	if c.destroyed || !finite(speed) {
		return
	}
	c.opts.Speed = speed
	for _, diag := range c.opts.Validate() {
		c.logf("%s", diag)
	}
}

// SetReverseDirection switches between forward (leftward) and reverse
// scrolling.
func (c *Carousel) SetReverseDirection(reverse bool) {
	if c.destroyed {
		return
	}
	c.opts.ReverseDirection = reverse
}

// SetFadeColor restyles the edge gradients.
func (c *Carousel) SetFadeColor(color string) {
	if c.destroyed {
		return
	}
	c.opts.FadeColor = color
	c.applyFade()
}

// SetFadeWidth resizes the edge gradients; non-finite values are ignored.
func (c *Carousel) SetFadeWidth(width float64) {
	if c.destroyed || !finite(width) {
		return
	}
	c.opts.FadeWidth = width
	c.applyFade()
}

// Remeasure recomputes the set width. done runs once the measurement (or the
// one already in flight) completes; it never runs after Destroy.
func (c *Carousel) Remeasure(done func()) {
	c.measure(done)
}

// Destroy stops all motion and scheduled work, detaches input and clears
// styling. Further calls to any method are no-ops.
func (c *Carousel) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.ready = false
	c.scrolling = false
	c.momentum = false
	c.velocity = 0
	c.drag = nil

	c.stopLoop()
	c.stopDragNotify()
	c.stopWaiting()
	if c.cancelMeasure != nil {
		c.cancelMeasure()
		c.cancelMeasure = nil
	}
	c.measuring = false
	c.waiters = nil

	c.hoverAttached = false
	c.dragAttached = false
	if c.stopObserve != nil {
		c.stopObserve()
		c.stopObserve = nil
	}
	c.stopDebounce()

	c.strip.ClearStyle()
}

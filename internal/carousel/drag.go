package carousel

import (
	"math"
	"time"
)

type dragSession struct {
	startX        float64
	startPosition float64
	lastX         float64
	lastTime      time.Time
}

// clientX extracts the horizontal coordinate of either device shape.
func (e PointerEvent) clientX() (float64, bool) {
	if e.Device == DeviceTouch {
		if len(e.Touches) == 0 {
			return 0, false
		}
		return e.Touches[0].X, finite(e.Touches[0].X)
	}
	return e.X, finite(e.X)
}

// HoverEnter pauses autoscroll while the pointer is over the strip.
func (c *Carousel) HoverEnter() {
	if c.destroyed || !c.hoverAttached {
		return
	}
	if c.drag == nil && !c.momentum {
		c.Pause()
	}
}

// HoverLeave resumes autoscroll when the pointer leaves the strip.
func (c *Carousel) HoverLeave() {
	if c.destroyed || !c.hoverAttached {
		return
	}
	if c.drag == nil && !c.momentum {
		c.Resume()
	}
}

// PointerDown starts a drag session. Grabbing the strip stops any momentum.
func (c *Carousel) PointerDown(ev PointerEvent) {
	if c.destroyed || !c.dragAttached || c.drag != nil {
		return
	}
	x, ok := ev.clientX()
	if !ok {
		x = 0
	}

	c.drag = &dragSession{
		startX:        x,
		startPosition: c.position,
		lastX:         x,
		lastTime:      c.sched.Now(),
	}
	c.dragDeltaX = 0
	c.momentum = false
	c.velocity = 0
	if !c.paused {
		c.Pause()
	}

	c.strip.SetCursor(CursorGrabbing)
	c.emit("OnDragStart", func(h Hooks) { h.OnDragStart() })
}

// PointerMove follows the pointer. Crossing either loop boundary teleports
// the position by one set width and rebases the session so the drag
// continues without a seam.
func (c *Carousel) PointerMove(ev PointerEvent) {
	if c.destroyed || c.drag == nil {
		return
	}
	s := c.drag

	x, ok := ev.clientX()
	if !ok {
		x = s.lastX
	}

	now := c.sched.Now()
	deltaX := x - s.startX
	if dt := milliseconds(now.Sub(s.lastTime)); dt > 0 {
		limit := c.opts.MaxMomentumSpeed
		c.velocity = clamp((x-s.lastX)/dt, -limit, limit)
	}
	s.lastTime = now
	s.lastX = x

	next := s.startPosition + deltaX
	if c.measured {
		if wrapped := c.wrap(next); wrapped != next {
			next = wrapped
			s.startPosition = next
			s.startX = x
		}
	}

	c.position = next
	c.dragDeltaX = deltaX
	c.strip.SetOffset(c.position)

	if c.cancelDragNotify == nil {
		c.cancelDragNotify = c.sched.RequestFrame(func(time.Time) {
			c.cancelDragNotify = nil
			position, delta := c.position, c.dragDeltaX
			c.emit("OnDrag", func(h Hooks) { h.OnDrag(position, delta) })
		})
	}
}

// PointerUp ends the drag session, handing off to momentum when the release
// was fast enough.
func (c *Carousel) PointerUp() {
	if c.destroyed || c.drag == nil {
		return
	}
	c.drag = nil
	c.stopDragNotify()
	c.emit("OnDragEnd", func(h Hooks) { h.OnDragEnd() })
	if c.destroyed {
		return
	}

	velocity := c.velocity
	if !finite(velocity) {
		velocity = 0
	}
	if math.Abs(velocity) > momentumStartSpeed && !c.opts.DisableMomentum {
		c.velocity = velocity
		c.startMomentum()
		return
	}

	c.velocity = 0
	c.snapToValidPosition()
	c.strip.SetCursor(CursorGrab)
	c.Resume()
}

// PointerLeave ends an active drag when the pointer leaves the tracking
// surface.
func (c *Carousel) PointerLeave() {
	if c.drag != nil {
		c.PointerUp()
	}
}

func (c *Carousel) startMomentum() {
	c.momentum = true
	c.strip.SetCursor(CursorGrab)
	velocity := c.velocity
	c.emit("OnMomentumStart", func(h Hooks) { h.OnMomentumStart(velocity) })
	if !c.destroyed && c.cancelFrame == nil {
		c.startLoop()
	}
}

func (c *Carousel) stopDragNotify() {
	if c.cancelDragNotify != nil {
		c.cancelDragNotify()
		c.cancelDragNotify = nil
	}
}

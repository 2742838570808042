package carousel

import (
	"math"
	"time"
)

const (
	maxFrameDelta      = 100.0 // ms
	resetBuffer        = 1.0   // px
	momentumStopSpeed  = 0.02  // px per ms
	momentumStartSpeed = 0.01  // px per ms
)

func (c *Carousel) startLoop() {
	c.cancelFrame = c.sched.RequestFrame(c.frame)
}

func (c *Carousel) stopLoop() {
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
}

func (c *Carousel) frame(now time.Time) {
	c.cancelFrame = nil
	if c.destroyed || (!c.scrolling && !c.momentum) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logf("error in animation frame: %v", r)
		}
		if !c.destroyed && c.cancelFrame == nil && (c.scrolling || c.momentum) {
			c.startLoop()
		}
	}()

	// No delta on the first frame after a (re)start.
	if !c.haveFrame {
		c.haveFrame = true
		c.lastFrame = now
		return
	}

	delta := milliseconds(now.Sub(c.lastFrame))
	c.lastFrame = now
	if delta <= 0 {
		return
	}
	elapsed := math.Min(delta, maxFrameDelta)

	switch {
	case c.momentum:
		c.stepMomentum(elapsed)
	case c.scrolling && !c.paused && c.drag == nil:
		c.stepAutoscroll(elapsed)
	}
}

func (c *Carousel) stepMomentum(elapsed float64) {
	c.position += c.velocity * elapsed
	c.velocity *= 1 - c.opts.MomentumDecay
	if c.measured {
		c.position = c.wrap(c.position)
	}
	c.strip.SetOffset(c.position)

	if math.Abs(c.velocity) < momentumStopSpeed {
		c.momentum = false
		c.velocity = 0
		c.emit("OnMomentumEnd", func(h Hooks) { h.OnMomentumEnd() })
		c.snapToValidPosition()
		c.Resume()
	}
}

func (c *Carousel) stepAutoscroll(elapsed float64) {
	step := c.opts.Speed / 1000 * elapsed

	// Test the candidate before committing so the seam never shows for a
	// frame.
	if c.opts.ReverseDirection {
		next := c.position + step
		if c.measured && next >= -resetBuffer {
			c.position = c.resetPosition
			c.emitReset()
		} else {
			c.position = next
		}
	} else {
		next := c.position - step
		if c.measured && next <= c.resetPosition+resetBuffer {
			c.position = 0
			c.emitReset()
		} else {
			c.position = next
		}
	}
	c.strip.SetOffset(c.position)
}

// snapToValidPosition moves a position sitting on or past the loop seam in
// the scroll direction back to the canonical edge.
func (c *Carousel) snapToValidPosition() {
	if !c.measured {
		return
	}
	if c.opts.ReverseDirection {
		if c.position >= 0 {
			c.position = c.resetPosition
			c.strip.SetOffset(c.position)
			c.emitReset()
		}
		return
	}
	if c.position <= c.resetPosition {
		c.position = 0
		c.strip.SetOffset(c.position)
		c.emitReset()
	}
}

func (c *Carousel) emitReset() {
	c.emit("OnPositionReset", func(h Hooks) { h.OnPositionReset() })
}

func (c *Carousel) wrap(pos float64) float64 {
	return Wrap(pos, c.resetPosition)
}

// Wrap applies one infinite-wrap correction to pos for a loop whose boundary
// is reset (<= 0): a position past either end moves one set width back
// inside.
func Wrap(pos, reset float64) float64 {
	if reset >= 0 {
		return pos
	}
	switch {
	case pos <= reset:
		return pos - reset
	case pos >= 0:
		return reset + pos
	}
	return pos
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

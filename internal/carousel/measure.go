package carousel

import (
	"math"
	"time"
)

// stableTolerance is how far two consecutive samples may differ before the
// content is considered still settling.
const stableTolerance = 1.0

type measureSnapshot struct {
	wasScrolling bool
	oldWidth     float64
	hadWidth     bool
}

// measure computes the width of one content set over two or three frames.
// Only one measurement runs at a time; callers arriving while one is in
// flight have done attached to it.
func (c *Carousel) measure(done func()) {
	if c.destroyed {
		return
	}
	if done != nil {
		c.waiters = append(c.waiters, done)
	}
	if c.measuring {
		return
	}
	c.measuring = true

	snap := measureSnapshot{
		wasScrolling: c.scrolling,
		oldWidth:     c.totalSetWidth,
		hadWidth:     c.measured,
	}
	c.guardMeasure(snap, func() {
		if c.strip.Len() == 0 || c.originalCount == 0 {
			if c.strip.Len() > 0 {
				c.logf("no items to scroll")
			}
			c.endMeasure()
			return
		}

		// Measure the natural flow with no translation applied. The position
		// itself stays live so a drag or release during the measurement is
		// kept.
		c.scrolling = false
		c.stopLoop()
		c.strip.SetOffset(0)
		c.strip.Reflow()

		c.cancelMeasure = c.sched.RequestFrame(func(time.Time) {
			c.guardMeasure(snap, func() {
				first := c.sampleWidth()
				c.cancelMeasure = c.sched.RequestFrame(func(time.Time) {
					c.guardMeasure(snap, func() {
						second := c.sampleWidth()
						if math.Abs(first-second) > stableTolerance {
							c.cancelMeasure = c.sched.RequestFrame(func(time.Time) {
								c.guardMeasure(snap, func() {
									c.finalizeMeasure(snap, c.sampleWidth())
								})
							})
							return
						}
						c.finalizeMeasure(snap, (first+second)/2)
					})
				})
			})
		})
	})
}

// sampleWidth measures the distance from the first item of set one to the
// first item of set two, or falls back to summing item widths and the gaps
// between them when fewer than two sets are rendered.
func (c *Carousel) sampleWidth() float64 {
	n := c.originalCount
	count := c.strip.Len()
	if count >= n*2 {
		first, _ := c.strip.Bounds(0)
		second, _ := c.strip.Bounds(n)
		return second - first
	}

	gap := c.strip.Gap()
	total := 0.0
	for i := 0; i < n && i < count; i++ {
		_, width := c.strip.Bounds(i)
		total += width
		if i < n-1 {
			total += gap
		}
	}
	return total
}

func (c *Carousel) finalizeMeasure(snap measureSnapshot, width float64) {
	c.cancelMeasure = nil
	if c.destroyed {
		c.measuring = false
		return
	}

	width = math.Round(width*100) / 100
	if width <= 0 || !finite(width) {
		c.logf("measured set width %v, looping disabled until the next measurement", width)
		c.restore(snap, c.position)
		c.endMeasure()
		return
	}
	reset := -width

	position := c.position
	if snap.hadWidth && snap.oldWidth != width && position != 0 {
		position *= width / snap.oldWidth
		switch {
		case position >= 0:
			if c.opts.ReverseDirection {
				position = reset
			} else {
				position = 0
			}
		case position <= reset:
			position = reset
		}
	}

	c.totalSetWidth = width
	c.resetPosition = reset
	c.measured = true
	c.restore(snap, position)
	c.strip.Reflow()

	if c.drag != nil {
		c.drag.startPosition = c.position
		c.drag.startX = c.drag.lastX
	} else {
		c.snapToValidPosition()
	}
	c.endMeasure()
}

// restore reapplies the position and restarts the frame loop if motion was
// running when the measurement began.
func (c *Carousel) restore(snap measureSnapshot, position float64) {
	c.position = position
	c.strip.SetOffset(position)
	c.scrolling = snap.wasScrolling || c.scrolling

	if c.destroyed || c.cancelFrame != nil {
		return
	}
	if c.momentum || (c.scrolling && !c.paused && c.drag == nil) {
		c.haveFrame = false
		c.startLoop()
	}
}

func (c *Carousel) endMeasure() {
	c.measuring = false
	waiters := c.waiters
	c.waiters = nil
	for _, done := range waiters {
		if c.destroyed {
			return
		}
		done()
	}
}

// guardMeasure runs one step of a measurement, turning a panic from the
// strip into a logged failure that still releases the waiters.
func (c *Carousel) guardMeasure(snap measureSnapshot, step func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		c.logf("error calculating scroll distance: %v", r)
		c.cancelMeasure = nil
		if c.destroyed {
			c.measuring = false
			return
		}
		c.restore(snap, c.position)
		c.endMeasure()
	}()
	step()
}

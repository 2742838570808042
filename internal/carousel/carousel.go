package carousel

import (
	"errors"
	"log"
	"time"
)

var (
	// ErrNoStrip is returned by New when no strip is supplied.
	ErrNoStrip = errors.New("carousel: strip not found")
	// ErrNoScheduler is returned by New when no scheduler is supplied.
	ErrNoScheduler = errors.New("carousel: scheduler not found")
)

// Phase is the carousel's externally visible motion state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAutoscrolling
	PhasePaused
	PhaseDragging
	PhaseMomentum
)

func (p Phase) String() string {
	switch p {
	case PhaseAutoscrolling:
		return "autoscrolling"
	case PhasePaused:
		return "paused"
	case PhaseDragging:
		return "dragging"
	case PhaseMomentum:
		return "momentum"
	default:
		return "idle"
	}
}

// Carousel owns the state of one looping strip.
type Carousel struct {
	strip Strip
	sched Scheduler
	opts  Options

	ready     bool
	scrolling bool
	paused    bool
	momentum  bool
	position  float64
	velocity  float64 // px per ms

	cancelFrame func()
	haveFrame   bool
	lastFrame   time.Time

	measured      bool
	totalSetWidth float64
	resetPosition float64
	measuring     bool
	waiters       []func()
	cancelMeasure func()

	duplicated    bool
	originalCount int

	hoverAttached    bool
	dragAttached     bool
	drag             *dragSession
	dragDeltaX       float64
	cancelDragNotify func()

	cancelWait     []func()
	stopObserve    func()
	cancelDebounce func()

	destroyed bool
}

// New validates opts, wires the carousel to strip and starts the startup
// sequence on sched. The carousel becomes ready (and Hooks.OnReady fires)
// once resources settle and the first measurement completes.
func New(strip Strip, sched Scheduler, opts Options) (*Carousel, error) {
	if strip == nil {
		return nil, ErrNoStrip
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	opts.sanitize()

	c := &Carousel{strip: strip, sched: sched, opts: opts}
	for _, diag := range c.opts.Validate() {
		c.logf("%s", diag)
	}
	c.initialize()
	return c, nil
}

// Position reports the current horizontal offset.
func (c *Carousel) Position() float64 { return c.position }

// ResetPosition reports the loop boundary; ok is false until the first
// successful measurement.
func (c *Carousel) ResetPosition() (reset float64, ok bool) {
	return c.resetPosition, c.measured
}

// SetWidth reports the measured width of one content set.
func (c *Carousel) SetWidth() (width float64, ok bool) {
	return c.totalSetWidth, c.measured
}

// Velocity reports the momentum velocity in px/ms.
func (c *Carousel) Velocity() float64 { return c.velocity }

// Options returns a copy of the validated options.
func (c *Carousel) Options() Options { return c.opts }

// Ready reports whether startup completed.
func (c *Carousel) Ready() bool { return c.ready }

// Destroyed reports whether Destroy was called.
func (c *Carousel) Destroyed() bool { return c.destroyed }

// Measuring reports whether a layout measurement is in flight.
func (c *Carousel) Measuring() bool { return c.measuring }

// Phase reports the current motion state. A destroyed carousel is idle.
func (c *Carousel) Phase() Phase {
	switch {
	case c.destroyed:
		return PhaseIdle
	case c.drag != nil:
		return PhaseDragging
	case c.momentum:
		return PhaseMomentum
	case !c.ready:
		return PhaseIdle
	case c.paused:
		return PhasePaused
	default:
		return PhaseAutoscrolling
	}
}

func (c *Carousel) logf(format string, v ...any) {
	c.opts.Logger.Printf("carousel: "+format, v...)
}

package carousel

// Hooks receives lifecycle notifications. Implementations run on the
// carousel's goroutine and must not block. A panic inside a hook is
// recovered and logged; it never reaches the engine.
type Hooks interface {
	OnReady()
	OnDragStart()
	// OnDrag fires at most once per frame while dragging with the current
	// position and the distance dragged since the session (re)started.
	OnDrag(position, deltaX float64)
	OnDragEnd()
	// OnMomentumStart reports the release velocity in px/ms.
	OnMomentumStart(velocity float64)
	OnMomentumEnd()
	OnPositionReset()
	OnPause()
	OnResume()
}

// NopHooks implements Hooks with no-ops. Embed it to override a subset.
type NopHooks struct{}

func (NopHooks) OnReady() {}
func (NopHooks) OnDragStart() {}
func (NopHooks) OnDrag(_, _ float64) {}
func (NopHooks) OnDragEnd() {}
func (NopHooks) OnMomentumStart(float64) {}
func (NopHooks) OnMomentumEnd() {}
func (NopHooks) OnPositionReset() {}
func (NopHooks) OnPause() {}
func (NopHooks) OnResume() {}

// HookFuncs adapts optional functions to Hooks; nil fields are skipped.
type HookFuncs struct {
	Ready         func()
	DragStart     func()
	Drag          func(position, deltaX float64)
	DragEnd       func()
	MomentumStart func(velocity float64)
	MomentumEnd   func()
	PositionReset func()
	Pause         func()
	Resume        func()
}

func (h HookFuncs) OnReady() {
	if h.Ready != nil {
		h.Ready()
	}
}

func (h HookFuncs) OnDragStart() {
	if h.DragStart != nil {
		h.DragStart()
	}
}

func (h HookFuncs) OnDrag(position, deltaX float64) {
	if h.Drag != nil {
		h.Drag(position, deltaX)
	}
}

func (h HookFuncs) OnDragEnd() {
	if h.DragEnd != nil {
		h.DragEnd()
	}
}

func (h HookFuncs) OnMomentumStart(velocity float64) {
	if h.MomentumStart != nil {
		h.MomentumStart(velocity)
	}
}

func (h HookFuncs) OnMomentumEnd() {
	if h.MomentumEnd != nil {
		h.MomentumEnd()
	}
}

func (h HookFuncs) OnPositionReset() {
	if h.PositionReset != nil {
		h.PositionReset()
	}
}

func (h HookFuncs) OnPause() {
	if h.Pause != nil {
		h.Pause()
	}
}

func (h HookFuncs) OnResume() {
	if h.Resume != nil {
		h.Resume()
	}
}

// emit invokes one hook, isolating the engine from panics.
func (c *Carousel) emit(name string, call func(Hooks)) {
	if c.destroyed || c.opts.Hooks == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logf("error in %s hook: %v", name, r)
		}
	}()
	call(c.opts.Hooks)
}

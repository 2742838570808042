package ui

import (
	"time"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/state"
)

// telemetry forwards carousel notifications to the status store.
type telemetry struct {
	store *state.Store
	now   func() time.Time
}

var _ carousel.Hooks = telemetry{}

func (t telemetry) record(event string) {
	if t.store == nil {
		return
	}
	t.store.Record(event, t.now())
}

func (t telemetry) OnReady() { t.record("ready") }
func (t telemetry) OnDragStart() { t.record("dragstart") }
func (t telemetry) OnDrag(_, _ float64) { t.record("drag") }
func (t telemetry) OnDragEnd() { t.record("dragend") }
func (t telemetry) OnMomentumStart(float64) { t.record("momentumstart") }
func (t telemetry) OnMomentumEnd() { t.record("momentumend") }
func (t telemetry) OnPositionReset() { t.record("reset") }
func (t telemetry) OnPause() { t.record("pause") }
func (t telemetry) OnResume() { t.record("resume") }

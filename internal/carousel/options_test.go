package carousel

import (
	"math"
	"testing"
)

func TestValidate_NegativeSpeedFlipsDirection(t *testing.T) {
	for _, speed := range []float64{-0.5, -50, -1000} {
		opts := DefaultOptions()
		opts.Speed = speed
		diags := opts.Validate()
		if opts.Speed != math.Abs(speed) {
			t.Fatalf("Speed = %v, want %v", opts.Speed, math.Abs(speed))
		}
		if !opts.ReverseDirection {
			t.Fatalf("ReverseDirection = false for speed %v, want true", speed)
		}
		if len(diags) != 1 {
			t.Fatalf("diagnostics = %v, want exactly one", diags)
		}
	}
}

func TestValidate_ClampsToNearestBound(t *testing.T) {
	tests := []struct {
		name  string
		set   func(*Options)
		check func(Options) bool
	}{
		{"decay below", func(o *Options) { o.MomentumDecay = 0 }, func(o Options) bool { return o.MomentumDecay == MinMomentumDecay }},
		{"decay above", func(o *Options) { o.MomentumDecay = 0.95 }, func(o Options) bool { return o.MomentumDecay == MaxMomentumDecay }},
		{"max speed below", func(o *Options) { o.MaxMomentumSpeed = 0.1 }, func(o Options) bool { return o.MaxMomentumSpeed == MinMaxMomentumSpeed }},
		{"max speed above", func(o *Options) { o.MaxMomentumSpeed = 40 }, func(o Options) bool { return o.MaxMomentumSpeed == MaxMaxMomentumSpeed }},
		{"copies below", func(o *Options) { o.Copies = 1 }, func(o Options) bool { return o.Copies == MinCopies }},
		{"copies above", func(o *Options) { o.Copies = 500 }, func(o Options) bool { return o.Copies == MaxCopies }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.set(&opts)
			diags := opts.Validate()
			if !tt.check(opts) {
				t.Fatalf("options after Validate = %+v, want clamped value", opts)
			}
			if len(diags) != 1 {
				t.Fatalf("diagnostics = %v, want exactly one", diags)
			}
		})
	}
}

func TestValidate_InRangeIsUntouchedAndIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.MomentumDecay = 0.5
	opts.MaxMomentumSpeed = 0.5
	opts.Copies = 100
	want := opts

	if diags := opts.Validate(); len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if opts.MomentumDecay != want.MomentumDecay || opts.MaxMomentumSpeed != want.MaxMomentumSpeed || opts.Copies != want.Copies {
		t.Fatalf("Validate changed in-range options: %+v", opts)
	}

	opts.Speed = -10
	opts.Validate()
	if diags := opts.Validate(); len(diags) != 0 {
		t.Fatalf("second Validate diagnostics = %v, want none", diags)
	}
}

func TestSanitize_NonFiniteKeepsDefaults(t *testing.T) {
	opts := DefaultOptions()
	opts.Speed = math.NaN()
	opts.MomentumDecay = math.Inf(1)
	opts.MaxMomentumSpeed = math.Inf(-1)
	opts.FadeWidth = math.NaN()
	opts.sanitize()

	def := DefaultOptions()
	if opts.Speed != def.Speed || opts.MomentumDecay != def.MomentumDecay ||
		opts.MaxMomentumSpeed != def.MaxMomentumSpeed || opts.FadeWidth != def.FadeWidth {
		t.Fatalf("sanitize = %+v, want defaults for non-finite fields", opts)
	}
	if diags := opts.Validate(); len(diags) != 0 {
		t.Fatalf("diagnostics after sanitize = %v, want none", diags)
	}
}

func TestNew_LogsClampDiagnostics(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Copies = 2 })
	if got := h.c.Options().Copies; got != 3 {
		t.Fatalf("Copies = %d, want 3", got)
	}
	if !h.logged("copies 2 is outside valid range") {
		t.Fatalf("log = %q, want copies diagnostic", h.logs.String())
	}
}

package carousel

import (
	"fmt"
	"math"
)

// Bounds for the clamped tunables.
const (
	MinMomentumDecay    = 0.01
	MaxMomentumDecay    = 0.5
	MinMaxMomentumSpeed = 0.5
	MaxMaxMomentumSpeed = 25
	MinCopies           = 3
	MaxCopies           = 100
)

// Options configure a Carousel.
type Options struct {
	Speed            float64 // px per second
	ReverseDirection bool
	PauseOnHover     bool
	MomentumDecay    float64 // fraction of velocity lost per frame
	MaxMomentumSpeed float64 // px per ms
	FadeColor        string
	FadeWidth        float64 // px
	Interactable     bool
	Copies           int
	DisableMomentum  bool

	Hooks  Hooks
	Logger Logger
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Speed:            50,
		PauseOnHover:     true,
		MomentumDecay:    0.05,
		MaxMomentumSpeed: 2.0,
		FadeColor:        "#ffffff",
		FadeWidth:        50,
		Interactable:     true,
		Copies:           3,
	}
}

// Validate clamps every tunable into range and returns one diagnostic per
// adjustment. It is idempotent.
func (o *Options) Validate() []string {
	var diags []string

	if o.Speed < 0 {
		original := o.Speed
		o.Speed = math.Abs(o.Speed)
		o.ReverseDirection = true
		diags = append(diags, fmt.Sprintf(
			"negative speed %v: speed updated to %v and reverse direction enabled", original, o.Speed))
	}

	if o.MomentumDecay < MinMomentumDecay || o.MomentumDecay > MaxMomentumDecay {
		original := o.MomentumDecay
		o.MomentumDecay = clamp(o.MomentumDecay, MinMomentumDecay, MaxMomentumDecay)
		diags = append(diags, fmt.Sprintf(
			"momentum decay %v is outside valid range (%v - %v), clamped to %v",
			original, MinMomentumDecay, MaxMomentumDecay, o.MomentumDecay))
	}

	if o.MaxMomentumSpeed < MinMaxMomentumSpeed || o.MaxMomentumSpeed > MaxMaxMomentumSpeed {
		original := o.MaxMomentumSpeed
		o.MaxMomentumSpeed = clamp(o.MaxMomentumSpeed, MinMaxMomentumSpeed, MaxMaxMomentumSpeed)
		diags = append(diags, fmt.Sprintf(
			"max momentum speed %v is outside valid range (%v - %v), clamped to %v",
			original, MinMaxMomentumSpeed, MaxMaxMomentumSpeed, o.MaxMomentumSpeed))
	}

	if o.Copies < MinCopies || o.Copies > MaxCopies {
		original := o.Copies
		o.Copies = min(max(o.Copies, MinCopies), MaxCopies)
		diags = append(diags, fmt.Sprintf(
			"copies %d is outside valid range (%d - %d), clamped to %d",
			original, MinCopies, MaxCopies, o.Copies))
	}

	return diags
}

// sanitize replaces non-finite numbers with their defaults. Wrong-shaped
// values are dropped without a diagnostic.
func (o *Options) sanitize() {
	def := DefaultOptions()
	if !finite(o.Speed) {
		o.Speed = def.Speed
	}
	if !finite(o.MomentumDecay) {
		o.MomentumDecay = def.MomentumDecay
	}
	if !finite(o.MaxMomentumSpeed) {
		o.MaxMomentumSpeed = def.MaxMomentumSpeed
	}
	if !finite(o.FadeWidth) {
		o.FadeWidth = def.FadeWidth
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

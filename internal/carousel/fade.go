package carousel

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade describes the edge gradients drawn over both ends of the strip.
// The left gradient runs from Color to transparent left-to-right, the right
// gradient mirrors it.
type Fade struct {
	Raw   string
	Color colorful.Color
	Alpha float64
	// Parsed is false when Raw is not a hex, rgb() or rgba() color; the
	// strip decides how to render it.
	Parsed bool
	Width  float64
}

// ParseColor reads #rgb, #rrggbb, rgb(r, g, b) and rgba(r, g, b, a).
func ParseColor(s string) (c colorful.Color, alpha float64, ok bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "#"):
		hex := strings.TrimPrefix(s, "#")
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return colorful.Color{}, 0, false
		}
		parsed, err := colorful.Hex("#" + hex)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return parsed, 1, true
	}
	return colorful.Color{}, 0, false
}

func parseRGBFunc(s string) (colorful.Color, float64, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end <= open {
		return colorful.Color{}, 0, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) < 3 {
		return colorful.Color{}, 0, false
	}
	var rgb [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		rgb[i] = clamp(v, 0, 255) / 255
	}
	alpha := 1.0
	if len(parts) > 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		alpha = clamp(v, 0, 1)
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, alpha, true
}


func (c *Carousel) fade() Fade {
	f := Fade{Raw: c.opts.FadeColor, Width: c.opts.FadeWidth}
	if color, _, ok := ParseColor(c.opts.FadeColor); ok {
		// The gradient always starts fully opaque.
		f.Color, f.Alpha, f.Parsed = color, 1, true
	}
	return f
}

func (c *Carousel) applyFade() {
	if err := c.strip.SetFade(c.fade()); err != nil {
		c.logf("could not apply fade: %v", err)
	}
}

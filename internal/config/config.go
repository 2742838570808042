package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/carousel"
)

// Item is one card in the strip.
type Item struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Accent   string `toml:"accent"`
}

// Config is the resolved marquee configuration.
type Config struct {
	Carousel     carousel.Options
	Gap          int
	MinCardWidth int
	ItemsFile    string
	PollInterval time.Duration
	Items        []Item

	// Warnings lists carousel keys that were ignored while decoding.
	Warnings []string
}

const (
	defaultConfigPath   = "~/.config/marquee/config.toml"
	defaultGap          = 2
	defaultMinCardWidth = 16
	defaultPollInterval = 2 * time.Second
	defaultSpeed        = 12
	defaultFadeWidth    = 6
)

// Default returns the configuration used when no file exists. Speeds and
// widths are in terminal cells.
func Default() Config {
	opts := carousel.DefaultOptions()
	opts.Speed = defaultSpeed
	opts.FadeWidth = defaultFadeWidth
	opts.FadeColor = ""
	return Config{
		Carousel:     opts,
		Gap:          defaultGap,
		MinCardWidth: defaultMinCardWidth,
		PollInterval: defaultPollInterval,
	}
}

// Load locates and parses the marquee config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Carousel     map[string]any `toml:"carousel"`
		Gap          *int           `toml:"gap"`
		MinCardWidth *int           `toml:"min_card_width"`
		ItemsFile    string         `toml:"items_file"`
		PollSeconds  *float64       `toml:"poll_seconds"`
		Items        []Item         `toml:"items"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Warnings = ApplyCarousel(&cfg.Carousel, raw.Carousel)

	if raw.Gap != nil && *raw.Gap >= 0 {
		cfg.Gap = *raw.Gap
	}
	if raw.MinCardWidth != nil && *raw.MinCardWidth > 4 {
		cfg.MinCardWidth = *raw.MinCardWidth
	}
	if raw.PollSeconds != nil && *raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(*raw.PollSeconds * float64(time.Second))
	}
	if file := strings.TrimSpace(raw.ItemsFile); file != "" {
		cfg.ItemsFile = mustExpand(file)
	}
	for _, item := range raw.Items {
		item.Title = strings.TrimSpace(item.Title)
		item.Subtitle = strings.TrimSpace(item.Subtitle)
		item.Accent = strings.TrimSpace(item.Accent)
		if item.Title == "" && item.Subtitle == "" {
			continue
		}
		cfg.Items = append(cfg.Items, item)
	}

	return cfg, nil
}

// ApplyCarousel copies the recognised keys of a [carousel] table into opts.
// Values of the wrong type are skipped so the default stays in effect; each
// skipped or unknown key yields one warning.
func ApplyCarousel(opts *carousel.Options, table map[string]any) []string {
	var warnings []string
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := table[key]
		var ok bool
		switch key {
		case "speed":
			ok = setFloat(&opts.Speed, value)
		case "momentum_decay":
			ok = setFloat(&opts.MomentumDecay, value)
		case "max_momentum_speed":
			ok = setFloat(&opts.MaxMomentumSpeed, value)
		case "fade_width":
			ok = setFloat(&opts.FadeWidth, value)
		case "reverse_direction":
			ok = setBool(&opts.ReverseDirection, value)
		case "pause_on_hover":
			ok = setBool(&opts.PauseOnHover, value)
		case "interactable":
			ok = setBool(&opts.Interactable, value)
		case "disable_momentum":
			ok = setBool(&opts.DisableMomentum, value)
		case "fade_color":
			var s string
			s, ok = value.(string)
			if ok {
				opts.FadeColor = strings.TrimSpace(s)
			}
		case "copies":
			ok = setInt(&opts.Copies, value)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown carousel option %q", key))
			continue
		}
		if !ok {
			warnings = append(warnings, fmt.Sprintf("carousel option %q has invalid value %v (%T), using default", key, value, value))
		}
	}
	return warnings
}

func setFloat(dst *float64, value any) bool {
	var f float64
	switch v := value.(type) {
	case int64:
		f = float64(v)
	case float64:
		f = v
	default:
		return false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	*dst = f
	return true
}

func setInt(dst *int, value any) bool {
	switch v := value.(type) {
	case int64:
		*dst = int(v)
		return true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return false
		}
		*dst = int(v)
		return true
	}
	return false
}

func setBool(dst *bool, value any) bool {
	b, ok := value.(bool)
	if ok {
		*dst = b
	}
	return ok
}

// DefaultItems is the demo content shown when neither the config nor an
// items file provides any.
func DefaultItems() []Item {
	return []Item{
		{Title: "Bubble Tea", Subtitle: "TUI framework", Accent: "#ff79c6"},
		{Title: "Lip Gloss", Subtitle: "style definitions", Accent: "#bd93f9"},
		{Title: "Bubbles", Subtitle: "components", Accent: "#8be9fd"},
		{Title: "go-toml", Subtitle: "config parsing", Accent: "#50fa7b"},
		{Title: "colorful", Subtitle: "color blending", Accent: "#f1fa8c"},
		{Title: "runewidth", Subtitle: "cell widths", Accent: "#ffb86c"},
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

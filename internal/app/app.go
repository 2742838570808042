package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/feed"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string   // empty uses default ~/.config/marquee/prefs.toml
	ItemsPath  string   // overrides items_file from the config
	LogPath    string   // empty discards log output
	Speed      *float64 // overrides the configured speed when set
	Reverse    bool
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	closeLog, err := setupLogging(opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("prefs: %v, using defaults", err)
	}

	store := &state.Store{}

	// Start background items watcher
	var updates <-chan feed.Update
	if cfg.ItemsFile != "" {
		updates = feed.Watch(ctx, cfg.ItemsFile, cfg.PollInterval)
	}

	uiOpts := ui.Options{
		Config:    cfg,
		Items:     cfg.Items,
		Store:     store,
		Feed:      updates,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    log.Default(),
	}
	return ui.Run(ctx, uiOpts)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	for _, warning := range cfg.Warnings {
		log.Printf("config: %s", warning)
	}

	if path := strings.TrimSpace(opts.ItemsPath); path != "" {
		cfg.ItemsFile = path
	}
	if opts.Speed != nil {
		cfg.Carousel.Speed = *opts.Speed
	}
	if opts.Reverse {
		cfg.Carousel.ReverseDirection = true
	}
	return cfg, nil
}

// setupLogging points the standard logger at path. The terminal belongs to
// the TUI, so without a path log output is dropped.
func setupLogging(path string) (func(), error) {
	if strings.TrimSpace(path) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "marquee")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

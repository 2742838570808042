package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override marquee config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	itemsPath := flag.String("items", "", "items file to show and watch for changes (optional)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	speed := flag.Float64("speed", 0, "autoscroll speed in cells per second; negative scrolls right")
	reverse := flag.Bool("reverse", false, "scroll left to right")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ItemsPath:  *itemsPath,
		LogPath:    *logPath,
		Reverse:    *reverse,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "speed" {
			opts.Speed = speed
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}

package app

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
items_file = "/tmp/from-config.txt"

[carousel]
speed = 30
`)
	speed := 75.0

	tests := []struct {
		name        string
		opts        Options
		wantSpeed   float64
		wantReverse bool
		wantItems   string
	}{
		{"config only", Options{ConfigPath: path}, 30, false, "/tmp/from-config.txt"},
		{"speed flag", Options{ConfigPath: path, Speed: &speed}, 75, false, "/tmp/from-config.txt"},
		{"reverse flag", Options{ConfigPath: path, Reverse: true}, 30, true, "/tmp/from-config.txt"},
		{"items flag", Options{ConfigPath: path, ItemsPath: " /tmp/flag.txt "}, 30, false, "/tmp/flag.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.opts)
			if err != nil {
				t.Fatalf("loadConfig returned error: %v", err)
			}
			if cfg.Carousel.Speed != tt.wantSpeed {
				t.Fatalf("Speed = %v, want %v", cfg.Carousel.Speed, tt.wantSpeed)
			}
			if cfg.Carousel.ReverseDirection != tt.wantReverse {
				t.Fatalf("ReverseDirection = %v, want %v", cfg.Carousel.ReverseDirection, tt.wantReverse)
			}
			if cfg.ItemsFile != tt.wantItems {
				t.Fatalf("ItemsFile = %q, want %q", cfg.ItemsFile, tt.wantItems)
			}
		})
	}
}

func TestLoadConfig_LogsWarnings(t *testing.T) {
	buf := captureLog(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[carousel]\nwobble = 1\n")

	if _, err := loadConfig(Options{ConfigPath: path}); err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, `config: unknown carousel option "wobble"`) {
		t.Fatalf("log = %q, want the unknown option warning", got)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[carousel\n")
	if _, err := loadConfig(Options{ConfigPath: path}); err == nil {
		t.Fatalf("loadConfig returned nil error for malformed TOML")
	}
}

func TestSetupLogging(t *testing.T) {
	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	})

	path := filepath.Join(t.TempDir(), "marquee.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Print("hello from the test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log file = %q, want the message", data)
	}

	discard, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging(\"\") returned error: %v", err)
	}
	discard()
}

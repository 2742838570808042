package feed

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/five82/marquee/internal/config"
)

const (
	defaultPollInterval = 2 * time.Second

	// settleDelay coalesces the burst of events a single save produces.
	settleDelay = 50 * time.Millisecond
)

// reloadOps are the events on the items file that trigger a reload.
const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Update is one load of the items file.
type Update struct {
	Items []config.Item
	Err   error
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

// Watch launches a background goroutine that loads the file at path
// immediately and again whenever it changes. Changes are reported by
// fsnotify on the file's directory, so editors that save by renaming a
// temporary file are followed. When no watcher can be created the file is
// polled every interval instead. Each load is delivered on the returned
// channel, which is closed once ctx is cancelled.
func Watch(ctx context.Context, path string, interval time.Duration) <-chan Update {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	t := newTracker(path)
	out := make(chan Update)

	w, err := newWatcher(t.path)
	if err != nil {
		log.Printf("feed: watcher unavailable, polling every %v: %v", interval, err)
		go t.poll(ctx, interval, out)
		return out
	}
	go t.notify(ctx, w, out)
	return out
}

func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// tracker remembers the last load so unchanged or still-missing files are
// not reported twice.
type tracker struct {
	path   string
	last   fileStamp
	loaded bool
}

func newTracker(path string) *tracker {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &tracker{path: filepath.Clean(path)}
}

// next loads the file when it changed since the last load. force reloads an
// existing file even when its size and modification time look the same.
func (t *tracker) next(force bool) (Update, bool) {
	stamp, err := stat(t.path)
	if err != nil && t.loaded && t.last == (fileStamp{}) {
		// A file that stays missing is reported once.
		return Update{}, false
	}
	if err == nil && t.loaded && stamp == t.last && !force {
		return Update{}, false
	}
	t.loaded = true
	t.last = stamp
	return load(t.path, err), true
}

// send delivers the next load, if any. It reports false once ctx is done.
func (t *tracker) send(ctx context.Context, out chan<- Update, force bool) bool {
	u, ok := t.next(force)
	if !ok {
		return true
	}
	select {
	case out <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

func (t *tracker) notify(ctx context.Context, w *fsnotify.Watcher, out chan<- Update) {
	defer close(out)
	defer func() { _ = w.Close() }()

	if !t.send(ctx, out, false) {
		return
	}

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != t.path || ev.Op&reloadOps == 0 {
				continue
			}
			settle.Reset(settleDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("feed: watch %s: %v", t.path, err)

		case <-settle.C:
			if !t.send(ctx, out, true) {
				return
			}
		}
	}
}

func (t *tracker) poll(ctx context.Context, interval time.Duration, out chan<- Update) {
	defer close(out)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !t.send(ctx, out, false) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func stat(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}, nil
}

func load(path string, statErr error) Update {
	if statErr != nil {
		log.Printf("feed: items file unavailable: %v", statErr)
		return Update{Err: statErr}
	}
	items, err := Read(path)
	if err != nil {
		log.Printf("feed: %v", err)
		return Update{Err: err}
	}
	return Update{Items: items}
}

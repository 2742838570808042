package state

import (
	"fmt"
	"sync"
	"time"
)

// Motion is the carousel's observable state at one instant.
type Motion struct {
	Phase    string
	Position float64
	SetWidth float64 // zero until measured
	Velocity float64 // px per ms
	Speed    float64 // px per second
	Reverse  bool
	Ready    bool
}

// Counters tally hook notifications.
type Counters struct {
	Resets    int
	Drags     int
	Momentums int
	Pauses    int
	Resumes   int
}

// Snapshot represents the latest data available to the status bar.
type Snapshot struct {
	Motion      Motion
	Counters    Counters
	LastEvent   string
	LastEventAt time.Time

	Items               int
	FeedUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive feed load failures
}

// FeedStale returns true when the items feed has failed repeatedly.
func (s Snapshot) FeedStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The UI goroutine
// records motion and events; the feed watcher records loads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Observe replaces the motion state.
func (s *Store) Observe(m Motion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Motion = m
}

// Record notes a hook event by name and bumps its counter.
func (s *Store) Record(event string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.snapshot.Counters
	switch event {
	case "reset":
		c.Resets++
	case "dragstart":
		c.Drags++
	case "momentumstart":
		c.Momentums++
	case "pause":
		c.Pauses++
	case "resume":
		c.Resumes++
	}
	s.snapshot.LastEvent = event
	s.snapshot.LastEventAt = at
}

// UpdateFeed records the outcome of one items load. When err is non-nil the
// previous count is kept but the error is recorded for visibility.
func (s *Store) UpdateFeed(items int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.FeedUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Items = items
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Package timer measures named intervals.
package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrNotStarted      = errors.New("interval not started")
	ErrUnknownInterval = errors.New("unknown interval")
)

// Timer records the start and elapsed time of labelled intervals. It is
// safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	now     func() time.Time
	started map[string]time.Time
	elapsed map[string]time.Duration
}

func New() *Timer {
	return &Timer{
		now:     time.Now,
		started: make(map[string]time.Time),
		elapsed: make(map[string]time.Duration),
	}
}

// Start (re)starts the interval named label.
func (t *Timer) Start(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.started[label] = t.now()
}

// Finish stops the interval, stores its elapsed time and returns it.
func (t *Timer) Finish(label string) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, ok := t.started[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotStarted, label)
	}
	delete(t.started, label)

	d := t.now().Sub(start)
	t.elapsed[label] = d
	return d, nil
}

// Result returns the elapsed time recorded by the last Finish of label.
func (t *Timer) Result(label string) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.elapsed[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, label)
	}
	return d, nil
}

package timekeeper

import (
	"sync"
	"time"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

type recordingDisplay struct {
	mu           sync.Mutex
	begun        []string
	progress     []time.Duration
	resumedIndex []int
	paused       chan struct{}
	resumed      chan struct{}
	completed    chan struct{}
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		paused:    make(chan struct{}, 8),
		resumed:   make(chan struct{}, 8),
		completed: make(chan struct{}, 8),
	}
}

func (display *recordingDisplay) Begin(interval Interval) {
	display.mu.Lock()
	display.begun = append(display.begun, interval.Label())
	display.mu.Unlock()
}

func (display *recordingDisplay) Progress(_ Interval, elapsed time.Duration) {
	display.mu.Lock()
	display.progress = append(display.progress, elapsed)
	display.mu.Unlock()
}

func (display *recordingDisplay) Paused(Interval, time.Duration) {
	display.paused <- struct{}{}
}

func (display *recordingDisplay) Resumed(Interval) {
	display.mu.Lock()
	display.resumedIndex = append(display.resumedIndex, len(display.progress))
	display.mu.Unlock()
	display.resumed <- struct{}{}
}

func (display *recordingDisplay) Completed(Interval) {
	display.completed <- struct{}{}
}

func (display *recordingDisplay) progressCount() int {
	display.mu.Lock()
	defer display.mu.Unlock()
	return len(display.progress)
}

func (display *recordingDisplay) progressAt(index int) time.Duration {
	display.mu.Lock()
	defer display.mu.Unlock()
	return display.progress[index]
}

func (display *recordingDisplay) snapshot() []time.Duration {
	display.mu.Lock()
	defer display.mu.Unlock()
	return append([]time.Duration(nil), display.progress...)
}

package timekeeper

import "time"

// Display renders interval progress and control prompts.
type Display interface {
	Begin(interval Interval)
	Progress(interval Interval, elapsed time.Duration)
	Paused(interval Interval, elapsed time.Duration)
	Resumed(interval Interval)
	Completed(interval Interval)
}

// Bell alerts the user that an interval finished. Failures are reported but never gate the timer.
type Bell interface {
	Ring() error
}

// BellFunc adapts a plain function to Bell.
type BellFunc func() error

// Ring calls fn.
func (fn BellFunc) Ring() error {
	return fn()
}

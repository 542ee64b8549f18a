package timekeeper

import "time"

// Clock provides the current time. Readings from the system clock carry a
// monotonic component, so elapsed arithmetic ignores wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

package timekeeper

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// State represents the phase of a running interval.
type State string

const (
	StateRunning     State = "running"
	StatePaused      State = "paused"
	StateAwaitingAck State = "awaiting_ack"
	StateDone        State = "done"
)

// Interval describes one timed phase handed to the runner.
type Interval struct {
	Kind    model.IntervalKind
	Session int
	Minutes int
	Length  time.Duration
}

// NewInterval builds an interval of the given kind from the configuration.
func NewInterval(config model.Config, kind model.IntervalKind, session int) Interval {
	return Interval{
		Kind:    kind,
		Session: session,
		Minutes: config.Minutes(kind),
		Length:  config.Length(kind),
	}
}

// Label returns the text shown in front of the progress line.
func (interval Interval) Label() string {
	switch interval.Kind {
	case model.KindShortBreak:
		return fmt.Sprintf("Short break (%d)", interval.Session)
	case model.KindLongBreak:
		return "Long break"
	default:
		return fmt.Sprintf("Work time (%d)", interval.Session)
	}
}

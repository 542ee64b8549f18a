package timekeeper

import (
	"time"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/handoff"
)

// DefaultRefreshInterval is the cadence of display refreshes and pause checks.
const DefaultRefreshInterval = 200 * time.Millisecond

// Options contains runtime options for Runner.
type Options struct {
	RefreshInterval time.Duration
	Clock           Clock
}

// Runner drives a single interval to completion. Pause requests and
// acknowledgments both arrive as tokens on the signal channel; the runner's
// current state decides what a token means.
type Runner struct {
	signals *handoff.Channel
	display Display
	bell    Bell
	options Options
	logger  zerolog.Logger
}

// intervalState lives for the duration of one Run call.
type intervalState struct {
	state       State
	start       time.Time
	pauseOffset time.Duration
}

func (state *intervalState) elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(state.start) - state.pauseOffset
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// NewRunner creates a Runner reading control tokens from signals.
func NewRunner(signals *handoff.Channel, display Display, bell Bell, logger zerolog.Logger, options Options) *Runner {
	if options.RefreshInterval <= 0 {
		options.RefreshInterval = DefaultRefreshInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	if bell == nil {
		bell = BellFunc(func() error { return nil })
	}

	return &Runner{
		signals: signals,
		display: display,
		bell:    bell,
		options: options,
		logger:  logger.With().Str("component", "runner").Logger(),
	}
}

// Run blocks until the interval has elapsed and the user acknowledged it.
func (runner *Runner) Run(interval Interval) {
	state := &intervalState{
		state: StateRunning,
		start: runner.options.Clock.Now(),
	}
	runner.logger.Debug().
		Str("label", interval.Label()).
		Dur("length", interval.Length).
		Msg("interval started")

	runner.display.Begin(interval)

	ticker := time.NewTicker(runner.options.RefreshInterval)
	defer ticker.Stop()

	for {
		elapsed := state.elapsed(runner.options.Clock.Now())
		if elapsed >= interval.Length {
			break
		}

		runner.display.Progress(interval, elapsed)
		if runner.signals.Len() > 0 {
			runner.pause(interval, state, elapsed)
			continue
		}
		<-ticker.C
	}

	runner.complete(interval, state)
}

func (runner *Runner) pause(interval Interval, state *intervalState, elapsed time.Duration) {
	runner.transition(state, StatePaused)
	pausedAt := runner.options.Clock.Now()

	runner.signals.Clear()
	runner.display.Paused(interval, elapsed)

	runner.signals.Read()
	runner.signals.Clear()

	pausedFor := runner.options.Clock.Now().Sub(pausedAt)
	if pausedFor > 0 {
		state.pauseOffset += pausedFor
	}
	runner.logger.Debug().
		Dur("paused_for", pausedFor).
		Dur("pause_offset", state.pauseOffset).
		Msg("interval resumed")

	runner.display.Resumed(interval)
	runner.transition(state, StateRunning)
}

func (runner *Runner) complete(interval Interval, state *intervalState) {
	runner.transition(state, StateAwaitingAck)

	if err := runner.bell.Ring(); err != nil {
		runner.logger.Warn().Err(err).Msg("bell failed")
	}
	runner.display.Completed(interval)

	runner.signals.Read()
	runner.signals.Clear()

	runner.transition(state, StateDone)
	runner.logger.Debug().Str("label", interval.Label()).Msg("interval finished")
}

func (runner *Runner) transition(state *intervalState, next State) {
	runner.logger.Debug().
		Str("from", string(state.state)).
		Str("to", string(next)).
		Msg("state change")
	state.state = next
}

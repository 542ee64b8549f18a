package timekeeper

import (
	"context"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/model"
)

// IntervalRunner runs one interval to completion.
type IntervalRunner interface {
	Run(interval Interval)
}

// Sequencer cycles through work sessions, short breaks between them, and a
// long break at the end of every cycle.
type Sequencer struct {
	config  model.Config
	runner  IntervalRunner
	logger  zerolog.Logger
	session int
}

// NewSequencer creates a Sequencer for a validated configuration.
func NewSequencer(config model.Config, runner IntervalRunner, logger zerolog.Logger) *Sequencer {
	return &Sequencer{
		config: config,
		runner: runner,
		logger: logger.With().Str("component", "sequencer").Logger(),
	}
}

// Run never returns under normal operation. Cancelling ctx stops the loop
// before the next interval starts; an interval already running is not interrupted.
func (sequencer *Sequencer) Run(ctx context.Context) error {
	last := sequencer.config.SessionsPerCycle - 1
	for cycle := 0; ; cycle++ {
		sequencer.logger.Debug().Int("cycle", cycle).Msg("cycle started")

		for sequencer.session = 0; sequencer.session <= last; sequencer.session++ {
			if err := sequencer.run(ctx, model.KindWork); err != nil {
				return err
			}
			if sequencer.session != last {
				if err := sequencer.run(ctx, model.KindShortBreak); err != nil {
					return err
				}
			}
		}

		if err := sequencer.run(ctx, model.KindLongBreak); err != nil {
			return err
		}
		sequencer.session = 0
	}
}

func (sequencer *Sequencer) run(ctx context.Context, kind model.IntervalKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	session := sequencer.session
	if kind == model.KindLongBreak {
		session = sequencer.config.SessionsPerCycle - 1
	}
	sequencer.runner.Run(NewInterval(sequencer.config, kind, session))
	return nil
}

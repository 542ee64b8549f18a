package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration marks every configuration failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Configuration keys as they appear in the config file.
const (
	KeyWorkMinutes       = "work_time_min"
	KeyShortBreakMinutes = "short_break_time_min"
	KeyLongBreakMinutes  = "long_break_time_min"
	KeySessionsPerCycle  = "num_work_sessions"
)

// MaxBreakMinutes is the exclusive upper bound for both break lengths.
const MaxBreakMinutes = 100

// ConfigError names the configuration field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	if err.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, err.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, err.Field, err.Reason)
}

// Is reports whether target is ErrInvalidConfiguration.
func (err *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// IntervalKind identifies the phase an interval belongs to.
type IntervalKind string

const (
	KindWork       IntervalKind = "work"
	KindShortBreak IntervalKind = "short_break"
	KindLongBreak  IntervalKind = "long_break"
)

// IsBreak reports whether the kind is one of the break kinds.
func (kind IntervalKind) IsBreak() bool {
	return kind == KindShortBreak || kind == KindLongBreak
}

// Config is the immutable timer configuration loaded once at startup.
type Config struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	SessionsPerCycle  int
}

// DefaultConfig returns the classic 25/5/25 schedule with four sessions per cycle.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  25,
		SessionsPerCycle:  4,
	}
}

// Validate checks positivity and the break bounds, naming the first field that fails.
func (config Config) Validate() error {
	checks := []struct {
		field string
		value int
		bound int
	}{
		{KeyWorkMinutes, config.WorkMinutes, 0},
		{KeyShortBreakMinutes, config.ShortBreakMinutes, MaxBreakMinutes},
		{KeyLongBreakMinutes, config.LongBreakMinutes, MaxBreakMinutes},
		{KeySessionsPerCycle, config.SessionsPerCycle, 0},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return &ConfigError{Field: check.field, Reason: fmt.Sprintf("must be greater than 0, got %d", check.value)}
		}
		if check.bound > 0 && check.value >= check.bound {
			return &ConfigError{Field: check.field, Reason: fmt.Sprintf("must be less than %d, got %d", check.bound, check.value)}
		}
	}
	return nil
}

// Minutes returns the configured length in minutes for an interval kind.
func (config Config) Minutes(kind IntervalKind) int {
	switch kind {
	case KindShortBreak:
		return config.ShortBreakMinutes
	case KindLongBreak:
		return config.LongBreakMinutes
	default:
		return config.WorkMinutes
	}
}

// Length returns the configured duration for an interval kind.
func (config Config) Length(kind IntervalKind) time.Duration {
	return time.Duration(config.Minutes(kind)) * time.Minute
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/core/handoff"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/lifecycle"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/console"
	"pomodoro/internal/ui/keyboard"
)

// signalCapacity bounds how many unread keystrokes may queue up.
const signalCapacity = 4

func runTimer(cmd *cobra.Command, args []string) error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	settings, err := storage.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(os.Stderr, options.GetString("log-level"), settings.LogLevel, options.GetString("log-format"))
	logger.Info().
		Str("version", version).
		Str("config", configPath).
		Int("work_min", settings.Timer.WorkMinutes).
		Int("short_break_min", settings.Timer.ShortBreakMinutes).
		Int("long_break_min", settings.Timer.LongBreakMinutes).
		Int("sessions", settings.Timer.SessionsPerCycle).
		Msg("starting pomodoro")

	signals, err := handoff.New(signalCapacity)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer guard.Release()

	life := lifecycle.New(os.Stdout, logger)
	life.OnShutdown(guard.Release)
	life.Listen()
	defer life.Stop()

	restore, raw, err := keyboard.EnableRawMode(os.Stdin)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to line input")
	}
	life.OnShutdown(restore)
	defer restore()

	screen := console.New(os.Stdout, console.Options{
		Color:   console.ShouldUseColor(os.Stdout),
		RawMode: raw,
	})
	screen.Clear()

	reader := keyboard.NewReader(os.Stdin, signals, life.Shutdown, raw)
	go func() {
		if err := reader.Run(); err != nil {
			logger.Warn().Err(err).Msg("keyboard reader stopped")
			return
		}
		logger.Debug().Msg("end of input")
	}()

	bell := platform.NewBell(settings.BellSound, os.Stdout, logger)
	runner := timekeeper.NewRunner(signals, screen, bell, logger, timekeeper.Options{})
	if err := timekeeper.NewSequencer(settings.Timer, runner, logger).Run(cmd.Context()); err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
)

// NewBell picks the alert used at the end of every interval. The choice is
// made once: a sound player when soundPath is set and a player is installed,
// a native beep where the platform has one, otherwise the terminal bell.
func NewBell(soundPath string, out io.Writer, logger zerolog.Logger) timekeeper.Bell {
	logger = logger.With().Str("component", "bell").Logger()
	if soundPath != "" {
		if _, err := os.Stat(soundPath); err != nil {
			logger.Warn().Err(err).Str("sound", soundPath).Msg("bell sound unavailable, falling back")
		} else if bell, ok := newPlayerBell(soundPath, logger); ok {
			return bell
		}
	}
	return newNativeBell(out, logger)
}

type terminalBell struct {
	out io.Writer
}

func (bell terminalBell) Ring() error {
	_, err := io.WriteString(bell.out, "\a")
	return err
}

// player is an external command able to play an audio file.
type player struct {
	name string
	args []string
}

type playerBell struct {
	path   string
	args   []string
	logger zerolog.Logger
}

func lookupPlayer(soundPath string, candidates []player, logger zerolog.Logger) (timekeeper.Bell, bool) {
	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate.name)
		if err != nil {
			continue
		}
		args := append(append([]string(nil), candidate.args...), soundPath)
		logger.Debug().Str("player", path).Str("sound", soundPath).Msg("using sound player")
		return &playerBell{path: path, args: args, logger: logger}, true
	}
	logger.Warn().Str("sound", soundPath).Msg("no sound player found, falling back")
	return nil, false
}

// Ring starts the player and returns without waiting for playback to end.
func (bell *playerBell) Ring() error {
	cmd := exec.Command(bell.path, bell.args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", bell.path, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			bell.logger.Warn().Err(err).Str("player", bell.path).Msg("sound player exited")
		}
	}()
	return nil
}

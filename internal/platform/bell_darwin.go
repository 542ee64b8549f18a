package platform

import (
	"io"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
)

func newPlayerBell(soundPath string, logger zerolog.Logger) (timekeeper.Bell, bool) {
	return lookupPlayer(soundPath, []player{{name: "afplay"}}, logger)
}

func newNativeBell(out io.Writer, _ zerolog.Logger) timekeeper.Bell {
	return terminalBell{out: out}
}

//go:build !linux && !darwin && !windows

package platform

import (
	"io"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
)

func newPlayerBell(string, zerolog.Logger) (timekeeper.Bell, bool) {
	return nil, false
}

func newNativeBell(out io.Writer, _ zerolog.Logger) timekeeper.Bell {
	return terminalBell{out: out}
}

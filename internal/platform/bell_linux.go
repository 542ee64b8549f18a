package platform

import (
	"io"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
)

var linuxPlayers = []player{
	{name: "paplay"},
	{name: "pw-play"},
	{name: "aplay", args: []string{"-q"}},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

func newPlayerBell(soundPath string, logger zerolog.Logger) (timekeeper.Bell, bool) {
	return lookupPlayer(soundPath, linuxPlayers, logger)
}

func newNativeBell(out io.Writer, _ zerolog.Logger) timekeeper.Bell {
	return terminalBell{out: out}
}

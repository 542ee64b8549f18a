package platform

import (
	"fmt"
	"io"
	"syscall"

	"github.com/rs/zerolog"

	"pomodoro/internal/core/timekeeper"
)

const (
	beepFrequency = 523 // Hz
	beepDuration  = 700 // ms
)

var procBeep = syscall.NewLazyDLL("kernel32.dll").NewProc("Beep")

type beepBell struct{}

func (beepBell) Ring() error {
	result, _, err := procBeep.Call(uintptr(beepFrequency), uintptr(beepDuration))
	if result == 0 {
		return fmt.Errorf("kernel32 beep: %w", err)
	}
	return nil
}

func newPlayerBell(string, zerolog.Logger) (timekeeper.Bell, bool) {
	return nil, false
}

func newNativeBell(io.Writer, zerolog.Logger) timekeeper.Bell {
	return beepBell{}
}

// Package keyboard forwards keystrokes into the signal channel.
package keyboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"pomodoro/internal/core/handoff"
)

// ctrlC is the byte a raw-mode terminal delivers for Ctrl+C instead of raising SIGINT.
const ctrlC = 0x03

// Reader copies keystrokes from in to the signal channel until input ends.
type Reader struct {
	in          *bufio.Reader
	signals     *handoff.Channel
	onInterrupt func()
	raw         bool
}

// NewReader creates a Reader. In raw mode every rune is a token and Ctrl+C
// calls onInterrupt; otherwise every input line is one token.
func NewReader(in io.Reader, signals *handoff.Channel, onInterrupt func(), raw bool) *Reader {
	if onInterrupt == nil {
		onInterrupt = func() {}
	}
	return &Reader{
		in:          bufio.NewReader(in),
		signals:     signals,
		onInterrupt: onInterrupt,
		raw:         raw,
	}
}

// Run blocks reading input. It returns nil at end of input.
func (reader *Reader) Run() error {
	if reader.raw {
		return reader.runRaw()
	}
	return reader.runLines()
}

func (reader *Reader) runRaw() error {
	for {
		char, _, err := reader.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read keystroke: %w", err)
		}
		if char == ctrlC {
			reader.onInterrupt()
			return nil
		}
		reader.signals.Write(handoff.Token(char))
	}
}

func (reader *Reader) runLines() error {
	for {
		line, err := reader.in.ReadString('\n')
		if line != "" {
			reader.signals.Write(lineToken(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
	}
}

func lineToken(line string) handoff.Token {
	for _, char := range line {
		return handoff.Token(char)
	}
	return handoff.Token('\n')
}

// EnableRawMode switches file to raw mode when it is a terminal. The returned
// restore function is always non-nil and safe to call repeatedly.
func EnableRawMode(file *os.File) (restore func(), raw bool, err error) {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, fmt.Errorf("enable raw mode: %w", err)
	}
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		_ = term.Restore(fd, oldState)
	}, true, nil
}

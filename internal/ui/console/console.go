// Package console renders the timer on a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

const (
	clearLine   = "\r\x1b[K"
	clearScreen = "\x1b[H\x1b[2J"
)

// Options controls console rendering.
type Options struct {
	Color bool
	// RawMode is set when the terminal is in raw mode and "\n" no longer returns the carriage.
	RawMode bool
}

// Console implements timekeeper.Display.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	newline string
	labels  map[model.IntervalKind]*color.Color
	notice  *color.Color
	prompt  *color.Color
}

var _ timekeeper.Display = (*Console)(nil)

// New creates a Console writing to out.
func New(out io.Writer, options Options) *Console {
	console := &Console{
		out:     out,
		newline: "\n",
		labels: map[model.IntervalKind]*color.Color{
			model.KindWork:       color.New(color.FgRed, color.Bold),
			model.KindShortBreak: color.New(color.FgGreen, color.Bold),
			model.KindLongBreak:  color.New(color.FgCyan, color.Bold),
		},
		notice: color.New(color.FgYellow),
		prompt: color.New(color.FgMagenta, color.Bold),
	}
	if options.RawMode {
		console.newline = "\r\n"
	}
	for _, style := range console.styles() {
		if options.Color {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return console
}

// ShouldUseColor reports whether ANSI colors should be used on file.
// NO_COLOR disables color, CLICOLOR_FORCE=1 forces it.
func ShouldUseColor(file *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	return term.IsTerminal(int(file.Fd()))
}

func (console *Console) styles() []*color.Color {
	styles := []*color.Color{console.notice, console.prompt}
	for _, style := range console.labels {
		styles = append(styles, style)
	}
	return styles
}

// Clear wipes the screen and homes the cursor.
func (console *Console) Clear() {
	console.write(clearScreen)
}

// Begin clears the screen before a new interval.
func (console *Console) Begin(timekeeper.Interval) {
	console.Clear()
}

// Progress redraws the single progress line.
func (console *Console) Progress(interval timekeeper.Interval, elapsed time.Duration) {
	console.write(clearLine + console.progressLine(interval, elapsed))
}

// Paused replaces the progress line with a pause notice.
func (console *Console) Paused(interval timekeeper.Interval, elapsed time.Duration) {
	console.write(clearLine + console.progressLine(interval, elapsed) + " | " +
		console.notice.Sprint("Paused, press any key to resume"))
}

// Resumed clears the pause notice; the next Progress call redraws the line.
func (console *Console) Resumed(timekeeper.Interval) {
	console.write(clearLine)
}

// Completed prints the prompt that waits for acknowledgment.
func (console *Console) Completed(interval timekeeper.Interval) {
	message := "Work session finished. Press any key to start your break."
	if interval.Kind.IsBreak() {
		message = "Break is over. Press any key to get back to work."
	}
	console.write(clearLine + console.progressLine(interval, interval.Length) + console.newline +
		console.prompt.Sprint(message))
}

func (console *Console) progressLine(interval timekeeper.Interval, elapsed time.Duration) string {
	label := interval.Label()
	if style, ok := console.labels[interval.Kind]; ok {
		label = style.Sprint(label)
	}
	return fmt.Sprintf("%s | Time Total: %d:00 | Time Elapsed: %s", label, interval.Minutes, formatElapsed(elapsed))
}

func (console *Console) write(text string) {
	console.mu.Lock()
	defer console.mu.Unlock()
	_, _ = io.WriteString(console.out, text)
}

func formatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := int(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

func workInterval() timekeeper.Interval {
	return timekeeper.Interval{Kind: model.KindWork, Session: 2, Minutes: 25, Length: 25 * time.Minute}
}

func TestProgress_Format(t *testing.T) {
	var out bytes.Buffer
	console := New(&out, Options{})

	console.Progress(workInterval(), 3*time.Minute+7*time.Second+900*time.Millisecond)
	assert.Equal(t, "\r\x1b[KWork time (2) | Time Total: 25:00 | Time Elapsed: 03:07", out.String())
}

func TestProgress_LongWorkPastHundredMinutes(t *testing.T) {
	var out bytes.Buffer
	console := New(&out, Options{})
	interval := timekeeper.Interval{Kind: model.KindWork, Minutes: 120, Length: 120 * time.Minute}

	console.Progress(interval, 101*time.Minute+5*time.Second)
	assert.True(t, strings.HasSuffix(out.String(), "Time Total: 120:00 | Time Elapsed: 101:05"))
}

func TestCompleted_PromptDependsOnKind(t *testing.T) {
	var out bytes.Buffer
	console := New(&out, Options{RawMode: true})

	console.Completed(workInterval())
	assert.Contains(t, out.String(), "Time Elapsed: 25:00\r\n")
	assert.Contains(t, out.String(), "start your break")

	out.Reset()
	console.Completed(timekeeper.Interval{Kind: model.KindLongBreak, Minutes: 15, Length: 15 * time.Minute})
	assert.Contains(t, out.String(), "Long break")
	assert.Contains(t, out.String(), "back to work")
}

func TestPausedAndResumed(t *testing.T) {
	var out bytes.Buffer
	console := New(&out, Options{})

	console.Paused(workInterval(), 90*time.Second)
	assert.Contains(t, out.String(), "Time Elapsed: 01:30 | Paused")

	out.Reset()
	console.Resumed(workInterval())
	assert.Equal(t, clearLine, out.String())
}

func TestColorOption(t *testing.T) {
	var plain, colored bytes.Buffer
	New(&plain, Options{Color: false}).Progress(workInterval(), 0)
	New(&colored, Options{Color: true}).Progress(workInterval(), 0)

	assert.NotContains(t, plain.String(), "\x1b[31")
	assert.Contains(t, colored.String(), "\x1b[31;1mWork time (2)")
	assert.Greater(t, colored.Len(), plain.Len())
}

func TestBegin_ClearsScreen(t *testing.T) {
	var out bytes.Buffer
	New(&out, Options{}).Begin(workInterval())
	assert.Equal(t, clearScreen, out.String())
}

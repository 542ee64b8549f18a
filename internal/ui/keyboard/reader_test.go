package keyboard

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/handoff"
)

func newChannel(t *testing.T, capacity int) *handoff.Channel {
	t.Helper()
	channel, err := handoff.New(capacity)
	require.NoError(t, err)
	return channel
}

func drain(channel *handoff.Channel) []handoff.Token {
	var tokens []handoff.Token
	for channel.Len() > 0 {
		tokens = append(tokens, channel.Read())
	}
	return tokens
}

func TestReader_RawForwardsEveryKeystroke(t *testing.T) {
	channel := newChannel(t, 8)
	reader := NewReader(strings.NewReader("p é"), channel, nil, true)

	require.NoError(t, reader.Run())
	assert.Equal(t, []handoff.Token{'p', ' ', 'é'}, drain(channel))
}

func TestReader_RawCtrlCInterrupts(t *testing.T) {
	channel := newChannel(t, 8)
	interrupted := 0
	reader := NewReader(strings.NewReader("a\x03b"), channel, func() { interrupted++ }, true)

	require.NoError(t, reader.Run())
	assert.Equal(t, 1, interrupted)
	assert.Equal(t, []handoff.Token{'a'}, drain(channel))
}

func TestReader_LineModeOneTokenPerLine(t *testing.T) {
	channel := newChannel(t, 8)
	reader := NewReader(strings.NewReader("pause\n\nx"), channel, nil, false)

	require.NoError(t, reader.Run())
	assert.Equal(t, []handoff.Token{'p', '\n', 'x'}, drain(channel))
}

func TestReader_BlocksWhenChannelFullUntilRead(t *testing.T) {
	channel := newChannel(t, 1)
	reader := NewReader(strings.NewReader("abc"), channel, nil, true)

	done := make(chan error, 1)
	go func() { done <- reader.Run() }()

	var got []handoff.Token
	for i := 0; i < 3; i++ {
		got = append(got, channel.Read())
	}
	require.NoError(t, <-done)
	assert.Equal(t, []handoff.Token{'a', 'b', 'c'}, got)
}

func TestEnableRawMode_NonTerminalIsNoop(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer file.Close()

	restore, raw, err := EnableRawMode(file)
	require.NoError(t, err)
	assert.False(t, raw)
	require.NotNil(t, restore)
	restore()
}

package handoff

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		channel, err := New(capacity)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrChannelCapacity))
		assert.Nil(t, channel)
	}
}

func TestChannel_FIFO(t *testing.T) {
	channel, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, channel.Cap())

	channel.Write('a')
	channel.Write('b')
	assert.Equal(t, Token('a'), channel.Read())
	channel.Write('c')
	channel.Write('d')
	assert.Equal(t, 3, channel.Len())
	assert.Equal(t, Token('b'), channel.Read())
	assert.Equal(t, Token('c'), channel.Read())
	assert.Equal(t, Token('d'), channel.Read())
	assert.Equal(t, 0, channel.Len())
}

func TestChannel_ConcurrentWriterNeverExceedsCapacity(t *testing.T) {
	const total = 200
	channel, err := New(2)
	require.NoError(t, err)

	var maxSeen atomic.Int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			channel.Write(Token(i))
			if n := int64(channel.Len()); n > maxSeen.Load() {
				maxSeen.Store(n)
			}
		}
	}()

	for i := 0; i < total; i++ {
		got := channel.Read()
		require.Equal(t, Token(i), got, "token %d out of order", i)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writer did not finish")
	}
	assert.LessOrEqual(t, maxSeen.Load(), int64(2))
}

func TestChannel_WriteBlocksWhenFull(t *testing.T) {
	channel, err := New(1)
	require.NoError(t, err)
	channel.Write('x')

	written := make(chan struct{})
	go func() {
		channel.Write('y')
		close(written)
	}()

	select {
	case <-written:
		t.Fatal("write should block while the channel is full")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Equal(t, Token('x'), channel.Read())
	select {
	case <-written:
	case <-time.After(time.Second):
		t.Fatal("write did not resume after read")
	}
	assert.Equal(t, Token('y'), channel.Read())
}

func TestChannel_ReadBlocksUntilWrite(t *testing.T) {
	channel, err := New(1)
	require.NoError(t, err)

	got := make(chan Token, 1)
	go func() {
		got <- channel.Read()
	}()

	select {
	case <-got:
		t.Fatal("read should block on an empty channel")
	case <-time.After(50 * time.Millisecond):
	}

	channel.Write('z')
	select {
	case token := <-got:
		assert.Equal(t, Token('z'), token)
	case <-time.After(time.Second):
		t.Fatal("read did not wake after write")
	}
}

func TestChannel_ClearUnblocksWriters(t *testing.T) {
	channel, err := New(1)
	require.NoError(t, err)
	channel.Write('a')

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		channel.Write('b')
	}()

	time.Sleep(20 * time.Millisecond)
	channel.Clear()

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("clear did not unblock the writer")
	}
	assert.Equal(t, 1, channel.Len())
	assert.Equal(t, Token('b'), channel.Read())
}

func TestChannel_ClearIsIdempotent(t *testing.T) {
	channel, err := New(2)
	require.NoError(t, err)

	channel.Clear()
	channel.Clear()
	assert.Equal(t, 0, channel.Len())

	got := make(chan Token, 1)
	go func() {
		got <- channel.Read()
	}()
	channel.Clear()

	select {
	case <-got:
		t.Fatal("clear on an empty channel must not release a reader")
	case <-time.After(50 * time.Millisecond):
	}
	channel.Write('k')
	assert.Equal(t, Token('k'), <-got)
}

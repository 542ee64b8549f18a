// Package handoff provides the bounded signal queue shared by the keyboard
// reader and the interval runner.
package handoff

import (
	"errors"
	"fmt"
	"sync"
)

// ErrChannelCapacity is returned when a channel is constructed with a non-positive capacity.
var ErrChannelCapacity = errors.New("channel capacity must be greater than 0")

// Token is an opaque control signal. Its value carries no meaning.
type Token rune

// Channel is a fixed-capacity FIFO of tokens. Writers block while it is full
// and readers block while it is empty.
type Channel struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	items    []Token
	capacity int
}

// New creates a channel holding at most capacity tokens.
func New(capacity int) (*Channel, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrChannelCapacity, capacity)
	}
	channel := &Channel{
		items:    make([]Token, 0, capacity),
		capacity: capacity,
	}
	channel.notEmpty = sync.NewCond(&channel.mu)
	channel.notFull = sync.NewCond(&channel.mu)
	return channel, nil
}

// Write appends a token, waiting for room if the channel is full.
func (channel *Channel) Write(token Token) {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	for len(channel.items) >= channel.capacity {
		channel.notFull.Wait()
	}
	channel.items = append(channel.items, token)
	channel.notEmpty.Signal()
}

// Read removes and returns the oldest token, waiting until one is available.
func (channel *Channel) Read() Token {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	for len(channel.items) == 0 {
		channel.notEmpty.Wait()
	}
	token := channel.items[0]
	copy(channel.items, channel.items[1:])
	channel.items = channel.items[:len(channel.items)-1]
	channel.notFull.Signal()
	return token
}

// Len returns the number of pending tokens without blocking on availability.
func (channel *Channel) Len() int {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	return len(channel.items)
}

// Cap returns the fixed capacity.
func (channel *Channel) Cap() int {
	return channel.capacity
}

// Clear drops every pending token and wakes all waiters.
func (channel *Channel) Clear() {
	channel.mu.Lock()
	defer channel.mu.Unlock()
	channel.items = channel.items[:0]
	channel.notFull.Broadcast()
	channel.notEmpty.Broadcast()
}

// Package lifecycle turns an interrupt into an immediate, clean exit.
package lifecycle

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// Lifecycle owns process shutdown. Shutdown never waits on the timer or the
// keyboard reader; it runs the registered cleanups and exits with status 0.
type Lifecycle struct {
	mu       sync.Mutex
	once     sync.Once
	out      io.Writer
	logger   zerolog.Logger
	cleanups []func()
	signals  chan os.Signal
	exit     func(code int)
}

// New creates a Lifecycle that writes its final newline to out.
func New(out io.Writer, logger zerolog.Logger) *Lifecycle {
	return &Lifecycle{
		out:     out,
		logger:  logger.With().Str("component", "lifecycle").Logger(),
		signals: make(chan os.Signal, 1),
		exit:    os.Exit,
	}
}

// OnShutdown registers fn to run before exit. Cleanups run in reverse order of registration.
func (lifecycle *Lifecycle) OnShutdown(fn func()) {
	lifecycle.mu.Lock()
	defer lifecycle.mu.Unlock()
	lifecycle.cleanups = append(lifecycle.cleanups, fn)
}

// Listen starts watching for SIGINT and SIGTERM.
func (lifecycle *Lifecycle) Listen() {
	signal.Notify(lifecycle.signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig, ok := <-lifecycle.signals
		if !ok {
			return
		}
		lifecycle.logger.Info().Str("signal", sig.String()).Msg("received signal")
		lifecycle.Shutdown()
	}()
}

// Stop detaches the signal handler without exiting.
func (lifecycle *Lifecycle) Stop() {
	signal.Stop(lifecycle.signals)
}

// Shutdown runs cleanups, emits a newline and exits with status 0. Only the first call has any effect.
func (lifecycle *Lifecycle) Shutdown() {
	lifecycle.once.Do(func() {
		lifecycle.mu.Lock()
		cleanups := append([]func(){}, lifecycle.cleanups...)
		lifecycle.mu.Unlock()

		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		_, _ = io.WriteString(lifecycle.out, "\n")
		lifecycle.logger.Info().Msg("shutting down")
		lifecycle.exit(0)
	})
}

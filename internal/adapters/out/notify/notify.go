// Package notify implements notification sinks.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/vackup/internal/boundaries/out"
)

var (
	_ out.Notifier = (*Terminal)(nil)
	_ out.Notifier = (*Log)(nil)
	_ out.Notifier = Multi(nil)
)

// Formatter decorates a message before it is written.
type Formatter func(msg string) string

// Terminal writes one line per notification.
type Terminal struct {
	w       io.Writer
	success Formatter
	failure Formatter
	mu      sync.Mutex
}

// NewTerminal creates a terminal notifier. Nil formatters fall back to a
// plain prefix.
func NewTerminal(w io.Writer, success, failure Formatter) *Terminal {
	if success == nil {
		success = func(msg string) string { return "ok: " + msg }
	}
	if failure == nil {
		failure = func(msg string) string { return "error: " + msg }
	}
	return &Terminal{w: w, success: success, failure: failure}
}

// Error writes an error notification.
func (t *Terminal) Error(msg string) {
	t.write(t.failure(msg))
}

// Success writes a success notification.
func (t *Terminal) Success(msg string) {
	t.write(t.success(msg))
}

func (t *Terminal) write(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, line)
}

// Log records notifications in the structured log.
type Log struct {
	log zerolog.Logger
}

// NewLog creates a log notifier.
func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log.With().Str("component", "notify").Logger()}
}

// Error logs msg at error level.
func (l *Log) Error(msg string) {
	l.log.Error().Msg(msg)
}

// Success logs msg at info level.
func (l *Log) Success(msg string) {
	l.log.Info().Msg(msg)
}

// Multi forwards every notification to each sink in order.
type Multi []out.Notifier

// Error forwards to every sink.
func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

// Success forwards to every sink.
func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

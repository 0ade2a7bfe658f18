// Package notify delivers user-visible success/failure notifications.
// The core hands outcomes to a Sink and stays agnostic of how they are
// presented (terminal line, toast, log aggregator).
package notify

import (
	"context"

	"github.com/danakir/planvite/internal/logging"
)

// Sink accepts notification events emitted by the session manager and the
// entity stores.
type Sink interface {
	Success(msg string)
	Error(msg string)
}

// LogSink renders notifications through the structured logger.
type LogSink struct {
	log logging.Logger
}

func NewLogSink(log logging.Logger) *LogSink {
	return &LogSink{log: log.With("component", "notify")}
}

func (s *LogSink) Success(msg string) {
	s.log.Info(context.Background(), msg, "kind", "success")
}

func (s *LogSink) Error(msg string) {
	s.log.Error(context.Background(), msg, "kind", "error")
}

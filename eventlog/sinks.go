package eventlog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/geometrix/core"
)

var (
	_ core.EventSink = (*FileSink)(nil)
	_ core.EventSink = (*SlogSink)(nil)
	_ core.EventSink = (*Recorder)(nil)
)

// SlogSink forwards each event to a slog.Logger as the record message.
type SlogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogSink logs events at Info. A nil logger means slog.Default().
func NewSlogSink(l *slog.Logger) *SlogSink {
	return NewSlogSinkLevel(l, slog.LevelInfo)
}

// NewSlogSinkLevel logs events at the given level.
func NewSlogSinkLevel(l *slog.Logger, level slog.Level) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{logger: l.With("component", "geometrix"), level: level}
}

// Log implements core.EventSink.
func (s *SlogSink) Log(message string) {
	s.logger.Log(context.Background(), s.level, message)
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

// Log implements core.EventSink.
func (r *Recorder) Log(message string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, message)
	r.mu.Unlock()
}

// Messages returns a copy of the recorded events in arrival order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.msgs...)
}

// Last returns the most recent event, or "" if none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.msgs = nil
	r.mu.Unlock()
}

// SPDX-License-Identifier: MIT
//
// File: file.go
// Role: FileSink, the append-only text event log.
//
// Line format:
//
//	Log[ - <UTC time>][ - <user>]: <message>. \n   (Log)
//	<message>. \n                                 (LogRaw)
//
// Write failures never reach the Workfield: the first one is kept and
// reported by Err, later events are still attempted.

package eventlog

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the file name used by the original Geometrix logger.
const DefaultPath = "Log"

// TimeLayout renders timestamps like Python's str(datetime).
const TimeLayout = "2006-01-02 15:04:05.000000"

// FileOption configures a FileSink.
type FileOption func(*FileSink)

// WithTimestamp prefixes each Log line with the UTC time.
func WithTimestamp() FileOption {
	return func(s *FileSink) { s.logTime = true }
}

// WithUser prefixes each Log line with the login name of the current user.
func WithUser() FileOption {
	return func(s *FileSink) { s.logUser = true }
}

// WithUserName prefixes each Log line with a fixed user name.
func WithUserName(name string) FileOption {
	return func(s *FileSink) {
		s.logUser = true
		s.user = name
	}
}

// WithClock replaces time.Now. Panics on nil.
func WithClock(now func() time.Time) FileOption {
	if now == nil {
		panic("eventlog: WithClock(nil)")
	}
	return func(s *FileSink) { s.now = now }
}

// FileSink writes Workfield events as text lines.
type FileSink struct {
	mu sync.Mutex

	w      io.Writer
	closer io.Closer

	logTime bool
	logUser bool
	user    string
	now     func() time.Time

	err error
}

// NewFileSink writes to w. The caller keeps ownership of w; Close is a no-op.
func NewFileSink(w io.Writer, opts ...FileOption) *FileSink {
	s := &FileSink{w: w, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logUser && s.user == "" {
		s.user = currentUser()
	}

	return s
}

// OpenFile opens path for appending, creating it if needed.
// An empty path means DefaultPath.
func OpenFile(path string, opts ...FileOption) (*FileSink, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}
	s := NewFileSink(f, opts...)
	s.closer = f

	return s, nil
}

// Log writes message with the configured prefix.
func (s *FileSink) Log(message string) {
	s.write(s.prefix() + ": " + message + ". \n")
}

// LogRaw writes message without any prefix.
func (s *FileSink) LogRaw(message string) {
	s.write(message + ". \n")
}

// Err returns the first write error, if any.
func (s *FileSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close closes the underlying file when the sink opened it.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil

	return err
}

func (s *FileSink) prefix() string {
	var b strings.Builder
	b.WriteString("Log")
	if s.logTime {
		b.WriteString(" - ")
		b.WriteString(s.now().UTC().Format(TimeLayout))
	}
	if s.logUser {
		b.WriteString(" - ")
		b.WriteString(s.user)
	}

	return b.String()
}

func (s *FileSink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, line); err != nil && s.err == nil {
		s.err = err
	}
}

// currentUser resolves the login name, falling back to $USER.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

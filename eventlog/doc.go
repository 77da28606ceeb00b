// Package eventlog provides core.EventSink implementations.
//
//   - FileSink appends one line per event to a file or io.Writer, optionally
//     prefixed with a UTC timestamp and the current user:
//
//     Log - 2024-05-01 12:00:00.000000 - alice: Created point with ID: 0.
//
//   - SlogSink forwards events to a *slog.Logger.
//
//   - Recorder keeps events in memory; tests use it to assert on messages.
//
// All sinks are safe for concurrent use.
package eventlog

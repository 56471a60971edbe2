// Package logging provides the Logger interface used by lunaris components,
// with a zerolog backend for the CLI and TUI and a standard library adapter
// for callers that already own a *log.Logger.
package logging

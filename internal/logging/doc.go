// Package logging assembles the structured slog loggers used across the
// tool. It owns the console and JSON handlers, centralizes level parsing,
// and provides a no-op logger for tests and wiring code that cannot fail.
package logging

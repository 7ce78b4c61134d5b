// Package logging assembles structured slog loggers and formatting helpers used
// across bilingo packages.
//
// It owns the console/JSON handlers, centralizes level and output plumbing
// (including size-based rotation of the log file), and exposes context-aware
// helpers so ingestion code can tag log lines with the session id and the
// subtitle file being processed. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging

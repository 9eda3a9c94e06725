// Package logging constructs the process-wide slog logger. Two formats are
// supported: a compact console handler for interactive use and structured
// JSON for log aggregation. Console output colours the level label when the
// destination is a terminal.
package logging

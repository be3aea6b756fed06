// Package logging assembles the structured slog loggers used across
// flowline.
//
// It owns the console/JSON handler selection, level parsing, and attr
// helpers, and provides a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits data with the same shape.
package logging

// Package logging assembles the structured slog loggers used across the
// converter.
//
// It owns the console and JSON handlers and centralizes level and output
// plumbing so every component emits log lines with the same shape. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging

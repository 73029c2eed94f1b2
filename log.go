package zframe

import "log/slog"

// Package-wide logger; the only core-path log site is the unknown-size
// heuristic diagnostic.
var log = slog.Default()

// SetLogger configures the package logger
func SetLogger(l *slog.Logger) {
	log = l
}

// Package logger provides structured logging built on the standard library's log/slog.
//
// The package exposes the JSON logger factory used by the service binary and a no-op
// logger for tests and optional dependencies:
//
//	log := logger.New().With("app", "ouramail")
//	log.Info("report sent", "recipient", recipient)
package logger

package logger

import (
	"io"
	"log/slog"
	"math"
	"os"
)

// New creates a JSON-formatted logger writing to stdout.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	// slog.DiscardHandler requires Go 1.24; this is the pre-1.24 equivalent:
	// output is discarded and Enabled reports false for every level.
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(math.MaxInt),
	}))
}

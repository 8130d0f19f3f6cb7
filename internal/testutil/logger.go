package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a JSON logger writing to io.Discard, for services under test
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

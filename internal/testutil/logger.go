// Package testutil provides a slog logger for tests.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns a DEBUG-level logger routed through t.Log,
// so log lines appear only on failure or under -v. Timestamps are
// stripped; they just add noise to test output.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	h := slog.NewTextHandler(tlogWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h)
}

type tlogWriter struct {
	tb testing.TB
}

func (w tlogWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(string(p))
	return len(p), nil
}

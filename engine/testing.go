package engine

import (
	"log/slog"
	"testing"
	"time"
)

// NewTestWorld creates a World for tests with a deterministic clock
// and a logger routed through t.Log
func NewTestWorld(t testing.TB) *World {
	t.Helper()

	w := NewWorld()
	start := time.Unix(0, 0)
	frame := 0
	w.clock = func() time.Time {
		frame++
		return start.Add(time.Duration(frame) * 16 * time.Millisecond)
	}

	AddResource(w.Resources, &LogResource{
		Logger: slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	return w
}

type testWriter struct {
	t testing.TB
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}

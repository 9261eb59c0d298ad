package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger returns a zerolog logger that forwards events to t.Log, so
// engine debug output lands in the test log.
func TestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(testWriter{t: t})
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

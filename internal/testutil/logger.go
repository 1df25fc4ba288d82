package testutil

import (
	"log"
	"testing"

	"github.com/thruflo/guess/internal/logging"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// NewLogger returns a logger at level that writes through t.Log.
func NewLogger(t *testing.T, level logging.Level) *logging.Logger {
	t.Helper()
	logger := logging.New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(testWriter{t: t}, "", 0))
	return logger
}

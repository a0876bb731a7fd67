package zaplogger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	logger, err = New("")
	if err != nil {
		t.Fatalf("New(\"\") returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("default level should not enable debug")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

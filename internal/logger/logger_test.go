package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		logger, err := New(json, true)
		if err != nil {
			t.Fatalf("expected logger, got error: %v", err)
		}
		logger.Debug("debug message")
	}
}

func TestWithResume(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithResume(logger, "abc-123")
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["resume_id"] != "abc-123" {
		t.Fatalf("expected resume_id to be abc-123, got %q", ctx["resume_id"])
	}

	// Empty IDs leave the logger unchanged.
	unchanged := WithResume(logger, "   ")
	if unchanged != logger {
		t.Fatalf("expected logger to be returned unchanged for empty id")
	}

	// Nil loggers fall back to a no-op logger and must not panic.
	fallback := WithResume(nil, "abc-123")
	fallback.Info("another log")
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		input string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer string", 7, "this is..."},
		{"  padded  ", 10, "padded"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateForLog(tt.input, tt.limit); got != tt.want {
			t.Errorf("TruncateForLog(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
		}
	}
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil || logger.Logger == nil {
		t.Fatal("NewLogger() returned an unusable logger")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnvVar, tt.envValue)
			if level := getLogLevelFromEnv(); level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		if id1 == id2 {
			t.Error("GenerateCorrelationID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateCorrelationID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context with correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "jump-1")
		if got := GetCorrelationID(ctx); got != "jump-1" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "jump-1")
		}
	})

	t.Run("context without correlation ID", func(t *testing.T) {
		if id := GetCorrelationID(context.Background()); id != "" {
			t.Errorf("GetCorrelationID() = %q, want empty string", id)
		}
	})

	t.Run("auto-generate correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		if id := GetCorrelationID(ctx); len(id) != 16 {
			t.Errorf("Auto-generated correlation ID has wrong length: %d", len(id))
		}
	})
}

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"password field", slog.String("password", "secret123"), "[REDACTED]"},
		{"token field", slog.String("auth_token", "bearer-token"), "[REDACTED]"},
		{"case insensitive", slog.String("API_SECRET", "x"), "[REDACTED]"},
		{"system field", slog.String("system", "tau-ceti"), "tau-ceti"},
		{"upgrade field", slog.String("upgrade", "hull"), "hull"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeAttributes(nil, tt.attr)
			if result.Value.String() != tt.expected {
				t.Errorf("sanitizeAttributes() = %q, want %q", result.Value.String(), tt.expected)
			}
		})
	}
}

func TestLogger_WritesJSONWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelDebug)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Error(ctx, "jump failed", errors.New("not connected"), "destination", "sirius")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}

	want := map[string]string{
		"msg":            "jump failed",
		"level":          "ERROR",
		"error":          "not connected",
		"destination":    "sirius",
		"correlation_id": "abc123",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %q", k, entry[k], v)
		}
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelWarn)

	logger.Info(context.Background(), "hidden")
	logger.Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("info/debug should be filtered at WARN, got %s", buf.String())
	}

	logger.Warn(context.Background(), "shown")
	if buf.Len() == 0 {
		t.Error("warn should be written at WARN")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error(context.Background(), "nothing", errors.New("x"))
}

func TestWrapError(t *testing.T) {
	base := errors.New("device busy")

	wrapped := WrapError(base, "failed to open %s", "speaker")
	if wrapped.Error() != "failed to open speaker: device busy" {
		t.Errorf("WrapError() = %q", wrapped)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil) should be nil")
	}
}

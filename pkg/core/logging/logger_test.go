package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	fxlog "github.com/msto63/fixstr/foundation/core/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel fxlog.Level
	}{
		{"debug", "debug", fxlog.LevelDebug},
		{"warning alias", "warning", fxlog.LevelWarn},
		{"unknown level", "chatty", fxlog.LevelInfo},
		{"empty level", "", fxlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Name: "test", Level: tt.level, Output: &bytes.Buffer{}})
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLoggerCorrelationID(t *testing.T) {
	generated := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})
	if _, err := uuid.Parse(generated.CorrelationID()); err != nil {
		t.Errorf("generated correlation ID %q is not a UUID: %v", generated.CorrelationID(), err)
	}

	fixed := NewLogger(LoggerConfig{Output: &bytes.Buffer{}, CorrelationID: "run-1"})
	if fixed.CorrelationID() != "run-1" {
		t.Errorf("CorrelationID() = %q, want run-1", fixed.CorrelationID())
	}

	if NewCorrelationID() == NewCorrelationID() {
		t.Error("NewCorrelationID() returned the same value twice")
	}
}

func TestNewLoggerOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "cli",
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
		CorrelationID:     "run-2",
	})

	logger.Info("ready", fxlog.Int("n", 3))
	logger.Debug("hidden")

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if strings.Count(out, "\n") != 1 {
			t.Errorf("%s output should hold one line, got %q", name, out)
		}
		for _, want := range []string{`message="ready"`, "n=3", "logger=cli", "correlation_id=run-2"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s output %q missing %q", name, out, want)
			}
		}
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("fixstr")
	if cfg.Name != "fixstr" || cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}

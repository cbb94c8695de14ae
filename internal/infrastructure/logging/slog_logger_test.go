package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewSlogLoggerWithWriter(t *testing.T) {
	t.Run("escreve JSON com atributos", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "info")

		logger.With("component", "test").Info("student created", "student_id", 7)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("saída não é JSON: %v", err)
		}
		if entry["msg"] != "student created" {
			t.Errorf("esperava msg 'student created', obteve '%v'", entry["msg"])
		}
		if entry["component"] != "test" {
			t.Errorf("esperava component 'test', obteve '%v'", entry["component"])
		}
	})

	t.Run("respeita o nível configurado", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "warn")

		logger.Info("ignored")
		logger.Debug("ignored")

		if buf.Len() != 0 {
			t.Errorf("esperava saída vazia, obteve '%s'", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"desconhecido", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, got)
			}
		})
	}
}

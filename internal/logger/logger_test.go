package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logLevel string
	}{
		{name: "debug level", level: "debug", logLevel: "debug"},
		{name: "info level", level: "info", logLevel: "info"},
		{name: "warn level maps to warning", level: "warn", logLevel: "warning"},
		{name: "error level", level: "error", logLevel: "error"},
		{name: "invalid level defaults to info", level: "invalid", logLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug("test message")
			case "warning":
				log.Warn("test message")
			case "error":
				log.Error("test message")
			default:
				log.Info("test message")
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to parse log output: %v", err)
			}

			if entry["level"] != tt.logLevel {
				t.Errorf("Expected level %q, got %q", tt.logLevel, entry["level"])
			}
			if entry["message"] != "test message" {
				t.Errorf("Expected message field, got %v", entry["message"])
			}
			if _, ok := entry["timestamp"]; !ok {
				t.Error("Expected timestamp field in log output")
			}
		})
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("chatbot").
		WithRequestID("req-123").
		WithField("intent", "course_info").
		Info("processed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}

	if entry["module"] != "chatbot" {
		t.Errorf("Expected module chatbot, got %v", entry["module"])
	}
	if entry["request_id"] != "req-123" {
		t.Errorf("Expected request_id req-123, got %v", entry["request_id"])
	}
	if entry["intent"] != "course_info" {
		t.Errorf("Expected intent course_info, got %v", entry["intent"])
	}
}

func TestWithFieldsMap(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithFields(map[string]any{
		"node_count": 12,
		"edge_count": 9,
	}).Info("graph summary")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}

	if entry["node_count"] != float64(12) {
		t.Errorf("Expected node_count 12, got %v", entry["node_count"])
	}
	if entry["edge_count"] != float64(9) {
		t.Errorf("Expected edge_count 9, got %v", entry["edge_count"])
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for debug at info level, got %q", buf.String())
	}
}

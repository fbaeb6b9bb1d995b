package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	log := slog.New(handler)

	log.Info("fan out", "key", "value")

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "fan out") {
			t.Errorf("Expected %s handler to receive record, got %q", name, buf.String())
		}
	}
}

func TestMultiHandlerSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	handler := NewMultiHandler(nil, slog.NewJSONHandler(&buf, nil), nil)

	if !handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("Expected handler to be enabled at info level")
	}

	slog.New(handler).Info("only one")
	if !strings.Contains(buf.String(), "only one") {
		t.Errorf("Expected surviving handler to receive record, got %q", buf.String())
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(handler)

	log.Debug("debug only")

	if !strings.Contains(debugBuf.String(), "debug only") {
		t.Error("Expected debug handler to receive debug record")
	}
	if warnBuf.Len() != 0 {
		t.Errorf("Expected warn handler to skip debug record, got %q", warnBuf.String())
	}
}

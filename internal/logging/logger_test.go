package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	WithComponent(logger, "splitter").Info("batch started", Int("inputs", 3), String("quality", "lossless"))

	line := buf.String()
	if !strings.Contains(line, "INFO  [splitter] batch started") {
		t.Errorf("line %q missing level, component, and message", line)
	}
	if !strings.Contains(line, "inputs=3") || !strings.Contains(line, "quality=lossless") {
		t.Errorf("line %q missing attributes", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("probe", String("input", "/videos/session one.mp4"))
	if !strings.Contains(buf.String(), `input="/videos/session one.mp4"`) {
		t.Errorf("line %q should quote values containing spaces", buf.String())
	}
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record leaked past warn gate: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("batch finished", Int("succeeded", 2))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "batch finished" {
		t.Errorf("msg = %v, want batch finished", record["msg"])
	}
	if record["succeeded"] != float64(2) {
		t.Errorf("succeeded = %v, want 2", record["succeeded"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("New() should reject unknown formats")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing should happen", Error(nil))
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should report disabled")
	}
}

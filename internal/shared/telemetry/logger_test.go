package telemetry

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) []string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	raw := strings.TrimSpace(buf.String())
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

func TestInfoEmitsJSONLine(t *testing.T) {
	lines := captureStdout(t, func() {
		Info("chat.completed", map[string]any{"session_id": "abc", "duration_ms": 42})
	})
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", lines[0], err)
	}
	if entry["level"] != "info" {
		t.Fatalf("expected info level, got %v", entry["level"])
	}
	if entry["msg"] != "chat.completed" {
		t.Fatalf("expected msg preserved, got %v", entry["msg"])
	}
	if entry["session_id"] != "abc" {
		t.Fatalf("expected field passthrough, got %v", entry["session_id"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field, got %v", entry)
	}
}

func TestWarnAndErrorLevels(t *testing.T) {
	lines := captureStdout(t, func() {
		Warn("db.fallback", nil)
		Error("llm.failed", map[string]any{"err": "boom"})
	})
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}

	var warn, errLine map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &warn); err != nil {
		t.Fatalf("bad warn line: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &errLine); err != nil {
		t.Fatalf("bad error line: %v", err)
	}
	if warn["level"] != "warn" {
		t.Fatalf("expected warn level, got %v", warn["level"])
	}
	if errLine["level"] != "error" || errLine["err"] != "boom" {
		t.Fatalf("expected error level with err field, got %v", errLine)
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	Debug("debug message")
	Info("info message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at INFO level")
	}
	if !strings.Contains(out, "info message") {
		t.Error("info message should be logged at INFO level")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "text")

	SetLevel("DEBUG")
	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message should be logged after SetLevel(DEBUG)")
	}

	// Invalid levels are ignored
	SetLevel("VERBOSE")
	buf.Reset()
	Debug("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Error("invalid SetLevel should not change the level")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "INFO", "json")

	Info("structured", "item_id", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", entry["msg"], "structured")
	}
	if entry["item_id"] != float64(42) {
		t.Errorf("item_id = %v, want 42", entry["item_id"])
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": Debug, " INFO ": Info, "warning": Warn, "error": Error, "": Info, "loud": Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestJSONOutput_WithFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "cat-collector", Output: &buf}).
		With(map[string]any{"module": "cats"})

	log.Debug("hidden", nil)
	log.Error("upload failed", map[string]any{"error": errors.New("boom"), "key": "abc.png", "": "skipped"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug filtered), got %d: %s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec["msg"] != "upload failed" || rec["level"] != "ERROR" || rec["app"] != "cat-collector" ||
		rec["module"] != "cats" || rec["error"] != "boom" || rec["key"] != "abc.png" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec[""]; ok {
		t.Fatalf("blank keys must be dropped")
	}
}

func TestTextFormatIsDefault(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Output: &buf}).Info("hello", map[string]any{"n": 1})

	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "n=1") {
		t.Fatalf("unexpected text output: %s", buf.String())
	}
}

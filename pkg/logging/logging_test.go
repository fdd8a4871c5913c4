package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("warn", &buf)

	logger.Info("not emitted")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("emitted", "key", "value")
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if record["msg"] != "emitted" || record["key"] != "value" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("verbose", &buf)

	logger.Debug("filtered")
	if buf.Len() != 0 {
		t.Fatal("debug should be filtered at default info level")
	}
	logger.Info("kept")
	if buf.Len() == 0 {
		t.Fatal("info should be emitted at default level")
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf).With("component", "intake")

	logger.Info("hello")
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if record["component"] != "intake" {
		t.Fatalf("expected component attribute, got %v", record)
	}
}

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestValidLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"trace", false},
		{"WARN", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidLevel(tt.level); got != tt.want {
			t.Errorf("ValidLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("error") != zerolog.ErrorLevel {
		t.Error("parseLevel(error) should be ErrorLevel")
	}
	if parseLevel("bogus") != zerolog.InfoLevel {
		t.Error("unknown levels should fall back to info")
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "info")
	l.Debug().Msg("hidden")
	l.Info().Str("wallet", "main").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["wallet"] != "main" || entry["message"] != "shown" {
		t.Errorf("entry = %v", entry)
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mnemonic.log")
	if err := Init("info", true, path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(func() { Init("warn", false, "") })

	Wallet.Info().Msg("wallet created")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"wallet"`) {
		t.Errorf("log file = %q, want wallet component", data)
	}
}

func TestInit_BadFile(t *testing.T) {
	if err := Init("info", false, filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("Init() with an unwritable path should fail")
	}
}

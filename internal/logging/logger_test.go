package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "bogus", want: slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.input); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "subcast.log")
	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("pipeline started", "episode", "weekly-roundup")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "pipeline started") || !strings.Contains(out, "episode=weekly-roundup") {
		t.Fatalf("unexpected log line: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("colour codes written to file output")
	}
}

func TestConsoleHandlerFormatting(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))

	logger.With("component", "attribution").Info("resolved speaker", "role", "host", "score", 0.91)

	line := buf.String()
	if !strings.Contains(line, "INFO attribution: resolved speaker") {
		t.Errorf("missing header: %q", line)
	}
	if !strings.Contains(line, "role=host") || !strings.Contains(line, "score=0.91") {
		t.Errorf("missing attrs: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline terminated: %q", line)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))

	logger.WithGroup("timing").Info("synthesized", "cps", 12)

	if line := buf.String(); !strings.Contains(line, "timing.cps=12") {
		t.Errorf("group prefix missing: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))

	logger.Info("wrote file", "path", "/tmp/my episode/captions.srt")

	if line := buf.String(); !strings.Contains(line, `path="/tmp/my episode/captions.srt"`) {
		t.Errorf("value not quoted: %q", line)
	}
}

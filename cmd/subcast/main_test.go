package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "subcast.toml")
	content := fmt.Sprintf("[paths]\noutput_dir = %q\nlog_dir = \"\"\n", filepath.Join(dir, "out"))
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "build") || !strings.Contains(out, "colorize") {
		t.Errorf("help missing subcommands:\n%s", out)
	}
}

func TestBuildCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	timelinePath := filepath.Join(t.TempDir(), "pilot.json")
	timelineJSON := `[
  {"speaker": "Narrator", "text": "Previously on the show."},
  {"speaker": "Héctor", "text": "Welcome back everyone."},
  {"speaker": "Aura", "text": "Great to be here."}
]`
	if err := os.WriteFile(timelinePath, []byte(timelineJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--config", cfgPath, "build", timelinePath, "--title", "Pilot")
	if err != nil {
		t.Fatalf("build: %v\n%s", err, out)
	}
	if !strings.Contains(out, `Built 3 cues for "Pilot"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "captions.srt") || !strings.Contains(out, "captions.ass") {
		t.Errorf("artifact paths missing:\n%s", out)
	}
}

func TestBuildCommandMissingInput(t *testing.T) {
	cfgPath := writeTestConfig(t)
	_, err := runCommand(t, "--config", cfgPath, "build", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing timeline")
	}
}

func TestEpisodesCommandEmpty(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := runCommand(t, "--config", cfgPath, "episodes")
	if err != nil {
		t.Fatalf("episodes: %v", err)
	}
	if !strings.Contains(out, "No episodes recorded") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Title", "Cues"},
		[][]string{{"Pilot", "3"}, {"Episode 2", "14"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "Pilot") || !strings.Contains(out, "14") {
		t.Errorf("table missing rows:\n%s", out)
	}
}

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subcast/internal/config"
	"subcast/internal/episode"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Paths.LogDir = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return &cfg
}

const timelineJSON = `{
  "segments": [
    {"speaker": "Narrator", "text": "Previously on the show."},
    {"speaker": "Héctor", "text": "Welcome back everyone, this is episode forty two."},
    {"speaker": "Aura", "text": "Thanks for having me again, Héctor!"}
  ]
}`

func TestBuild(t *testing.T) {
	cfg := testConfig(t)
	timelinePath := filepath.Join(t.TempDir(), "episode-42.json")
	if err := os.WriteFile(timelinePath, []byte(timelineJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := New(cfg, nil).Build(context.Background(), BuildRequest{TimelinePath: timelinePath})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Slug != "episode-42" {
		t.Errorf("slug = %q", res.Slug)
	}
	if res.CueCount != 3 {
		t.Errorf("cue count = %d", res.CueCount)
	}
	if res.DurationSeconds <= 0 {
		t.Errorf("duration = %v", res.DurationSeconds)
	}

	srt, err := os.ReadFile(res.SRTPath)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	if !strings.Contains(string(srt), "Welcome back everyone") {
		t.Errorf("srt missing caption text:\n%s", srt)
	}
	ass, err := os.ReadFile(res.ASSPath)
	if err != nil {
		t.Fatalf("read ass: %v", err)
	}
	if !strings.Contains(string(ass), "[Script Info]") {
		t.Errorf("ass missing header:\n%s", ass)
	}

	store, err := episode.Open(context.Background(), filepath.Join(cfg.Paths.OutputDir, LedgerFileName))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer store.Close()
	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(records) != 1 || records[0].Slug != "episode-42" || records[0].Source != "timeline" {
		t.Fatalf("unexpected ledger rows %+v", records)
	}
}

func TestBuildSRTOnly(t *testing.T) {
	cfg := testConfig(t)
	timelinePath := filepath.Join(t.TempDir(), "teaser.json")
	if err := os.WriteFile(timelinePath, []byte(timelineJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := New(cfg, nil).Build(context.Background(), BuildRequest{
		TimelinePath: timelinePath,
		Title:        "Season Teaser",
		SRTOnly:      true,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Slug != "season-teaser" {
		t.Errorf("slug = %q", res.Slug)
	}
	if res.ASSPath != "" {
		t.Errorf("ass path set in srt-only mode: %q", res.ASSPath)
	}
	if _, err := os.Stat(filepath.Join(res.OutputDir, assFileName)); !os.IsNotExist(err) {
		t.Errorf("styled file written in srt-only mode")
	}
}

type stubProbe struct {
	payload []byte
	err     error
}

func (s stubProbe) Run(context.Context, string, ...string) ([]byte, error) {
	return s.payload, s.err
}

func TestBuildWithAudioProbe(t *testing.T) {
	cfg := testConfig(t)
	timelinePath := filepath.Join(t.TempDir(), "probed.json")
	if err := os.WriteFile(timelinePath, []byte(timelineJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	probe := stubProbe{payload: []byte(`{"format": {"duration": "900.5"}}`)}
	res, err := New(cfg, nil).WithProbeRunner(probe).Build(context.Background(), BuildRequest{
		TimelinePath: timelinePath,
		AudioPath:    "episode.mp3",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.DurationSeconds != 900.5 {
		t.Errorf("duration = %v, want probed 900.5", res.DurationSeconds)
	}
}

func TestBuildSurvivesProbeFailure(t *testing.T) {
	cfg := testConfig(t)
	timelinePath := filepath.Join(t.TempDir(), "unprobed.json")
	if err := os.WriteFile(timelinePath, []byte(timelineJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	probe := stubProbe{err: os.ErrNotExist}
	res, err := New(cfg, nil).WithProbeRunner(probe).Build(context.Background(), BuildRequest{
		TimelinePath: timelinePath,
		AudioPath:    "episode.mp3",
	})
	if err != nil {
		t.Fatalf("Build should degrade softly on probe failure: %v", err)
	}
	if res.DurationSeconds <= 0 {
		t.Errorf("duration should fall back to the timeline end, got %v", res.DurationSeconds)
	}
}

func TestBuildMissingTimeline(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg, nil).Build(context.Background(), BuildRequest{
		TimelinePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	if err == nil {
		t.Fatal("expected error for missing timeline")
	}
}

const colorizeSRT = `1
00:00:01,000 --> 00:00:04,000
Previously on the show.

2
00:00:06,000 --> 00:00:09,500
Welcome back everyone, this is episode forty two of the show.

3
00:00:10,000 --> 00:00:13,000
Thanks for having me again, it is great to be back here.
`

const colorizeTranscript = `Narrator: Previously on the show.
Héctor: Welcome back everyone, this is episode forty two of the show.
Aura: Thanks for having me again, it is great to be back here.
`

func TestColorize(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	srtPath := filepath.Join(dir, "raw-captions.srt")
	transcriptPath := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(srtPath, []byte(colorizeSRT), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(transcriptPath, []byte(colorizeTranscript), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := New(cfg, nil).Colorize(context.Background(), ColorizeRequest{
		SRTPath:        srtPath,
		TranscriptPath: transcriptPath,
		Title:          "Episode 42",
	})
	if err != nil {
		t.Fatalf("Colorize: %v", err)
	}
	if res.CueCount != 3 {
		t.Errorf("cue count = %d", res.CueCount)
	}

	ass, err := os.ReadFile(res.ASSPath)
	if err != nil {
		t.Fatalf("read ass: %v", err)
	}
	out := string(ass)
	if !strings.Contains(out, ",Host,,0,0,0,,Welcome back everyone") {
		t.Errorf("host caption not styled:\n%s", out)
	}
	if !strings.Contains(out, ",Guest,,0,0,0,,Thanks for having me again") {
		t.Errorf("guest caption not styled:\n%s", out)
	}
	if !strings.Contains(out, ",Base,,0,0,0,,Previously on the show.") {
		t.Errorf("cold open not routed to narrator style:\n%s", out)
	}
}

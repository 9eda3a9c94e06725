package subtitles

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"subcast/internal/services"
	"subcast/internal/timeline"
)

func TestBuild(t *testing.T) {
	utterances := []timeline.Utterance{
		{Role: timeline.RoleHost, Text: "Welcome back to the show.", Start: 0, End: 2.1},
		{Role: timeline.RoleGuest, Text: "Thanks for having me again.", Start: 2.1, End: 4.3},
		{Role: timeline.RoleHost, Text: "   ", Start: 4.3, End: 5.0},
		{Role: timeline.RoleGuest, Text: "Untimed remark", Start: -1, End: -1},
	}
	doc, err := Build(utterances, DefaultLayout())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if doc.PlayResX != 1920 || doc.PlayResY != 1080 {
		t.Errorf("play resolution = %dx%d", doc.PlayResX, doc.PlayResY)
	}
	if len(doc.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(doc.Cues))
	}
	if doc.Cues[0].Role != timeline.RoleHost || doc.Cues[0].Text() != "Welcome back to the show." {
		t.Errorf("first cue = %+v", doc.Cues[0])
	}
	if doc.Cues[1].Role != timeline.RoleGuest {
		t.Errorf("second cue role = %q", doc.Cues[1].Role)
	}
}

func TestBuildSplitsLongUtterance(t *testing.T) {
	sentence := "The quick brown fox jumps over the lazy dog tonight."
	text := strings.TrimSpace(strings.Repeat(sentence+" ", 8))
	utterances := []timeline.Utterance{
		{Role: timeline.RoleHost, Text: text, Start: 0, End: 30},
	}

	doc, err := Build(utterances, DefaultLayout())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Cues) < 3 {
		t.Fatalf("expected the long utterance to split into several cues, got %d", len(doc.Cues))
	}
	for i, cue := range doc.Cues {
		if cue.Role != timeline.RoleHost {
			t.Errorf("cue %d role = %q", i, cue.Role)
		}
		if i > 0 && cue.Start != doc.Cues[i-1].End {
			t.Errorf("cue %d start %v != previous end %v", i, cue.Start, doc.Cues[i-1].End)
		}
		for _, line := range cue.Lines {
			if len([]rune(line)) > 48+48/5 {
				t.Errorf("cue %d line too wide: %q", i, line)
			}
		}
	}
	if last := doc.Cues[len(doc.Cues)-1]; last.End != 30 {
		t.Errorf("last cue end = %v, want 30", last.End)
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil, DefaultLayout())
	if !errors.Is(err, services.ErrEmptyInput) {
		t.Fatalf("error = %v, want %v", err, services.ErrEmptyInput)
	}

	_, err = Build([]timeline.Utterance{{Role: timeline.RoleHost, Text: "hi", Start: -1, End: -1}}, DefaultLayout())
	if !errors.Is(err, services.ErrEmptyInput) {
		t.Fatalf("untimed-only error = %v, want %v", err, services.ErrEmptyInput)
	}
}

func TestBuildDeterministic(t *testing.T) {
	utterances := []timeline.Utterance{
		{Role: timeline.RoleNarrator, Text: "Previously on the show.", Start: 0, End: 1.9},
		{Role: timeline.RoleHost, Text: "Let's pick up where we left off, shall we?", Start: 1.9, End: 5.4},
	}
	first, err := Build(utterances, DefaultLayout())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(utterances, DefaultLayout())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different documents")
	}
	if RenderSRT(first) != RenderSRT(second) {
		t.Fatal("identical documents rendered differently")
	}
	if RenderASS(first, DefaultStyleSpec()) != RenderASS(second, DefaultStyleSpec()) {
		t.Fatal("identical documents rendered differently in styled output")
	}
}

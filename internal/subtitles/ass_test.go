package subtitles

import (
	"strings"
	"testing"

	"subcast/internal/timeline"
)

func TestFormatASSTimestamp(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0:00:00.00"},
		{input: 1.5, want: "0:00:01.50"},
		{input: 3661.46, want: "1:01:01.46"},
		{input: 59.999, want: "0:01:00.00"},
		{input: 3599.999, want: "1:00:00.00"},
		{input: -3, want: "0:00:00.00"},
	}
	for _, tc := range tests {
		if got := formatASSTimestamp(tc.input); got != tc.want {
			t.Errorf("formatASSTimestamp(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestHexToASSColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "#2EA8E6", want: "&H00E6A82E"},
		{input: "#FFD23F", want: "&H003FD2FF"},
		{input: "#fff", want: "&H00FFFFFF"},
		{input: "#08F", want: "&H00FF8800"},
		{input: "nonsense", want: assColorWhite},
		{input: "", want: assColorWhite},
	}
	for _, tc := range tests {
		if got := hexToASSColor(tc.input); got != tc.want {
			t.Errorf("hexToASSColor(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestStyleName(t *testing.T) {
	spec := DefaultStyleSpec()
	if got := spec.StyleName(timeline.RoleHost); got != "Host" {
		t.Errorf("host style = %q", got)
	}
	if got := spec.StyleName(timeline.RoleGuest); got != "Guest" {
		t.Errorf("guest style = %q", got)
	}
	if got := spec.StyleName(timeline.RoleNarrator); got != "Base" {
		t.Errorf("narrator style = %q", got)
	}

	spec.UseColors = false
	if got := spec.StyleName(timeline.RoleHost); got != "Base" {
		t.Errorf("colourless host style = %q", got)
	}
	if got := spec.primaryColor("Host"); got != assColorWhite {
		t.Errorf("colourless host colour = %q", got)
	}
}

func TestRenderASS(t *testing.T) {
	doc := &Document{
		PlayResX: 1920,
		PlayResY: 1080,
		Cues: []Cue{
			{Start: 1.0, End: 3.5, Role: timeline.RoleHost, Lines: []string{"Hello there."}},
			{Start: 4.0, End: 6.25, Role: timeline.RoleGuest, Lines: []string{"Second caption", "continues here"}},
		},
	}
	out := RenderASS(doc, DefaultStyleSpec())

	for _, want := range []string{
		"[Script Info]\n",
		"ScriptType: v4.00+\n",
		"PlayResX: 1920\n",
		"PlayResY: 1080\n",
		"WrapStyle: 2\n",
		"ScaledBorderAndShadow: yes\n",
		"[V4+ Styles]\n",
		"Style: Base,Arial,64,&H00FFFFFF,",
		"Style: Host,Arial,64,&H00E6A82E,",
		"Style: Guest,Arial,64,&H003FD2FF,",
		"[Events]\n",
		"Dialogue: 0,0:00:01.00,0:00:03.50,Host,,0,0,0,,Hello there.\n",
		`Dialogue: 0,0:00:04.00,0:00:06.25,Guest,,0,0,0,,Second caption\Ncontinues here` + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Count(out, "Dialogue: ") != 2 {
		t.Errorf("expected 2 dialogue events:\n%s", out)
	}
}

func TestRenderASSStripsEmoji(t *testing.T) {
	doc := &Document{
		PlayResX: 1920,
		PlayResY: 1080,
		Cues: []Cue{
			{Start: 0, End: 2, Role: timeline.RoleHost, Lines: []string{"Great show \U0001F389 today"}},
		},
	}
	out := RenderASS(doc, DefaultStyleSpec())
	if !strings.Contains(out, ",,Great show  today\n") && !strings.Contains(out, ",,Great show today\n") {
		t.Fatalf("emoji not stripped:\n%s", out)
	}
}

package subtitles

import (
	"fmt"
	"strings"

	"subcast/internal/textutil"
)

// assStyleFormat is the column layout declared for the [V4+ Styles] section.
const assStyleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, " +
	"OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, " +
	"Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

// assEventFormat is the column layout declared for the [Events] section.
const assEventFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// formatASSTimestamp renders seconds as H:MM:SS.cc with centisecond carry.
func formatASSTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60
	cs := int((seconds-float64(int(seconds)))*100 + 0.5)
	if cs == 100 {
		cs = 0
		s++
		if s == 60 {
			s = 0
			m++
			if m == 60 {
				m = 0
				h++
			}
		}
	}
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// styleLine renders one named style declaration.
func styleLine(name string, spec StyleSpec) string {
	return fmt.Sprintf(
		"Style: %s,%s,%d,%s,%s,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,%g,%g,2,%d,%d,%d,1",
		name, spec.Font, spec.FontSize,
		spec.primaryColor(name), spec.primaryColor(name),
		spec.Outline, spec.Shadow,
		spec.MarginLR, spec.MarginLR, spec.MarginV,
	)
}

// RenderASS renders the document as a styled event file: a header declaring
// per-speaker styles followed by one dialogue event per cue. Line breaks use
// the format's \N marker and decorative non-ASCII glyphs are stripped.
func RenderASS(doc *Document, spec StyleSpec) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&sb, "PlayResX: %d\n", doc.PlayResX)
	fmt.Fprintf(&sb, "PlayResY: %d\n", doc.PlayResY)
	sb.WriteString("WrapStyle: 2\n")
	sb.WriteString("ScaledBorderAndShadow: yes\n")
	sb.WriteString("\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString(assStyleFormat)
	sb.WriteString("\n")
	for _, name := range []string{"Base", "Host", "Guest"} {
		sb.WriteString(styleLine(name, spec))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("[Events]\n")
	sb.WriteString(assEventFormat)
	sb.WriteString("\n")
	for _, cue := range doc.Cues {
		lines := make([]string, 0, len(cue.Lines))
		for _, line := range cue.Lines {
			line = strings.TrimSpace(textutil.StripEmoji(line))
			if line != "" {
				lines = append(lines, line)
			}
		}
		fmt.Fprintf(&sb, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n",
			formatASSTimestamp(cue.Start),
			formatASSTimestamp(cue.End),
			spec.StyleName(cue.Role),
			strings.Join(lines, `\N`),
		)
	}
	return sb.String()
}

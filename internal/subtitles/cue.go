package subtitles

import (
	"strings"

	"subcast/internal/services"
	"subcast/internal/timeline"
)

// Cue is one displayed caption: a time span, the resolved speaker role, and
// the wrapped display lines.
type Cue struct {
	Start float64
	End   float64
	Role  timeline.Role
	Lines []string
}

// Text joins the cue's display lines with spaces.
func (c Cue) Text() string {
	return strings.Join(c.Lines, " ")
}

// Document is the serializer input: an ordered cue list plus the frame of
// reference declared in the styled format.
type Document struct {
	Cues     []Cue
	PlayResX int
	PlayResY int
}

// Layout contains the character and line budgets applied when building cues.
type Layout struct {
	MaxSegmentChars int
	MaxLineChars    int
	MaxLines        int
	MinSplitChars   int
	MinPartSeconds  float64
}

// DefaultLayout returns the repository default budgets.
func DefaultLayout() Layout {
	return Layout{
		MaxSegmentChars: 160,
		MaxLineChars:    48,
		MaxLines:        3,
		MinSplitChars:   40,
		MinPartSeconds:  0.6,
	}
}

// Build converts timed utterances into a document. Utterances with empty
// text or missing timing are dropped; over-long utterances are split into
// sub-captions before wrapping. Identical inputs always produce an identical
// document.
func Build(utterances []timeline.Utterance, layout Layout) (*Document, error) {
	doc := &Document{PlayResX: 1920, PlayResY: 1080}

	for _, u := range utterances {
		if strings.TrimSpace(u.Text) == "" {
			continue
		}
		if !u.Timed() {
			continue
		}
		for _, p := range splitSegment(u.Text, u.Start, u.End, layout) {
			doc.Cues = append(doc.Cues, Cue{
				Start: p.start,
				End:   p.end,
				Role:  u.Role,
				Lines: wrapText(p.text, layout.MaxLineChars, layout.MaxLines),
			})
		}
	}

	if len(doc.Cues) == 0 {
		return nil, services.Wrap(services.ErrEmptyInput, "subtitles", "build", "no cues to serialize", nil)
	}
	return doc, nil
}

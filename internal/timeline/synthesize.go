package timeline

import (
	"math"
	"strings"
)

// TimingOptions holds the constants driving synthetic duration estimation.
type TimingOptions struct {
	// CharsPerSecond approximates natural speech rate (~180 wpm).
	CharsPerSecond float64
	// MinDuration floors every synthesized utterance to avoid micro-captions.
	MinDuration float64
	// PauseStrong is added per sentence-ending mark (. ! ? …).
	PauseStrong float64
	// PauseSoft is added per comma, semicolon, or colon.
	PauseSoft float64
	// QuestionBoost is added once to long questions and exclamations, which
	// are read with more deliberate pacing.
	QuestionBoost float64
}

// DefaultTimingOptions returns the repository default constants.
func DefaultTimingOptions() TimingOptions {
	return TimingOptions{
		CharsPerSecond: 12.0,
		MinDuration:    1.2,
		PauseStrong:    0.35,
		PauseSoft:      0.20,
		QuestionBoost:  0.15,
	}
}

// longUtteranceChars is the length above which a question or exclamation
// receives the pacing boost.
const longUtteranceChars = 80

// Synthesize assigns start/end to every utterance lacking valid timing,
// advancing a monotonic clock so the sequence never overlaps. Utterances that
// already carry measured timing are used as-is; the clock only jumps forward
// past them. The pass mutates the slice in place and never revisits an
// earlier utterance.
func Synthesize(utterances []Utterance, opts TimingOptions) {
	if opts.CharsPerSecond <= 0 {
		opts.CharsPerSecond = 1
	}

	clock := 0.0
	for i := range utterances {
		u := &utterances[i]
		if u.Timed() {
			clock = math.Max(clock, u.End)
			continue
		}

		duration := estimateDuration(u.Text, opts)
		u.Start = roundMillis(clock)
		u.End = roundMillis(clock + duration)
		clock = u.End
	}
}

func estimateDuration(text string, opts TimingOptions) float64 {
	runes := []rune(text)
	base := float64(len(runes)) / opts.CharsPerSecond
	if base < opts.MinDuration {
		base = opts.MinDuration
	}

	strong, soft := 0, 0
	for _, r := range runes {
		switch r {
		case '.', '!', '?', '…':
			strong++
		case ',', ';', ':':
			soft++
		}
	}
	duration := base + float64(strong)*opts.PauseStrong + float64(soft)*opts.PauseSoft

	if len(runes) > longUtteranceChars &&
		(strings.ContainsRune(text, '?') || strings.ContainsRune(text, '!')) {
		duration += opts.QuestionBoost
	}
	return duration
}

func roundMillis(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}

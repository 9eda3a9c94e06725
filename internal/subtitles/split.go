package subtitles

import "strings"

// segmentPart is one sub-caption produced by splitting an utterance.
type segmentPart struct {
	text  string
	start float64
	end   float64
}

// splitBoundaryRunes mark the punctuation where an over-long utterance may be
// cut. Wider than the timing set: mid-sentence ; and : also read as breaks.
func isSplitBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', ';', ':', '…':
		return true
	}
	return false
}

// splitSegment subdivides text exceeding the segment budget into consecutive
// parts, apportioning the original duration by character share. The parts
// tile [start, end) exactly: each part starts where the previous ended and
// the last part is pinned to the original end.
func splitSegment(text string, start, end float64, layout Layout) []segmentPart {
	text = strings.TrimSpace(text)
	duration := end - start
	if duration < 0.1 {
		duration = 0.1
	}
	runes := []rune(text)
	if len(runes) <= layout.MaxSegmentChars {
		return []segmentPart{{text: text, start: start, end: end}}
	}

	parts := cutAtPunctuation(runes, layout.MinSplitChars)
	if len(parts) == 1 {
		parts = cutFixedWidth(runes, layout.MaxSegmentChars)
	}

	total := 0
	for _, p := range parts {
		total += len([]rune(p))
	}
	if total == 0 {
		total = 1
	}

	out := make([]segmentPart, 0, len(parts))
	cursor := start
	for i, p := range parts {
		share := float64(len([]rune(p))) / float64(total)
		partDuration := duration * share
		if partDuration < layout.MinPartSeconds {
			partDuration = layout.MinPartSeconds
		}
		partStart := cursor
		partEnd := partStart + partDuration
		if partEnd > end {
			partEnd = end
		}
		if i == len(parts)-1 {
			partEnd = end
		}
		out = append(out, segmentPart{text: strings.TrimSpace(p), start: partStart, end: partEnd})
		cursor = partEnd
	}
	return out
}

// cutAtPunctuation accumulates runes and cuts after a boundary mark once the
// buffer reaches the minimum part length, so fragments stay readable.
func cutAtPunctuation(runes []rune, minChars int) []string {
	var parts []string
	var buf []rune
	for _, r := range runes {
		buf = append(buf, r)
		if isSplitBoundary(r) && len(buf) >= minChars {
			parts = append(parts, strings.TrimSpace(string(buf)))
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if tail := strings.TrimSpace(string(buf)); tail != "" {
			parts = append(parts, tail)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, strings.TrimSpace(string(runes)))
	}
	return parts
}

// cutFixedWidth chunks text with no usable punctuation boundaries.
func cutFixedWidth(runes []rune, width int) []string {
	if width <= 0 {
		width = len(runes)
	}
	var parts []string
	for i := 0; i < len(runes); i += width {
		endIdx := i + width
		if endIdx > len(runes) {
			endIdx = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[i:endIdx])); chunk != "" {
			parts = append(parts, chunk)
		}
	}
	return parts
}

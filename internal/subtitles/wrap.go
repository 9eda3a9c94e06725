package subtitles

import "strings"

// wrapText packs words greedily into lines of at most maxLine characters.
// When the result exceeds maxLines the width budget grows by a fifth and the
// text is re-wrapped, trading width for line count instead of truncating.
func wrapText(text string, maxLine, maxLines int) []string {
	if maxLine <= 0 {
		return []string{strings.TrimSpace(text)}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentLen := 0
	for _, w := range words {
		wordLen := len([]rune(w))
		addLen := wordLen
		if currentLen > 0 {
			addLen++
		}
		if currentLen+addLen > maxLine && currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(w)
			currentLen = wordLen
		} else {
			if currentLen > 0 {
				current.WriteByte(' ')
			}
			current.WriteString(w)
			currentLen += addLen
		}
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}

	if maxLines > 0 && len(lines) > maxLines {
		wider := maxLine + maxLine/5
		if wider <= maxLine {
			wider = maxLine + 8
		}
		return wrapText(strings.Join(lines, " "), wider, maxLines)
	}
	return lines
}

package subtitles

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"subcast/internal/services"
	"subcast/internal/textutil"
	"subcast/internal/timeline"
)

// ParseSRT parses a plain caption stream into untimed-speaker utterances.
// Individual malformed blocks (unparsable timestamp, empty text) are dropped;
// input with no recognizable block structure at all is an input format error.
func ParseSRT(data []byte) ([]timeline.Utterance, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, services.Wrap(services.ErrEmptyInput, "loader", "parse srt", "empty stream", nil)
	}

	blocks := strings.Split(content, "\n\n")
	var utterances []timeline.Utterance
	sawBlock := false

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		sawBlock = true

		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			continue
		}
		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			continue
		}
		text := textutil.StripMeta(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}
		utterances = append(utterances, timeline.Utterance{
			Role:  timeline.RoleNarrator,
			Text:  text,
			Start: start,
			End:   end,
		})
	}

	if len(utterances) == 0 {
		if sawBlock {
			return nil, services.Wrap(services.ErrInputFormat, "loader", "parse srt", "no parsable caption blocks", nil)
		}
		return nil, services.Wrap(services.ErrEmptyInput, "loader", "parse srt", "no caption blocks", nil)
	}
	return utterances, nil
}

// ParseSRTFile reads and parses a plain caption file.
func ParseSRTFile(path string) ([]timeline.Utterance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInputFormat, "loader", "read srt", path, err)
	}
	return ParseSRT(data)
}

func parseTimingLine(line string) (float64, float64, error) {
	if !strings.Contains(line, "-->") {
		return 0, 0, fmt.Errorf("no timing separator in %q", line)
	}
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := parseSRTTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseSRTTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Accept period in place of the standard comma millisecond separator.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// formatSRTTimestamp renders seconds as HH:MM:SS,mmm.
func formatSRTTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int(math.Round(seconds * 1000))
	h := millis / 3600000
	m := (millis % 3600000) / 60000
	s := (millis % 60000) / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// RenderSRT renders the document as sequential numbered caption blocks with
// a 1-based strictly increasing index.
func RenderSRT(doc *Document) string {
	var sb strings.Builder
	for i, cue := range doc.Cues {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(formatSRTTimestamp(cue.Start))
		sb.WriteString(" --> ")
		sb.WriteString(formatSRTTimestamp(cue.End))
		sb.WriteString("\n")
		sb.WriteString(strings.Join(cue.Lines, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

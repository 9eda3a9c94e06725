package timeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"subcast/internal/services"
	"subcast/internal/textutil"
)

// segmentRecord is the JSON shape produced by the script generator: either a
// bare array of records or an object with a "segments" key. Start/End may be
// absent for the untimed pipeline.
type segmentRecord struct {
	Speaker string   `json:"speaker"`
	Text    string   `json:"text"`
	Start   *float64 `json:"start"`
	End     *float64 `json:"end"`
}

type timelineDocument struct {
	Segments []segmentRecord `json:"segments"`
}

// LoadJSON decodes timeline JSON into an ordered utterance list. Records with
// empty text are dropped; records without a valid span stay untimed and are
// picked up later by the synthesizer.
func LoadJSON(data []byte, roles RoleSet) ([]Utterance, error) {
	records, err := decodeSegments(data)
	if err != nil {
		return nil, services.Wrap(services.ErrInputFormat, "loader", "decode json", "", err)
	}

	utterances := make([]Utterance, 0, len(records))
	for _, rec := range records {
		text := textutil.StripMeta(rec.Text)
		if text == "" {
			continue
		}
		u := Utterance{
			Role: roles.Normalize(rec.Speaker),
			Text: text,
		}
		if rec.Start != nil && rec.End != nil && *rec.End > *rec.Start && *rec.Start >= 0 {
			u.Start = *rec.Start
			u.End = *rec.End
		}
		utterances = append(utterances, u)
	}
	if len(utterances) == 0 {
		return nil, services.Wrap(services.ErrEmptyInput, "loader", "decode json", "no usable segments", nil)
	}
	return utterances, nil
}

func decodeSegments(data []byte) ([]segmentRecord, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("empty document")
	}
	switch trimmed[0] {
	case '{':
		var doc timelineDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Segments, nil
	case '[':
		var records []segmentRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	default:
		return nil, fmt.Errorf("document is neither a JSON object nor an array")
	}
}

// LoadJSONFile reads and decodes a timeline JSON file.
func LoadJSONFile(path string, roles RoleSet) ([]Utterance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInputFormat, "loader", "read timeline", path, err)
	}
	return LoadJSON(data, roles)
}

// ParseTranscript reads speaker-tagged lines of the form "Name: text".
// Lines without a label (cold opens and stage directions) belong to the
// narrator. Returned utterances are untimed.
func ParseTranscript(r io.Reader, roles RoleSet) ([]Utterance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var utterances []Utterance
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		role := RoleNarrator
		text := line
		if idx := strings.Index(line, ":"); idx > 0 {
			role = roles.Normalize(line[:idx])
			text = line[idx+1:]
		}
		text = textutil.StripMeta(text)
		if text == "" {
			continue
		}
		utterances = append(utterances, Utterance{Role: role, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, services.Wrap(services.ErrInputFormat, "loader", "scan transcript", "", err)
	}
	if len(utterances) == 0 {
		return nil, services.Wrap(services.ErrEmptyInput, "loader", "scan transcript", "no speaker lines", nil)
	}
	return utterances, nil
}

// ParseTranscriptFile reads a speaker-tagged transcript from disk.
func ParseTranscriptFile(path string, roles RoleSet) ([]Utterance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrInputFormat, "loader", "open transcript", path, err)
	}
	defer file.Close()
	return ParseTranscript(file, roles)
}

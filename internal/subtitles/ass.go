package subtitles

import (
	"regexp"
	"strings"
)

const (
	assEventsHeader  = "[Events]"
	assFormatPrefix  = "Format:"
	assDialogPrefix  = "Dialogue:"
	assStartField    = "Start"
	assEndField      = "End"
	assTextField     = "Text"
	assLineBreakCode = `\N`
)

var assOverridePattern = regexp.MustCompile(`\{\\[^}]*\}`)

// ParseASS parses the [Events] section of ASS/SSA text into cues. The
// section's Format line decides where Start, End, and Text sit in each
// Dialogue line; dialogue seen before a usable Format line is ignored. Ids are
// assigned sequentially from 1 because the format has none of its own.
func ParseASS(content string) []Cue {
	cues := []Cue{}
	var fields []string
	inEvents := false
	nextID := 1

	for _, line := range lineBreakPattern.Split(content, -1) {
		if strings.TrimSpace(line) == assEventsHeader {
			inEvents = true
			continue
		}
		if !inEvents {
			continue
		}
		if strings.HasPrefix(line, assFormatPrefix) {
			fields = parseASSFormat(line)
			continue
		}
		if !strings.HasPrefix(line, assDialogPrefix) || len(fields) == 0 {
			continue
		}
		cue, ok := parseASSDialogue(line, fields)
		if !ok {
			continue
		}
		cue.ID = nextID
		cue.ValidID = true
		nextID++
		cues = append(cues, cue)
	}
	return cues
}

func parseASSFormat(line string) []string {
	parts := strings.Split(strings.TrimPrefix(line, assFormatPrefix), ",")
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strings.TrimSpace(part)
	}
	return fields
}

func parseASSDialogue(line string, fields []string) (Cue, bool) {
	startIdx := indexOf(fields, assStartField)
	endIdx := indexOf(fields, assEndField)
	textIdx := indexOf(fields, assTextField)
	if startIdx < 0 || endIdx < 0 || textIdx < 0 {
		return Cue{}, false
	}
	parts := strings.Split(strings.TrimPrefix(line, assDialogPrefix), ",")
	if len(parts) < max(startIdx, endIdx, textIdx)+1 {
		return Cue{}, false
	}
	text := cleanASSText(strings.Join(parts[textIdx:], ","))
	if text == "" {
		return Cue{}, false
	}
	return Cue{
		Start: ParseASSTimestamp(parts[startIdx]),
		End:   ParseASSTimestamp(parts[endIdx]),
		Text:  text,
	}, true
}

// cleanASSText strips {\...} override groups and turns \N into a line break.
func cleanASSText(text string) string {
	text = assOverridePattern.ReplaceAllString(strings.TrimSpace(text), "")
	text = strings.ReplaceAll(text, assLineBreakCode, "\n")
	return strings.TrimSpace(text)
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

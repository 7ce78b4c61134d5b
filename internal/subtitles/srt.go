package subtitles

import (
	"regexp"
	"strconv"
	"strings"
)

const srtTimingSeparator = " --> "

var (
	srtBlockSeparator = regexp.MustCompile(`\r?\n\r?\n`)
	lineBreakPattern  = regexp.MustCompile(`\r?\n`)
)

// ParseSRT parses SRT text into cues. Blocks with fewer than three lines or a
// timing line that does not split into exactly two timestamps are skipped.
// An id that is not numeric still yields a cue, flagged with ValidID=false.
func ParseSRT(content string) []Cue {
	content = strings.TrimSpace(content)
	if content == "" {
		return []Cue{}
	}
	blocks := srtBlockSeparator.Split(content, -1)
	cues := make([]Cue, 0, len(blocks))
	for _, block := range blocks {
		cue, ok := parseSRTBlock(block)
		if !ok {
			continue
		}
		cues = append(cues, cue)
	}
	return cues
}

func parseSRTBlock(block string) (Cue, bool) {
	lines := lineBreakPattern.Split(block, -1)
	if len(lines) < 3 {
		return Cue{}, false
	}
	timing := strings.Split(lines[1], srtTimingSeparator)
	if len(timing) != 2 {
		return Cue{}, false
	}
	id, validID := parseLeadingInt(lines[0])
	return Cue{
		ID:      id,
		ValidID: validID,
		Start:   ParseSRTTimestamp(timing[0]),
		End:     ParseSRTTimestamp(timing[1]),
		Text:    strings.Join(lines[2:], "\n"),
	}, true
}

// parseLeadingInt reads an optionally signed run of digits at the start of
// value, ignoring leading whitespace and anything after the digits.
func parseLeadingInt(value string) (int, bool) {
	value = strings.TrimLeft(value, " \t\ufeff")
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	id, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

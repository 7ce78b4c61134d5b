package subtitles

import (
	"fmt"
	"math"
)

// Bounds returns the earliest start and latest end across cues. Both are zero
// for an empty list.
func Bounds(cues []Cue) (float64, float64) {
	if len(cues) == 0 {
		return 0, 0
	}
	first := math.Inf(1)
	var last float64
	for _, cue := range cues {
		if cue.Start < first {
			first = cue.Start
		}
		if cue.End > last {
			last = cue.End
		}
	}
	return first, last
}

// Audit lists anomalies in a parsed cue list. It never rejects input: the
// parsers pass inverted timings and bad ids through, and Audit only makes
// them visible for logging. An empty slice means nothing looked off.
func Audit(cues []Cue) []string {
	if len(cues) == 0 {
		return []string{"empty_subtitle_file"}
	}
	var issues []string
	var invalidIDs, inverted, zeroTimed int
	for _, cue := range cues {
		if !cue.ValidID {
			invalidIDs++
		}
		if cue.End < cue.Start {
			inverted++
		}
		if cue.Start == 0 && cue.End == 0 {
			zeroTimed++
		}
	}
	if invalidIDs > 0 {
		issues = append(issues, fmt.Sprintf("invalid_ids: count=%d", invalidIDs))
	}
	if inverted > 0 {
		issues = append(issues, fmt.Sprintf("inverted_timing: count=%d", inverted))
	}
	if zeroTimed == len(cues) {
		issues = append(issues, "no_valid_timestamps")
	} else if zeroTimed > 0 {
		issues = append(issues, fmt.Sprintf("zero_timing: count=%d", zeroTimed))
	}
	return issues
}

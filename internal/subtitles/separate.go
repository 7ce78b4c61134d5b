package subtitles

import (
	"fmt"
	"strings"

	"bilingo/internal/textutil"
)

// Track names one of the two monolingual cue sequences.
type Track int

const (
	TrackChinese Track = iota
	TrackEnglish
)

func (t Track) String() string {
	switch t {
	case TrackChinese:
		return "chinese"
	case TrackEnglish:
		return "english"
	default:
		return "unknown"
	}
}

// ParseTrack maps "chinese"/"zh" or "english"/"en" to a Track.
func ParseTrack(value string) (Track, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "chinese", "zh":
		return TrackChinese, nil
	case "english", "en":
		return TrackEnglish, nil
	default:
		return TrackChinese, fmt.Errorf("unknown track %q", value)
	}
}

// Separate splits stacked bilingual cues into a Chinese and an English track.
// A cue with two or more lines contributes line 0 to the Chinese track and
// line 1 to the English track, keeping id and timing. A single-line cue goes
// whole to the Chinese track when it contains CJK, otherwise to English.
func Separate(cues []Cue) (chinese, english []Cue) {
	chinese = make([]Cue, 0, len(cues))
	english = make([]Cue, 0, len(cues))
	for _, cue := range cues {
		lines := cue.Lines()
		if len(lines) >= 2 {
			chinese = append(chinese, cue.withText(lines[0]))
			english = append(english, cue.withText(lines[1]))
			continue
		}
		if textutil.HasCJK(cue.Text) {
			chinese = append(chinese, cue)
		} else {
			english = append(english, cue)
		}
	}
	return chinese, english
}

// ExtractSingle projects every cue onto one track without dropping any:
// multi-line cues keep line 0 (Chinese) or line 1 (English), single-line cues
// are returned unchanged whatever script they carry.
func ExtractSingle(cues []Cue, track Track) []Cue {
	out := make([]Cue, 0, len(cues))
	for _, cue := range cues {
		lines := cue.Lines()
		if len(lines) < 2 {
			out = append(out, cue)
			continue
		}
		if track == TrackEnglish {
			out = append(out, cue.withText(lines[1]))
		} else {
			out = append(out, cue.withText(lines[0]))
		}
	}
	return out
}

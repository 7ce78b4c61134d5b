package playback

import (
	"bilingo/internal/ingest"
	"bilingo/internal/subtitles"
)

// ActiveAt returns the first cue in track whose closed interval contains t.
// Tracks are scanned linearly because merged tracks are not guaranteed to be
// sorted by start time.
func ActiveAt(track []subtitles.Cue, t float64) (subtitles.Cue, bool) {
	for _, cue := range track {
		if cue.Contains(t) {
			return cue, true
		}
	}
	return subtitles.Cue{}, false
}

// Active holds the cue showing in each track; nil means no cue.
type Active struct {
	Chinese *subtitles.Cue `json:"chinese"`
	English *subtitles.Cue `json:"english"`
}

// Lookup evaluates ActiveAt independently on both tracks of set.
func Lookup(set *ingest.TrackSet, t float64) Active {
	var active Active
	if set == nil {
		return active
	}
	if cue, ok := ActiveAt(set.Chinese, t); ok {
		active.Chinese = &cue
	}
	if cue, ok := ActiveAt(set.English, t); ok {
		active.English = &cue
	}
	return active
}

// ReplayTarget returns the cue a "replay sentence" action should seek to: the
// cue active at t, or failing that the cue that most recently ended before t.
func ReplayTarget(track []subtitles.Cue, t float64) (subtitles.Cue, bool) {
	if cue, ok := ActiveAt(track, t); ok {
		return cue, true
	}
	var (
		best  subtitles.Cue
		found bool
	)
	for _, cue := range track {
		if cue.End >= t {
			continue
		}
		if !found || cue.End > best.End {
			best, found = cue, true
		}
	}
	return best, found
}

// Skip moves t by delta and clamps the result to [0, duration]. A duration of
// zero or less is treated as unknown and only the lower bound applies.
func Skip(t, delta, duration float64) float64 {
	next := t + delta
	if duration > 0 && next > duration {
		next = duration
	}
	if next < 0 {
		next = 0
	}
	return next
}

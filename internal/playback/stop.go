package playback

import "bilingo/internal/subtitles"

// StopTransition decides whether playback should pause on this clock tick.
// prevID is the cue seen on the previous tick and curID the cue seen now;
// nil means no cue. While armed, leaving a cue (for a different cue or for a
// gap) stops playback and disarms.
func StopTransition(prevID, curID *int, armed bool) (newArmed, shouldStop bool) {
	if !armed {
		return false, false
	}
	if prevID == nil {
		return true, false
	}
	if curID != nil && *curID == *prevID {
		return true, false
	}
	return false, true
}

// CueID returns the identity used for stop tracking. Cues without a valid id
// have no identity.
func CueID(cue subtitles.Cue, ok bool) *int {
	if !ok || !cue.ValidID || cue.ID == 0 {
		return nil
	}
	id := cue.ID
	return &id
}

// Monitor tracks the last cue seen on the primary track for the
// stop-at-sentence-end behaviour.
type Monitor struct {
	Enabled bool `json:"enabled"`
	lastID  *int
}

// NewMonitor returns a monitor with no cue reference.
func NewMonitor(enabled bool) Monitor {
	return Monitor{Enabled: enabled}
}

// Rearm points the monitor at the cue active at t. Call it when playback
// resumes or after a seek so the next tick compares against the new position.
func (m Monitor) Rearm(track []subtitles.Cue, t float64) Monitor {
	m.lastID = CueID(ActiveAt(track, t))
	return m
}

// WithEnabled toggles the behaviour and rearms on the cue at t.
func (m Monitor) WithEnabled(enabled bool, track []subtitles.Cue, t float64) Monitor {
	m.Enabled = enabled
	return m.Rearm(track, t)
}

// Tick evaluates one clock tick and returns the updated monitor and whether
// playback should stop. The monitor keeps no armed flag of its own: it is
// armed exactly when Enabled and playing hold on this tick. A stop makes the
// caller pause, so the disarm StopTransition reports takes effect through
// playing being false on the next tick.
func (m Monitor) Tick(track []subtitles.Cue, t float64, playing bool) (Monitor, bool) {
	cur := CueID(ActiveAt(track, t))
	_, stop := StopTransition(m.lastID, cur, m.Enabled && playing)
	m.lastID = cur
	return m, stop
}

package subtitles

import "bilingo/internal/textutil"

// Cue is one timed subtitle entry. Start and End are seconds.
type Cue struct {
	ID int `json:"id"`
	// ValidID is false when the source carried an id that did not parse as
	// an integer. ID is then zero and carries no ordering information.
	ValidID bool    `json:"valid_id"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Lines returns the cue text split into its stacked lines.
func (c Cue) Lines() []string {
	return textutil.SplitLines(c.Text)
}

// Contains reports whether t falls within the closed interval [Start, End].
func (c Cue) Contains(t float64) bool {
	return t >= c.Start && t <= c.End
}

func (c Cue) withText(text string) Cue {
	c.Text = text
	return c
}

// Clone returns an independent copy of cues. A nil input stays nil.
func Clone(cues []Cue) []Cue {
	if cues == nil {
		return nil
	}
	out := make([]Cue, len(cues))
	copy(out, cues)
	return out
}

package language

import (
	"bilingo/internal/subtitles"
	"bilingo/internal/textutil"
)

// Thresholds applied, in order, by HeuristicClassifier.
const (
	bilingualRatioThreshold = 0.5
	dominantRatioThreshold  = 0.7
	mixedRatioThreshold     = 0.3
)

// Classifier determines the language layout of a cue sequence.
type Classifier interface {
	Classify(cues []subtitles.Cue) Result
}

// Stats holds the per-category tallies behind a verdict.
type Stats struct {
	Total       int `json:"total"`
	ChineseOnly int `json:"chinese_only"`
	EnglishOnly int `json:"english_only"`
	Bilingual   int `json:"bilingual"`
}

// Ratios returns each tally divided by Total. All are zero when Total is zero.
func (s Stats) Ratios() (chinese, english, bilingual float64) {
	if s.Total == 0 {
		return 0, 0, 0
	}
	total := float64(s.Total)
	return float64(s.ChineseOnly) / total, float64(s.EnglishOnly) / total, float64(s.Bilingual) / total
}

// Result is a verdict plus the counts it was derived from.
type Result struct {
	Verdict Verdict `json:"verdict"`
	Stats   Stats   `json:"stats"`
	// Reason names the decision rule that fired, for logging.
	Reason string `json:"reason"`
}

// HeuristicClassifier tallies CJK and Latin presence per cue and applies
// fixed ratio thresholds. A cue whose first line has CJK and whose second
// line has Latin letters but no CJK counts as one dual-line bilingual hit.
type HeuristicClassifier struct{}

// Classify implements Classifier.
func (HeuristicClassifier) Classify(cues []subtitles.Cue) Result {
	if len(cues) == 0 {
		return Result{Verdict: Unknown, Reason: "empty"}
	}
	stats := Stats{Total: len(cues)}
	for _, cue := range cues {
		tally(&stats, cue)
	}
	verdict, reason := decide(stats)
	return Result{Verdict: verdict, Stats: stats, Reason: reason}
}

func tally(stats *Stats, cue subtitles.Cue) {
	if lines := cue.Lines(); len(lines) >= 2 {
		if textutil.HasCJK(lines[0]) && textutil.HasLatin(lines[1]) && !textutil.HasCJK(lines[1]) {
			stats.Bilingual++
			return
		}
	}
	hasCJK := textutil.HasCJK(cue.Text)
	hasLatin := textutil.HasLatin(cue.Text)
	switch {
	case hasCJK && !hasLatin:
		stats.ChineseOnly++
	case hasLatin && !hasCJK:
		stats.EnglishOnly++
	case hasCJK && hasLatin:
		stats.Bilingual++
	}
}

// decide applies the thresholds in a fixed order; the first match wins.
func decide(stats Stats) (Verdict, string) {
	chinese, english, bilingual := stats.Ratios()
	switch {
	case bilingual > bilingualRatioThreshold:
		return Bilingual, "bilingual_majority"
	case chinese > dominantRatioThreshold:
		return Chinese, "chinese_dominant"
	case english > dominantRatioThreshold:
		return English, "english_dominant"
	case chinese > mixedRatioThreshold && english > mixedRatioThreshold:
		return Bilingual, "mixed_languages"
	case chinese > english:
		return Chinese, "chinese_leaning"
	case english > chinese:
		return English, "english_leaning"
	default:
		return Unknown, "no_signal"
	}
}

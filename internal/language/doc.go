// Package language decides which language a subtitle cue list carries.
//
// A Verdict is one of chinese, english, bilingual, or unknown. The Classifier
// interface isolates the detection heuristic so the ingestion engine can be
// handed a stricter detector without changing its merge rules. The default
// HeuristicClassifier keeps the original line-order assumption (Chinese on
// the first line, English on the second) and its fixed thresholds.
//
// The package also normalizes the assorted spellings users type for the two
// supported languages ("zh", "chi", "Chinese", "en", "eng", ...).
package language

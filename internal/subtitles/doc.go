// Package subtitles turns SRT and ASS subtitle text into a normalized list of
// timed cues and back.
//
// Parsing is best-effort: a malformed block or dialogue line is skipped and
// the rest of the file is still read, so callers always receive some cue
// list, possibly empty. Timestamps that do not match the expected shape
// decode to zero seconds rather than failing. The package also owns the
// bilingual separator that splits stacked Chinese/English cues into two
// per-language tracks, and an SRT writer used for exports.
//
// Cues are plain values. Nothing in this package mutates a cue slice it was
// handed; every transformation returns fresh slices.
package subtitles

// Package textutil provides small text helpers shared by the subtitle
// pipeline and the CLI.
//
// The primary use cases are:
//   - Detecting script signals (CJK ideographs, Latin letters) in cue text
//   - Splitting cue text into its stacked lines
//   - Sanitizing filenames derived from subtitle or video names
//
// Script detection is deliberately narrow: CJK means the Unified Ideographs
// block U+4E00..U+9FFF and Latin means ASCII letters. Callers that need
// broader Unicode coverage should not reuse these helpers.
package textutil

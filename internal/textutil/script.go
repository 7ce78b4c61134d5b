package textutil

import "strings"

const (
	cjkFirst = '\u4e00'
	cjkLast  = '\u9fff'
)

// IsCJK reports whether r falls in the CJK Unified Ideographs block.
func IsCJK(r rune) bool {
	return r >= cjkFirst && r <= cjkLast
}

// IsLatin reports whether r is an ASCII letter.
func IsLatin(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// HasCJK reports whether s contains at least one CJK ideograph.
func HasCJK(s string) bool {
	return strings.IndexFunc(s, IsCJK) >= 0
}

// HasLatin reports whether s contains at least one ASCII letter.
func HasLatin(s string) bool {
	return strings.IndexFunc(s, IsLatin) >= 0
}

// SplitLines splits cue text on "\n" or "\r\n". Empty lines are kept so the
// line count matches what the subtitle file carried.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package subtitles

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatSRTRenumbersAndSkipsBlank(t *testing.T) {
	cues := []Cue{
		{ID: 10, Start: 1, End: 2.5, Text: "First"},
		{ID: 11, Start: 3, End: 4, Text: "   "},
		{ID: 12, Start: 61.25, End: 62, Text: "你好\nHello"},
	}
	got := string(FormatSRT(cues))
	want := "1\n00:00:01,000 --> 00:00:02,500\nFirst\n\n2\n00:01:01,250 --> 00:01:02,000\n你好\nHello\n"
	if got != want {
		t.Fatalf("FormatSRT mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatSRTParsesBack(t *testing.T) {
	cues := []Cue{
		{ID: 1, ValidID: true, Start: 0.5, End: 1.75, Text: "One"},
		{ID: 2, ValidID: true, Start: 2, End: 3, Text: "二\nTwo"},
	}
	parsed := ParseSRT(string(FormatSRT(cues)))
	if len(parsed) != len(cues) {
		t.Fatalf("expected %d cues, got %d", len(cues), len(parsed))
	}
	for i := range cues {
		assertCue(t, parsed[i], cues[i])
	}
}

func TestFormatSRTKeepsParsedTimings(t *testing.T) {
	var b strings.Builder
	for ms := 0; ms < 1000; ms++ {
		if ms > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n00:00:01,%03d --> 00:00:02,%03d\nline %d\n", ms+1, ms, ms, ms)
	}
	in := b.String()
	if out := string(FormatSRT(ParseSRT(in))); out != in {
		t.Fatalf("export changed timings:\n%s", firstDifference(in, out))
	}
}

func firstDifference(want, got string) string {
	wantLines, gotLines := strings.Split(want, "\n"), strings.Split(got, "\n")
	for i := range wantLines {
		if i >= len(gotLines) {
			return fmt.Sprintf("line %d missing, want %q", i+1, wantLines[i])
		}
		if wantLines[i] != gotLines[i] {
			return fmt.Sprintf("line %d = %q, want %q", i+1, gotLines[i], wantLines[i])
		}
	}
	return fmt.Sprintf("%d extra lines", len(gotLines)-len(wantLines))
}

func TestFormatSRTEmpty(t *testing.T) {
	if out := FormatSRT(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}

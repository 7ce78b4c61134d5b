package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Movie: Part 1", "Movie- Part 1"},
		{"a/b\\c", "a-b-c"},
		{"what?", "what"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		source, tag, ext string
		want             string
	}{
		{"Movie (2001).ass", "zh", ".srt", "Movie (2001).zh.srt"},
		{"/tmp/show.srt", "en", "srt", "show.en.srt"},
		{"clip.srt", "", ".srt", "clip.srt"},
		{"", "zh", ".srt", "subtitle.zh.srt"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := OutputName(tt.source, tt.tag, tt.ext); got != tt.want {
				t.Errorf("OutputName(%q, %q, %q) = %q, want %q", tt.source, tt.tag, tt.ext, got, tt.want)
			}
		})
	}
}

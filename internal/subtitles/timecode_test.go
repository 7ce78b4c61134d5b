package subtitles

import (
	"fmt"
	"math"
	"testing"
)

func TestParseSRTTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"00:00:01,500", 1.5},
		{"01:02:03,004", 3723.004},
		{" 00:00:10,000 ", 10},
		{"00:00:01.500", 0}, // period separator is not SRT
		{"0:00:01,500", 0},  // hours need two digits
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseSRTTimestamp(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseSRTTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseASSTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0:00:01.87", 1.87},
		{"1:02:03.04", 3723.04},
		{"10:00:00.00", 36000},
		{" 0:00:05.50 ", 5.5},
		{"0:00:01,87", 0},
		{"0:0:01.87", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseASSTimestamp(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseASSTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSRTTimestamp(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61, "00:01:01,000"},
		{3723.25, "01:02:03,250"},
		{-4, "00:00:00,000"},
		{math.NaN(), "00:00:00,000"},
		{0.9999, "00:00:00,999"}, // truncated, not rounded up
		{1.005, "00:00:01,005"},
		{2.29, "00:00:02,290"},
		{3599.999, "00:59:59,999"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSRTTimestamp(tt.input); got != tt.want {
				t.Errorf("FormatSRTTimestamp(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSRTTimestampRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 1.005, 61, 3661.999} {
		text := FormatSRTTimestamp(seconds)
		got := ParseSRTTimestamp(text)
		if got > seconds+1e-9 {
			t.Errorf("round trip of %v via %q = %v, exceeds original", seconds, text, got)
		}
		if seconds-got > 0.001+1e-6 {
			t.Errorf("round trip of %v via %q = %v, lost more than a millisecond", seconds, text, got)
		}
	}
}

func TestSRTTimestampKeepsEveryMillisecond(t *testing.T) {
	for _, prefix := range []string{"00:00:00", "00:00:01", "00:59:59", "01:00:59", "12:34:56"} {
		for ms := 0; ms < 1000; ms++ {
			in := fmt.Sprintf("%s,%03d", prefix, ms)
			if got := FormatSRTTimestamp(ParseSRTTimestamp(in)); got != in {
				t.Fatalf("FormatSRTTimestamp(ParseSRTTimestamp(%q)) = %q", in, got)
			}
		}
	}
}

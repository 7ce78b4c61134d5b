package subtitles

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	srtTimestampPattern = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2}),(\d{3})`)
	assTimestampPattern = regexp.MustCompile(`(\d+):(\d{2}):(\d{2})\.(\d{2})`)
)

// ParseSRTTimestamp decodes "HH:MM:SS,mmm" into seconds. Text that does not
// contain a timestamp of that shape decodes to 0.
func ParseSRTTimestamp(value string) float64 {
	return decodeTimestamp(srtTimestampPattern, value, 1000)
}

// ParseASSTimestamp decodes "H:MM:SS.cc" into seconds. The hour field may
// have any width. Text that does not match decodes to 0.
func ParseASSTimestamp(value string) float64 {
	return decodeTimestamp(assTimestampPattern, value, 100)
}

func decodeTimestamp(pattern *regexp.Regexp, value string, fracDivisor float64) float64 {
	match := pattern.FindStringSubmatch(value)
	if match == nil {
		return 0
	}
	hours, errH := strconv.Atoi(match[1])
	minutes, errM := strconv.Atoi(match[2])
	seconds, errS := strconv.Atoi(match[3])
	frac, errF := strconv.Atoi(match[4])
	if errH != nil || errM != nil || errS != nil || errF != nil {
		return 0
	}
	return float64(hours*3600+minutes*60+seconds) + float64(frac)/fracDivisor
}

// FormatSRTTimestamp renders seconds as "HH:MM:SS,mmm". Sub-millisecond
// parts are truncated; the small epsilon absorbs float representation error
// so a parsed "01,005" formats back as "01,005". Negative and NaN input
// render as zero.
func FormatSRTTimestamp(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds*1000 + 1e-6))
	millis := total % 1000
	secs := (total / 1000) % 60
	minutes := (total / 60000) % 60
	hours := total / 3600000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

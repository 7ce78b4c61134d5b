package subtitles

import (
	"bytes"
	"strconv"
	"strings"
)

// FormatSRT renders cues as SRT, renumbering them 1..N. Cues whose text is
// blank are left out.
func FormatSRT(cues []Cue) []byte {
	var buf bytes.Buffer
	index := 1
	for _, cue := range cues {
		if strings.TrimSpace(cue.Text) == "" {
			continue
		}
		if index > 1 {
			buf.WriteString("\n")
		}
		buf.WriteString(strconv.Itoa(index))
		buf.WriteString("\n")
		buf.WriteString(FormatSRTTimestamp(cue.Start))
		buf.WriteString(srtTimingSeparator)
		buf.WriteString(FormatSRTTimestamp(cue.End))
		buf.WriteString("\n")
		buf.WriteString(cue.Text)
		buf.WriteString("\n")
		index++
	}
	return buf.Bytes()
}

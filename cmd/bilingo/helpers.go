package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bilingo/internal/language"
	"bilingo/internal/subtitles"
)

// writeJSON encodes v as indented JSON to the command's stdout. HTML
// escaping is off so cue text such as "<i>" survives unchanged.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// formatClock renders seconds as an SRT-style timestamp for display.
func formatClock(seconds float64) string {
	return subtitles.FormatSRTTimestamp(seconds)
}

func verdictLabel(v language.Verdict) string {
	return language.DisplayName(v)
}

// cueText flattens a cue for single-line display.
func cueText(cue *subtitles.Cue) string {
	if cue == nil {
		return ""
	}
	return strings.Join(cue.Lines(), " / ")
}

func cueSpan(cue *subtitles.Cue) string {
	if cue == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s", formatClock(cue.Start), formatClock(cue.End))
}

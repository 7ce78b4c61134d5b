package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"bilingo/internal/ingest"
	"bilingo/internal/playback"
	"bilingo/internal/subtitles"
)

type lookupReport struct {
	Time    float64        `json:"time"`
	Chinese *subtitles.Cue `json:"chinese"`
	English *subtitles.Cue `json:"english"`
	Replay  *subtitles.Cue `json:"replay,omitempty"`
	Primary string         `json:"primary"`
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var at float64
	var skips int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lookup <file>... --at <seconds>",
		Short: "Show the cues active at a playback position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if at < 0 {
				return fmt.Errorf("--at must be non-negative, got %g", at)
			}
			result, err := ctx.loadBundle(cmd, args)
			if err != nil {
				return err
			}
			tracks := result.Bundle.Tracks
			if tracks == nil {
				return errors.New("no subtitle files loaded")
			}

			if skips != 0 {
				at = playback.Skip(at, float64(skips)*ctx.skipSeconds(), tracksEnd(tracks))
			}

			primary := ctx.primaryTrack()
			active := playback.Lookup(tracks, at)
			report := lookupReport{
				Time:    at,
				Chinese: active.Chinese,
				English: active.English,
				Primary: primary.String(),
			}
			if cue, ok := playback.ReplayTarget(tracks.Track(primary), at); ok {
				report.Replay = &cue
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Time:    %s\n", formatClock(at))
			fmt.Fprintf(out, "Chinese: %s\n", displayCue(active.Chinese))
			fmt.Fprintf(out, "English: %s\n", displayCue(active.English))
			if report.Replay != nil {
				fmt.Fprintf(out, "Replay:  %s (%s)\n", cueSpan(report.Replay), primary)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "Playback position in seconds")
	cmd.Flags().IntVar(&skips, "skip", 0, "Apply this many skip steps before the lookup (negative skips back)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// tracksEnd returns the latest cue end across both tracks.
func tracksEnd(tracks *ingest.TrackSet) float64 {
	_, chineseEnd := subtitles.Bounds(tracks.Chinese)
	_, englishEnd := subtitles.Bounds(tracks.English)
	return math.Max(chineseEnd, englishEnd)
}

func displayCue(cue *subtitles.Cue) string {
	if cue == nil {
		return "-"
	}
	return cueText(cue)
}

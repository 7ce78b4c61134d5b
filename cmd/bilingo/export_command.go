package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bilingo/internal/fileutil"
	"bilingo/internal/ingest"
	"bilingo/internal/language"
	"bilingo/internal/logging"
	"bilingo/internal/subtitles"
	"bilingo/internal/textutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var trackFlag string
	var outputFlag string
	var outputDir string
	var keepAll bool

	cmd := &cobra.Command{
		Use:   "export <file>...",
		Short: "Write the separated tracks as SRT files",
		Long: "Write the separated Chinese and English tracks as SRT files.\n\n" +
			"Without --track both non-empty tracks are written next to the last\n" +
			"subtitle input as <name>.zh.srt and <name>.en.srt. With --keep-all every\n" +
			"uploaded cue is written: stacked cues keep their line for the track and\n" +
			"single-line cues are kept whatever their script.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.loadBundle(cmd, args)
			if err != nil {
				return err
			}
			tracks := result.Bundle.Tracks
			if tracks == nil {
				return errors.New("no subtitle files loaded")
			}

			selected := []subtitles.Track{subtitles.TrackChinese, subtitles.TrackEnglish}
			if strings.TrimSpace(trackFlag) != "" {
				track, err := subtitles.ParseTrack(trackFlag)
				if err != nil {
					return err
				}
				selected = []subtitles.Track{track}
			}
			if outputFlag != "" && len(selected) > 1 {
				return errors.New("--output requires --track")
			}

			source := lastSubtitleSource(result)
			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(source)
			}

			logger := logging.NewComponentLogger(ctx.loggerValue(), "export")
			colorize := shouldColorize(cmd.OutOrStdout())
			written := 0
			for _, track := range selected {
				cues := tracks.Track(track)
				if keepAll {
					cues = subtitles.ExtractSingle(tracks.Raw, track)
				}
				if len(cues) == 0 {
					if len(selected) == 1 {
						return fmt.Errorf("%s track is empty", track)
					}
					continue
				}
				dest := outputFlag
				if dest == "" {
					dest = filepath.Join(dir, textutil.OutputName(source, trackTag(track), ".srt"))
				}
				if err := fileutil.WriteFileAtomic(dest, subtitles.FormatSRT(cues), 0o644); err != nil {
					return fmt.Errorf("export %s track: %w", track, err)
				}
				written++
				logger.Info("track exported",
					logging.String("track", track.String()),
					logging.String("path", dest),
					logging.Int(logging.FieldCueCount, len(cues)),
				)
				fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(track.String(), statusOK, fmt.Sprintf("%d cues -> %s", len(cues), dest), colorize))
			}
			if written == 0 {
				return errors.New("no cues to export")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&trackFlag, "track", "t", "", "Track to export (chinese or english)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (requires --track)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for generated file names")
	cmd.Flags().BoolVar(&keepAll, "keep-all", false, "Keep single-line cues of either script in every exported track")
	return cmd
}

func trackTag(track subtitles.Track) string {
	if track == subtitles.TrackChinese {
		return language.ToISO2(language.Chinese)
	}
	return language.ToISO2(language.English)
}

// lastSubtitleSource returns the path of the last subtitle applied, falling
// back to the working directory.
func lastSubtitleSource(result ingest.Result) string {
	for i := len(result.Steps) - 1; i >= 0; i-- {
		step := result.Steps[i]
		if step.Kind == ingest.KindSubtitle && step.File.Locator != "" {
			return step.File.Locator
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "subtitle"
	}
	return filepath.Join(wd, "subtitle")
}

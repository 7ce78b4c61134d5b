package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bilingo/internal/ingest"
	"bilingo/internal/logging"
	"bilingo/internal/session"
	"bilingo/internal/subtitles"
)

type playOptions struct {
	from     float64
	to       float64
	step     float64
	duration float64
	primary  string
	stop     bool
	resume   bool
}

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play <file>...",
		Short: "Simulate playback and print subtitle changes",
		Long: "Simulate playback over the loaded tracks and print every cue change.\n\n" +
			"With stop-at-sentence-end enabled, playback pauses when the primary track\n" +
			"leaves a cue. Pass --resume to continue automatically after each pause.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.step <= 0 {
				return fmt.Errorf("--step must be positive, got %g", opts.step)
			}
			cfg := ctx.configValue()
			primary := ctx.primaryTrack()
			if opts.primary != "" {
				track, err := subtitles.ParseTrack(opts.primary)
				if err != nil {
					return err
				}
				primary = track
			}
			stopAtEnd := cfg != nil && cfg.Playback.StopAtSentenceEnd
			if cmd.Flags().Changed("stop-at-sentence-end") {
				stopAtEnd = opts.stop
			}

			result, err := ctx.loadBundle(cmd, args)
			if err != nil {
				return err
			}
			if result.Bundle.Tracks == nil {
				return errors.New("no subtitle files loaded")
			}

			logger := logging.NewComponentLogger(ctx.loggerValue(), "play")
			store := session.NewStore(session.New(primary, stopAtEnd), ctx.newEngine(), ctx.loggerValue())
			printer := &cuePrinter{out: cmd.OutOrStdout()}
			unsubscribe := store.Subscribe(printer.observe)
			defer unsubscribe()

			duration := opts.duration
			if duration <= 0 {
				duration = tracksEnd(result.Bundle.Tracks)
			}
			video := ingest.MediaReference{Name: "(no video)"}
			if result.Bundle.Video != nil {
				video = *result.Bundle.Video
			}
			store.Dispatch(session.LoadVideo{Video: video, Duration: duration})
			store.Dispatch(session.IngestSubtitle{Tracks: *result.Bundle.Tracks})

			end := duration
			if opts.to > 0 && opts.to < end {
				end = opts.to
			}
			logger.Info("playback simulation started",
				logging.Float64("from", opts.from),
				logging.Float64("to", end),
				logging.Bool("stop_at_sentence_end", stopAtEnd),
				logging.String("primary", primary.String()),
			)

			store.Dispatch(session.Seek{Time: opts.from})
			state := store.Dispatch(session.SetPlaying{Playing: true})
			pauses := 0
			for t := state.Time + opts.step; t <= end+1e-9; t += opts.step {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				state = store.Dispatch(session.Tick{Time: t})
				if state.Playing {
					continue
				}
				pauses++
				fmt.Fprintf(cmd.OutOrStdout(), "%s  -- paused at sentence end --\n", formatClock(state.Time))
				if !opts.resume {
					break
				}
				store.Dispatch(session.SetPlaying{Playing: true})
			}
			logger.Info("playback simulation finished",
				logging.Float64("time", store.Snapshot().Time),
				logging.Int("pauses", pauses),
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.from, "from", 0, "Start position in seconds")
	cmd.Flags().Float64Var(&opts.to, "to", 0, "End position in seconds (default: end of subtitles)")
	cmd.Flags().Float64Var(&opts.step, "step", 0.25, "Tick interval in seconds")
	cmd.Flags().Float64Var(&opts.duration, "duration", 0, "Media duration in seconds (default: last cue end)")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "Track that drives sentence stops (chinese or english)")
	cmd.Flags().BoolVar(&opts.stop, "stop-at-sentence-end", false, "Pause when the primary track leaves a cue")
	cmd.Flags().BoolVar(&opts.resume, "resume", false, "Resume automatically after each pause")
	return cmd
}

// cuePrinter writes a line whenever the visible cue pair changes.
type cuePrinter struct {
	out         io.Writer
	chinese     string
	english     string
	initialized bool
}

func (p *cuePrinter) observe(state session.State) {
	if state.Tracks == nil {
		return
	}
	active := state.Active()
	chinese, english := cueText(active.Chinese), cueText(active.English)
	if p.initialized && chinese == p.chinese && english == p.english {
		return
	}
	p.initialized = true
	p.chinese, p.english = chinese, english
	if chinese == "" && english == "" {
		return
	}
	fmt.Fprintf(p.out, "%s  %s | %s\n", formatClock(state.Time), displayText(chinese), displayText(english))
}

func displayText(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"bilingo/internal/ingest"
	"bilingo/internal/language"
	"bilingo/internal/logging"
)

const watchDebounce = 250 * time.Millisecond

type ingestStepReport struct {
	File    string           `json:"file"`
	Kind    string           `json:"kind"`
	Verdict language.Verdict `json:"verdict,omitempty"`
	Reason  string           `json:"reason,omitempty"`
	Mode    ingest.Mode      `json:"mode,omitempty"`
	Stats   *language.Stats  `json:"stats,omitempty"`
	Chinese int              `json:"chinese_cues"`
	English int              `json:"english_cues"`
	Missing string           `json:"missing,omitempty"`
}

type ingestReport struct {
	Steps    []ingestStepReport `json:"steps"`
	Video    string             `json:"video,omitempty"`
	Detected language.Verdict   `json:"detected,omitempty"`
	Missing  string             `json:"missing,omitempty"`
	Ready    bool               `json:"ready"`
}

func buildIngestReport(result ingest.Result) ingestReport {
	report := ingestReport{Steps: make([]ingestStepReport, 0, len(result.Steps)), Ready: result.Bundle.Ready()}
	for _, step := range result.Steps {
		row := ingestStepReport{File: step.File.Name, Kind: step.Kind.String()}
		if out := step.Outcome; out != nil {
			stats := out.Classification.Stats
			row.Verdict = out.Classification.Verdict
			row.Reason = out.Classification.Reason
			row.Mode = out.Mode
			row.Stats = &stats
			row.Chinese = len(out.Tracks.Chinese)
			row.English = len(out.Tracks.English)
			row.Missing = out.Tracks.Missing.String()
		}
		report.Steps = append(report.Steps, row)
	}
	if video := result.Bundle.Video; video != nil {
		report.Video = video.Name
	}
	if tracks := result.Bundle.Tracks; tracks != nil {
		report.Detected = tracks.Detected
		report.Missing = tracks.Missing.String()
	}
	return report
}

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Load subtitle and video files in order and report the resulting tracks",
		Long: "Load subtitle and video files in order and report the resulting tracks.\n\n" +
			"Files are applied left to right. A Chinese-only and an English-only subtitle\n" +
			"combine into one bilingual set; uploading the same language twice replaces it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func() error {
				result, err := ctx.loadBundle(cmd, args)
				if err != nil {
					return err
				}
				report := buildIngestReport(result)
				if jsonOutput {
					return writeJSON(cmd, report)
				}
				printIngestReport(cmd.OutOrStdout(), report)
				return nil
			}

			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			logger := logging.NewComponentLogger(ctx.loggerValue(), "watch")
			return watchFiles(cmd.Context(), args, logger, func() {
				start := time.Now()
				if err := run(); err != nil {
					logging.ErrorWithContext(logger, "re-ingest failed", "reingest_failed",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "fix the input file and save it again"),
					)
					fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine("ingest", statusError, err.Error(), shouldColorize(cmd.ErrOrStderr())))
					return
				}
				logger.Info("inputs re-ingested", logging.Duration("elapsed", time.Since(start)))
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when any input file changes")
	return cmd
}

func printIngestReport(out io.Writer, report ingestReport) {
	pretty := isTerminal(out)
	rows := make([][]string, 0, len(report.Steps))
	for _, step := range report.Steps {
		if step.Kind != ingest.KindSubtitle.String() {
			rows = append(rows, []string{step.File, step.Kind, "", "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			step.File,
			step.Kind,
			verdictLabel(step.Verdict),
			string(step.Mode),
			strconv.Itoa(step.Chinese),
			strconv.Itoa(step.English),
			step.Missing,
		})
	}
	fmt.Fprint(out, renderRows(pretty,
		[]string{"File", "Kind", "Verdict", "Mode", "Chinese", "English", "Missing"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "Ready for playback: %s\n", yesNo(report.Ready))
}

// watchFiles calls rerun after any of paths changes, until ctx is done.
// Directories are watched so editors that replace files atomically are seen.
func watchFiles(ctx context.Context, paths []string, logger *slog.Logger, rerun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Info("watching input files", logging.Int("files", len(targets)))

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, tracked := targets[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch files: %w", err)
		}
	}
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bilingo/internal/logging"
)

// ErrUnsupportedFile marks a file that is neither a recognized video nor a
// recognized subtitle.
var ErrUnsupportedFile = errors.New("unsupported file type")

// TextReader reads the full text of a subtitle file.
type TextReader func(ctx context.Context, locator string) (string, error)

// Step records how one file was handled.
type Step struct {
	File    MediaReference
	Kind    FileKind
	Outcome *Outcome
}

// Result is the bundle after a dispatch run plus the per-file steps.
type Result struct {
	Bundle Bundle
	Steps  []Step
}

// Dispatcher routes files by kind and feeds subtitles to the engine in order.
type Dispatcher struct {
	engine *Engine
	read   TextReader
	logger *slog.Logger
}

// NewDispatcher wires an engine to a text reader.
func NewDispatcher(engine *Engine, read TextReader, logger *slog.Logger) *Dispatcher {
	if engine == nil {
		engine = NewEngine(WithLogger(logger))
	}
	return &Dispatcher{
		engine: engine,
		read:   read,
		logger: logging.NewComponentLogger(logger, "dispatch"),
	}
}

// Apply processes files in order against bundle. A video replaces the video
// reference and leaves tracks alone; a subtitle replaces the tracks and
// leaves the video alone. Unsupported files are skipped and reported as a
// joined error wrapping ErrUnsupportedFile alongside the full result. A read
// failure stops processing and returns the result accumulated so far.
func (d *Dispatcher) Apply(ctx context.Context, bundle Bundle, files ...MediaReference) (Result, error) {
	result := Result{Bundle: bundle, Steps: make([]Step, 0, len(files))}
	var skipped []error

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		fileCtx := logging.WithFile(ctx, file.Name)
		logger := logging.WithContext(fileCtx, d.logger)

		kind := Classify(file.Name, file.MIMEType)
		step := Step{File: file, Kind: kind}

		switch kind {
		case KindVideo:
			ref := file
			result.Bundle.Video = &ref
			logger.Info("video reference loaded")
		case KindSubtitle:
			if d.read == nil {
				return result, fmt.Errorf("read subtitle %s: no reader configured", file.Name)
			}
			text, err := d.read(fileCtx, file.Locator)
			if err != nil {
				return result, fmt.Errorf("read subtitle %s: %w", file.Name, err)
			}
			outcome := d.engine.Apply(result.Bundle.Tracks, SubtitleFile{Name: file.Name, MIMEType: file.MIMEType, Text: text})
			tracks := outcome.Tracks
			result.Bundle.Tracks = &tracks
			step.Outcome = &outcome
		default:
			logging.WarnWithContext(logger, "skipping unsupported file", "unsupported_file",
				logging.String(logging.FieldErrorHint, "use .srt, .ass, or a video file"),
				logging.String(logging.FieldImpact, "file ignored"),
			)
			skipped = append(skipped, fmt.Errorf("%s: %w", file.Name, ErrUnsupportedFile))
		}
		result.Steps = append(result.Steps, step)
	}

	return result, errors.Join(skipped...)
}

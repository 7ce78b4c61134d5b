package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bilingo/internal/fileutil"
	"bilingo/internal/logging"
	"bilingo/internal/phrases"
	"bilingo/internal/playback"
)

func newPhrasesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Manage saved phrases",
	}
	cmd.AddCommand(newPhrasesAddCommand(ctx))
	cmd.AddCommand(newPhrasesListCommand(ctx))
	cmd.AddCommand(newPhrasesRemoveCommand(ctx))
	cmd.AddCommand(newPhrasesExportCommand(ctx))
	cmd.AddCommand(newPhrasesImportCommand(ctx))
	return cmd
}

func (c *commandContext) openPhrases() (*phrases.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := phrases.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open phrases: %w", err)
	}
	return store, nil
}

func newPhrasesAddCommand(ctx *commandContext) *cobra.Command {
	var at float64
	var chinese string
	var english string
	var source string

	cmd := &cobra.Command{
		Use:   "add --at <seconds> [file...]",
		Short: "Save the phrase showing at a playback position",
		Long: "Save the phrase showing at a playback position.\n\n" +
			"When subtitle files are given, the Chinese and English text is taken from\n" +
			"the cues active at --at. --chinese and --english override either side.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("at") {
				return errors.New("--at is required")
			}
			phrase := phrases.Phrase{Timestamp: at, Source: source}
			if len(args) > 0 {
				result, err := ctx.loadBundle(cmd, args)
				if err != nil {
					return err
				}
				active := playback.Lookup(result.Bundle.Tracks, at)
				phrase.Chinese = cueText(active.Chinese)
				phrase.English = cueText(active.English)
				if phrase.Source == "" {
					phrase.Source = filepath.Base(lastSubtitleSource(result))
				}
			}
			if chinese != "" {
				phrase.Chinese = chinese
			}
			if english != "" {
				phrase.English = english
			}

			store, err := ctx.openPhrases()
			if err != nil {
				return err
			}
			defer store.Close()

			saved, err := store.Save(cmd.Context(), phrase)
			if err != nil {
				return err
			}
			logging.NewComponentLogger(ctx.loggerValue(), "phrases").Info("phrase saved",
				logging.Float64("timestamp", saved.Timestamp),
				logging.String("source", saved.Source),
			)
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(formatClock(saved.Timestamp), statusOK, phraseSummary(saved), shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "Playback position in seconds")
	cmd.Flags().StringVar(&chinese, "chinese", "", "Chinese text")
	cmd.Flags().StringVar(&english, "english", "", "English text")
	cmd.Flags().StringVar(&source, "source", "", "Source label (default: subtitle file name)")
	return cmd
}

func newPhrasesListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openPhrases()
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				if list == nil {
					list = []phrases.Phrase{}
				}
				return writeJSON(cmd, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved phrases")
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, p := range list {
				rows = append(rows, []string{formatClock(p.Timestamp), p.Chinese, p.English, p.Source})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRows(isTerminal(cmd.OutOrStdout()),
				[]string{"Time", "Chinese", "English", "Source"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPhrasesRemoveCommand(ctx *commandContext) *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "remove --at <seconds>",
		Short: "Remove the phrase saved at a timestamp",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("at") {
				return errors.New("--at is required")
			}
			store, err := ctx.openPhrases()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Remove(cmd.Context(), at); err != nil {
				if errors.Is(err, phrases.ErrNotFound) {
					return fmt.Errorf("no phrase saved at %s", formatClock(at))
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(formatClock(at), statusOK, "removed", shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Timestamp in seconds")
	return cmd
}

func newPhrasesExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved phrases as a YAML or JSON deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatFlag == "" && output != "" {
				formatFlag = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			format, err := phrases.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			store, err := ctx.openPhrases()
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				return phrases.Export(cmd.OutOrStdout(), list, format)
			}
			var buf bytes.Buffer
			if err := phrases.Export(&buf, list, format); err != nil {
				return err
			}
			if err := fileutil.WriteFileAtomic(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write deck: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine("export", statusOK, fmt.Sprintf("%d phrases -> %s", len(list), output), shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Deck format: yaml or json (default: from --output extension, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newPhrasesImportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "import <deck>",
		Short: "Import phrases from a YAML or JSON deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if formatFlag == "" {
				formatFlag = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			format, err := phrases.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open deck: %w", err)
			}
			defer file.Close()

			list, err := phrases.Import(file, format)
			if err != nil {
				return err
			}
			store, err := ctx.openPhrases()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, p := range list {
				if _, err := store.Save(cmd.Context(), p); err != nil {
					return fmt.Errorf("import phrase at %s: %w", formatClock(p.Timestamp), err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine("import", statusOK, fmt.Sprintf("%d phrases", len(list)), shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Deck format: yaml or json (default: from file extension)")
	return cmd
}

func phraseSummary(p phrases.Phrase) string {
	parts := make([]string, 0, 2)
	if p.Chinese != "" {
		parts = append(parts, p.Chinese)
	}
	if p.English != "" {
		parts = append(parts, p.English)
	}
	return strings.Join(parts, " | ")
}

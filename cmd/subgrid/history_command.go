package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"subgrid/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversion runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled in configuration")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No conversions recorded yet.")
				return nil
			}

			headers := []string{"When", "SRT", "TextGrid", "Duration", "Tiers", "Intervals", "Changes", "Flags"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					filepath.Base(rec.SRTPath),
					filepath.Base(rec.TextGridPath),
					fmt.Sprintf("%.1fs", rec.MediaDuration),
					strconv.Itoa(rec.SpeakerCount),
					strconv.Itoa(rec.IntervalCount),
					strconv.Itoa(rec.ChangeCount),
					flagSummary(rec),
				})
			}

			aligns := []columnAlignment{
				alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft,
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
			} else {
				fmt.Fprint(out, renderPlain(headers, rows))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	return cmd
}

func flagSummary(rec history.Record) string {
	switch {
	case rec.Diarize && rec.ConvertNumbers:
		return "diarize,numbers"
	case rec.Diarize:
		return "diarize"
	case rec.ConvertNumbers:
		return "numbers"
	default:
		return "-"
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

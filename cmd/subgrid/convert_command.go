package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subgrid/internal/convert"
	"subgrid/internal/history"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var diarize bool
	var convertNumbers bool
	var speaker string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "convert <srt-input> <media-input> <textgrid-output> <csv-output>",
		Short: "Convert an SRT file to a Praat TextGrid, logging text changes to CSV",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 {
				return fmt.Errorf("provide exactly four paths: srt input, media input, textgrid output, csv output\nRun subgrid convert --help for details")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			srtPath, err := absolutePath(args[0])
			if err != nil {
				return err
			}
			mediaPath, err := absolutePath(args[1])
			if err != nil {
				return err
			}
			textgridPath, err := absolutePath(args[2])
			if err != nil {
				return err
			}
			csvPath, err := absolutePath(args[3])
			if err != nil {
				return err
			}

			// Config supplies defaults; explicit flags win.
			if !cmd.Flags().Changed("diarize") {
				diarize = cfg.Convert.Diarize
			}
			if !cmd.Flags().Changed("convert-numbers") {
				convertNumbers = cfg.Convert.ConvertNumbers
			}
			if strings.TrimSpace(speaker) == "" {
				speaker = cfg.Convert.SpeakerLabel
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			var recorder convert.Recorder
			if cfg.History.Enabled && !noHistory {
				store, err := history.Open(cfg.History.Path)
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer store.Close()
				recorder = store
			}

			prober := convert.FFprobeProber{
				Binary:  cfg.Probe.FFprobeBinary,
				Timeout: time.Duration(cfg.Probe.TimeoutSeconds) * time.Second,
			}
			converter := convert.New(prober, recorder, logger)

			result, err := converter.Run(cmd.Context(), convert.Request{
				SRTPath:        srtPath,
				MediaPath:      mediaPath,
				TextGridPath:   textgridPath,
				CSVPath:        csvPath,
				Diarize:        diarize,
				ConvertNumbers: convertNumbers,
				Speaker:        speaker,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TextGrid written to %s (%d tier(s), %d interval(s), %.3fs)\n",
				textgridPath, result.SpeakerCount, result.IntervalCount, result.MediaDuration)
			if result.CSVWritten {
				fmt.Fprintf(out, "Change log written to %s (%d change(s))\n", csvPath, result.ChangeCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&diarize, "diarize", "d", false, "Split speakers into separate tiers using inline [Speaker]: markers")
	cmd.Flags().BoolVarP(&convertNumbers, "convert-numbers", "c", false, "Expand numerals to English words and split uppercase runs")
	cmd.Flags().StringVar(&speaker, "speaker", "", "Tier name used when diarization is disabled (default from config)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")

	return cmd
}

func absolutePath(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("empty path argument")
	}
	absolute, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", trimmed, err)
	}
	return absolute, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sidesplit/internal/deps"
	"sidesplit/internal/encoder"
	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/history"
	"sidesplit/internal/splitter"
)

func newSplitCommand(cmdCtx *commandContext) *cobra.Command {
	var qualityFlag string
	var formatFlag string
	var outputFlag string
	var noHWAccel bool
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "split VIDEO [VIDEO...]",
		Short: "Split recordings into left and right halves",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			qualityName := qualityFlag
			if qualityName == "" {
				qualityName = cfg.Encoding.Quality
			}
			quality, err := encoder.ParseQuality(qualityName)
			if err != nil {
				return err
			}

			ffmpegBinary := cmdCtx.ffmpegBinary()
			ffprobeBinary := cmdCtx.ffprobeBinary()
			statuses := deps.CheckBinaries(deps.Defaults(ffmpegBinary, ffprobeBinary))
			if missing := deps.Missing(statuses); len(missing) > 0 {
				printInstallHelp(cmd.ErrOrStderr())
				return fmt.Errorf("%w: missing %v", splitter.ErrEngineNotFound, missing)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			execr := ffmpeg.NewExecutor()
			capability := encoder.CapabilitySoftware
			if !noHWAccel && cfg.Encoding.HardwareAccel {
				capability = encoder.Detect(ctx, execr, ffmpegBinary)
			}

			out := cmd.OutOrStdout()
			if capability.Hardware() {
				fmt.Fprintf(out, "Using hardware encoder: %s\n", capability.Name())
			} else {
				fmt.Fprintln(out, "Using software encoding (libx264)")
			}
			fmt.Fprintf(out, "Quality: %s\n\n", quality)

			interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			observer := newSplitObserver(out, logger, interactive)

			outputDir := outputFlag
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}
			outputFormat := formatFlag
			if outputFormat == "" {
				outputFormat = cfg.Encoding.OutputFormat
			}

			batch := splitter.NewBatch(splitter.Options{
				Exec:            execr,
				FFmpeg:          ffmpegBinary,
				FFprobe:         ffprobeBinary,
				OutputDir:       outputDir,
				OutputFormat:    outputFormat,
				Quality:         quality,
				Capability:      capability,
				ContinueOnError: continueOnError || cfg.Encoding.ContinueOnError,
				LockFile:        cfg.Paths.LockFile,
				Observer:        observer.observe,
				Logger:          logger,
			})

			report, err := batch.Run(ctx, args)
			observer.done()
			if err != nil {
				if errors.Is(err, splitter.ErrLocked) {
					return fmt.Errorf("%w (lock file: %s)", splitter.ErrLocked, cfg.Paths.LockFile)
				}
				return err
			}

			if cfg.History.Enabled {
				saveHistory(ctx, cfg.Paths.HistoryDB, report, logger)
			}

			printSummary(out, report)

			if report.Cancelled {
				return fmt.Errorf("%w after %d of %d inputs", splitter.ErrCancelled, len(report.Results)+len(report.Failures), report.Total)
			}
			if len(report.Failures) > 0 {
				return fmt.Errorf("%d of %d inputs failed", len(report.Failures), report.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", "", "Quality preset (lossless, high, medium)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output container extension (defaults to the input's)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (defaults to the input's directory)")
	cmd.Flags().BoolVar(&noHWAccel, "no-hw-accel", false, "Force software encoding")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep processing remaining videos after a failure")
	return cmd
}

func printInstallHelp(w io.Writer) {
	fmt.Fprintln(w, "FFmpeg is required. Install it with:")
	fmt.Fprintln(w, "  macOS:         brew install ffmpeg")
	fmt.Fprintln(w, "  Ubuntu/Debian: sudo apt-get install ffmpeg")
	fmt.Fprintln(w, "  Windows:       https://ffmpeg.org/download.html")
}

func saveHistory(ctx context.Context, dbPath string, report splitter.Report, logger *slog.Logger) {
	store, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()
	if err := store.SaveReport(ctx, report); err != nil {
		logger.Warn("record history failed", "error", err)
	}
}

func printSummary(w io.Writer, report splitter.Report) {
	fmt.Fprintln(w)
	if len(report.Results) > 0 {
		rows := make([][]string, 0, len(report.Results))
		for _, result := range report.Results {
			rows = append(rows, []string{
				filepath.Base(result.Input),
				humanize.Bytes(uint64(result.LeftSize)),
				humanize.Bytes(uint64(result.RightSize)),
				result.Elapsed.Round(time.Second).String(),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Input", "Left", "Right", "Elapsed"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(w, "failed: %s: %s\n", filepath.Base(failure.Path), failure.Message)
	}

	switch {
	case report.Cancelled:
		fmt.Fprintf(w, "\nCancelled: %d succeeded, %d failed, %d not started\n",
			len(report.Results), len(report.Failures), report.Total-len(report.Results)-len(report.Failures))
	case len(report.Failures) == 0:
		fmt.Fprintf(w, "\nAll %d input(s) split successfully in %s\n", report.Total, report.Elapsed.Round(time.Second))
	default:
		fmt.Fprintf(w, "\n%d succeeded, %d failed\n", len(report.Results), len(report.Failures))
	}
}

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/media/ffprobe"
	"sidesplit/internal/splitter"
)

func newInspectCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VIDEO [VIDEO...]",
		Short: "Show stream details for input recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdCtx.ensureConfig(); err != nil {
				return err
			}
			execr := ffmpeg.NewExecutor()
			binary := cmdCtx.ffprobeBinary()
			out := cmd.OutOrStdout()

			var firstErr error
			rows := make([][]string, 0, len(args))
			for _, path := range args {
				result, err := ffprobe.Inspect(cmd.Context(), execr, binary, path)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					rows = append(rows, []string{path, "-", "-", "-", "-", err.Error()})
					continue
				}
				stream, ok := result.VideoStream()
				if !ok {
					if firstErr == nil {
						firstErr = fmt.Errorf("%w: %s", splitter.ErrNoVideoStream, path)
					}
					rows = append(rows, []string{path, result.Format.FormatName, "-", "-", "-", "no video stream"})
					continue
				}

				video := splitter.Video{Width: stream.Width, Height: stream.Height}
				note := "splits cleanly"
				if !video.ValidDimensions() {
					note = fmt.Sprintf("expected %dx%d", splitter.ExpectedWidth, splitter.ExpectedHeight)
				}
				duration := time.Duration(result.DurationSeconds() * float64(time.Second)).Round(time.Second)
				rows = append(rows, []string{
					path,
					fmt.Sprintf("%s/%s", result.Format.FormatName, stream.CodecName),
					fmt.Sprintf("%dx%d", stream.Width, stream.Height),
					video.AspectRatio(),
					fmt.Sprintf("%s, %s", duration, humanize.Bytes(uint64(result.SizeBytes()))),
					note,
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Input", "Codec", "Dimensions", "Aspect", "Length", "Note"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return firstErr
		},
	}
}

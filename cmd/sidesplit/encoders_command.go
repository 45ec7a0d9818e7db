package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sidesplit/internal/encoder"
	"sidesplit/internal/ffmpeg"
)

func newEncodersCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "encoders",
		Short: "Show which encoding backends the installed FFmpeg offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdCtx.ensureConfig(); err != nil {
				return err
			}
			execr := ffmpeg.NewExecutor()
			binary := cmdCtx.ffmpegBinary()

			availability := encoder.Available(cmd.Context(), execr, binary)
			selected := encoder.Detect(cmd.Context(), execr, binary)

			rows := make([][]string, 0, len(encoder.Candidates()))
			for _, candidate := range encoder.Candidates() {
				rows = append(rows, []string{
					candidate.Name(),
					candidate.Encoder(),
					okMark(availability[candidate]),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Backend", "Encoder", "Available"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "\nSelected: %s\n", selected.Name())
			return nil
		},
	}
}

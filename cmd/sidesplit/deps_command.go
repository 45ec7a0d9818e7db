package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sidesplit/internal/deps"
	"sidesplit/internal/ffmpeg"
)

func newDepsCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that required external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdCtx.ensureConfig(); err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Defaults(cmdCtx.ffmpegBinary(), cmdCtx.ffprobeBinary()))
			execr := ffmpeg.NewExecutor()

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				detail := status.Detail
				version := "-"
				if status.Available {
					detail = status.Command
					if line, ok := ffmpeg.Version(cmd.Context(), execr, status.Command); ok {
						version = line
					}
				}
				rows = append(rows, []string{status.Name, okMark(status.Available), detail, version, status.Description})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Found", "Location", "Version", "Purpose"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missing := deps.Missing(statuses); len(missing) > 0 {
				printInstallHelp(cmd.ErrOrStderr())
				return fmt.Errorf("missing dependencies: %v", missing)
			}
			return nil
		},
	}
}
